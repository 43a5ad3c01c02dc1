package core

import (
	mus "github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for the persistent types. Field order is part of the
// storage format; changing it invalidates existing caches.

var (
	FingerprintMUS = fingerprintMUS{}
	ProfileMUS     = profileMUS{}

	embeddingMUS = ord.NewSliceSer[float64](raw.Float64)
)

var (
	_ mus.Serializer[Fingerprint] = FingerprintMUS
	_ mus.Serializer[Profile]     = ProfileMUS
)

type fingerprintMUS struct{}

func (fingerprintMUS) Marshal(f Fingerprint, bs []byte) (n int) {
	return raw.Uint64.Marshal(uint64(f), bs)
}

func (fingerprintMUS) Unmarshal(bs []byte) (f Fingerprint, n int, err error) {
	v, n, err := raw.Uint64.Unmarshal(bs)
	return Fingerprint(v), n, err
}

func (fingerprintMUS) Size(f Fingerprint) (size int) {
	return raw.Uint64.Size(uint64(f))
}

func (fingerprintMUS) Skip(bs []byte) (n int, err error) {
	return raw.Uint64.Skip(bs)
}

type profileMUS struct{}

func (profileMUS) Marshal(p Profile, bs []byte) (n int) {
	n = varint.Int.Marshal(p.ID, bs)
	n += ord.String.Marshal(p.Description, bs[n:])
	n += ord.String.Marshal(p.NormalizedText, bs[n:])
	n += embeddingMUS.Marshal(p.Embedding, bs[n:])
	n += varint.Int.Marshal(p.Cluster, bs[n:])
	n += raw.Float64.Marshal(p.X, bs[n:])
	n += raw.Float64.Marshal(p.Y, bs[n:])
	return n
}

func (profileMUS) Unmarshal(bs []byte) (p Profile, n int, err error) {
	var n1 int
	p.ID, n, err = varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	p.Description, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	p.NormalizedText, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	p.Embedding, n1, err = embeddingMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	// An absent embedding decodes as nil, not an empty slice, so round
	// trips preserve equality.
	if len(p.Embedding) == 0 {
		p.Embedding = nil
	}
	p.Cluster, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	p.X, n1, err = raw.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	p.Y, n1, err = raw.Float64.Unmarshal(bs[n:])
	n += n1
	return
}

func (profileMUS) Size(p Profile) (size int) {
	size = varint.Int.Size(p.ID)
	size += ord.String.Size(p.Description)
	size += ord.String.Size(p.NormalizedText)
	size += embeddingMUS.Size(p.Embedding)
	size += varint.Int.Size(p.Cluster)
	size += raw.Float64.Size(p.X)
	size += raw.Float64.Size(p.Y)
	return size
}

func (profileMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	n, err = varint.Int.Skip(bs)
	if err != nil {
		return
	}
	for i := 0; i < 2; i++ {
		n1, err = ord.String.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	n1, err = embeddingMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	for i := 0; i < 2; i++ {
		n1, err = raw.Float64.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	return
}
