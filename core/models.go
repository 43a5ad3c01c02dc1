package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// Fingerprint identifies a corpus snapshot by its content.
// Two corpora with identical descriptions share a fingerprint.
type Fingerprint uint64

// FingerprintFromContent derives a deterministic fingerprint from text using
// BLAKE2b hashing. Identical content always produces the same fingerprint.
func FingerprintFromContent(text string) Fingerprint {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return Fingerprint(binary.LittleEndian.Uint64(sum))
}

// Profile is one corpus entry: a person's free-text self-description plus the
// artifacts derived from it during the one-time corpus build.
// Profiles are immutable once the build completes.
type Profile struct {
	ID             int       // positional index within the filtered corpus
	Description    string    // raw self-description, never empty
	NormalizedText string    // normalizer output, may be empty
	Embedding      []float64 // fixed-dimensional sentence embedding
	Cluster        int       // k-means label assigned at build time
	X, Y           float64   // 2-D projection, visualization only
}

// MatchResult is one entry of a ranked similarity search.
type MatchResult struct {
	ProfileID   int
	Similarity  float64
	Description string
	Cluster     int
}

// TokenCount is a normalized token with its occurrence count inside a cluster.
type TokenCount struct {
	Token string
	Count int
}

// ClusterSummary describes one cluster of the fitted partition.
type ClusterSummary struct {
	MemberCount int
	TopTokens   []TokenCount
}

// Prediction is the result of assigning a query text to its nearest cluster.
// A query whose normalized text is empty yields the sentinel prediction
// {Cluster: -1, Confidence: 0}.
type Prediction struct {
	Cluster        int
	Confidence     float64
	NormalizedText string
	ClusterSize    int
	TopTokens      []TokenCount
}

// DatasetStats summarizes a built profile store.
type DatasetStats struct {
	TotalProfiles          int
	ClusterCount           int
	ClusterSizes           map[int]int
	EmbeddingDim           int
	MeanPairwiseSimilarity float64
}
