package badger

import "encoding/binary"

// Key prefixes for different data types
const (
	profilePrefix  = "profile"
	fingerprintKey = "corpusfp"
)

// makeProfileKey generates a key for a profile by ID. The ID is written
// BigEndian so lexicographic iteration yields ascending ID order.
func makeProfileKey(id int) []byte {
	prefix := profilePrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// profileKeyPrefix returns the prefix shared by all profile keys.
func profileKeyPrefix() []byte {
	return []byte(profilePrefix + ":")
}

// makeFingerprintKey generates the key holding the corpus fingerprint.
func makeFingerprintKey() []byte {
	return []byte(fingerprintKey)
}
