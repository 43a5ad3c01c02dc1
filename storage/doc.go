// Package storage defines the persistence interfaces and the binary
// serialization used for the processed-corpus cache.
//
// The engine recomputes everything from the raw corpus on each build, so the
// cache is a derived artifact: built profiles keyed by the fingerprint of the
// corpus they were derived from. A repository load with a stale fingerprint
// fails with ErrFingerprintMismatch and the caller rebuilds from scratch.
//
// Concrete backends live in subpackages; storage/badger provides the
// BadgerDB implementation.
package storage
