package storage

import (
	"context"

	"github.com/sshhmmoonnyyaa/Basenko-friend-finder/core"
)

// ProfileRepository persists built profiles as a cache keyed by the
// fingerprint of the source corpus. Implementations must be safe for
// concurrent use.
type ProfileRepository interface {
	// SaveProfiles replaces the cached profiles and records the corpus
	// fingerprint they were built from.
	SaveProfiles(ctx context.Context, fingerprint core.Fingerprint, profiles []core.Profile) error

	// Profiles loads the cached profiles in ascending ID order.
	// Returns ErrFingerprintMismatch when the cache was built from a
	// different corpus, and ErrNotFound when nothing is cached.
	Profiles(ctx context.Context, fingerprint core.Fingerprint) ([]core.Profile, error)

	// Fingerprint returns the fingerprint of the cached corpus.
	// Returns ErrNotFound when nothing is cached.
	Fingerprint(ctx context.Context) (core.Fingerprint, error)

	// Close closes the repository and releases resources.
	Close() error
}
