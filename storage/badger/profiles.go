// Copyright 2025 The Basenko Friend Finder Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package badger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"

	"github.com/sshhmmoonnyyaa/Basenko-friend-finder/core"
	"github.com/sshhmmoonnyyaa/Basenko-friend-finder/storage"
)

// ProfileRepository implements storage.ProfileRepository for BadgerDB.
type ProfileRepository struct {
	backend *Backend
}

var _ storage.ProfileRepository = (*ProfileRepository)(nil)

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(backend *Backend) (*ProfileRepository, error) {
	return &ProfileRepository{
		backend: backend,
	}, nil
}

// Close releases resources. ProfileRepository has no resources to release.
func (r *ProfileRepository) Close() error {
	return nil
}

// SaveProfiles replaces the cached profiles and records the corpus
// fingerprint. Stale entries from a previous corpus are removed first.
func (r *ProfileRepository) SaveProfiles(ctx context.Context, fingerprint core.Fingerprint, profiles []core.Profile) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := deleteByPrefix(tx, profileKeyPrefix()); err != nil {
			return err
		}

		for i := range profiles {
			key := makeProfileKey(profiles[i].ID)
			if err := tx.Set(key, storage.MarshalProfile(&profiles[i])); err != nil {
				return err
			}
		}

		if err := tx.Set(makeFingerprintKey(), storage.MarshalFingerprint(fingerprint)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Profiles loads the cached profiles in ascending ID order. The stored
// fingerprint must match the requested one.
func (r *ProfileRepository) Profiles(ctx context.Context, fingerprint core.Fingerprint) ([]core.Profile, error) {
	var profiles []core.Profile

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		stored, err := readFingerprint(tx)
		if err != nil {
			return err
		}
		if stored != fingerprint {
			return storage.ErrFingerprintMismatch
		}

		opts := badger.DefaultIteratorOptions
		opts.Prefix = profileKeyPrefix()
		it := tx.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				profile, err := storage.UnmarshalProfile(val)
				if err != nil {
					return err
				}
				profiles = append(profiles, *profile)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	if len(profiles) == 0 {
		return nil, storage.ErrNotFound
	}
	return profiles, nil
}

// Fingerprint returns the fingerprint of the cached corpus.
func (r *ProfileRepository) Fingerprint(ctx context.Context) (core.Fingerprint, error) {
	var fingerprint core.Fingerprint

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		stored, err := readFingerprint(tx)
		if err != nil {
			return err
		}
		fingerprint = stored
		return nil
	}, false)
	if err != nil {
		return 0, err
	}
	return fingerprint, nil
}

func readFingerprint(tx *badger.Txn) (core.Fingerprint, error) {
	item, err := tx.Get(makeFingerprintKey())
	if errors.Is(err, badger.ErrKeyNotFound) {
		return 0, storage.ErrNotFound
	}
	if err != nil {
		return 0, err
	}

	var fingerprint core.Fingerprint
	err = item.Value(func(val []byte) error {
		f, err := storage.UnmarshalFingerprint(val)
		if err != nil {
			return err
		}
		fingerprint = f
		return nil
	})
	return fingerprint, err
}

func deleteByPrefix(tx *badger.Txn, prefix []byte) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	opts.PrefetchValues = false
	it := tx.NewIterator(opts)

	var keys [][]byte
	for it.Rewind(); it.Valid(); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}
	it.Close()

	for _, key := range keys {
		if err := tx.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
