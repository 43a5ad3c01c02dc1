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

package profiles

import (
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/sshhmmoonnyyaa/Basenko-friend-finder/ai"
	"github.com/sshhmmoonnyyaa/Basenko-friend-finder/cluster"
	"github.com/sshhmmoonnyyaa/Basenko-friend-finder/core"
	"github.com/sshhmmoonnyyaa/Basenko-friend-finder/storage"
	"github.com/sshhmmoonnyyaa/Basenko-friend-finder/textnorm"
)

const (
	// DefaultClusterCount is the default number of k-means clusters.
	DefaultClusterCount = 6

	// DefaultSeed is the default clustering seed.
	DefaultSeed = 42

	// DefaultTopK is the default number of matches returned by FindSimilar.
	DefaultTopK = 20

	// DefaultTopTokens is the number of tokens in a cluster summary.
	DefaultTopTokens = 10

	defaultPoolSize  = 4
	defaultBatchSize = 32
)

// Store is the profile matching engine.
type Store struct {
	logger     *slog.Logger
	normalizer *textnorm.Normalizer
	embedder   ai.Embedder
	repo       storage.ProfileRepository

	corpusPath   string
	corpusColumn string
	seedProfiles []core.Profile

	clusterCount int
	seed         int64
	poolSize     int
	batchSize    int

	group singleflight.Group

	mu       sync.RWMutex
	ready    bool
	profiles []core.Profile
	tokens   [][]string
	model    *cluster.Model
	stats    core.DatasetStats
}

// Option configures a Store.
type Option func(*Store) error

// WithCorpusFile sets the CSV corpus to load during Build. The column names
// the description column; empty means auto-detect.
func WithCorpusFile(path, column string) Option {
	return func(s *Store) error {
		s.corpusPath = path
		s.corpusColumn = column
		return nil
	}
}

// WithProfiles supplies the raw profiles directly instead of a corpus file.
// Only Description and ID are used; everything else is derived during Build.
func WithProfiles(profiles []core.Profile) Option {
	return func(s *Store) error {
		s.seedProfiles = profiles
		return nil
	}
}

// WithRepository sets the processed-corpus cache.
func WithRepository(repo storage.ProfileRepository) Option {
	return func(s *Store) error {
		s.repo = repo
		return nil
	}
}

// WithClusterCount sets the number of k-means clusters.
// Default is DefaultClusterCount.
func WithClusterCount(k int) Option {
	return func(s *Store) error {
		if k > 0 {
			s.clusterCount = k
		}
		return nil
	}
}

// WithSeed sets the clustering seed.
// Default is DefaultSeed.
func WithSeed(seed int64) Option {
	return func(s *Store) error {
		s.seed = seed
		return nil
	}
}

// WithPoolSize sets the number of concurrent embedding workers used
// during Build.
func WithPoolSize(n int) Option {
	return func(s *Store) error {
		if n > 0 {
			s.poolSize = n
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger.With("component", "profiles")
		return nil
	}
}

// New creates a Store. A corpus source must be configured with
// WithCorpusFile or WithProfiles before Build is called.
func New(normalizer *textnorm.Normalizer, embedder ai.Embedder, opts ...Option) (*Store, error) {
	if normalizer == nil {
		return nil, ErrNormalizerRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	s := &Store{
		logger:       slog.Default().With("component", "profiles"),
		normalizer:   normalizer,
		embedder:     embedder,
		clusterCount: DefaultClusterCount,
		seed:         DefaultSeed,
		poolSize:     defaultPoolSize,
		batchSize:    defaultBatchSize,
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	if s.corpusPath == "" && s.seedProfiles == nil {
		return nil, ErrCorpusRequired
	}
	return s, nil
}

// Ready reports whether the one-time build has completed.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Stats returns the dataset statistics of the built corpus.
func (s *Store) Stats() (core.DatasetStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.ready {
		return core.DatasetStats{}, ErrNotReady
	}
	return s.stats, nil
}

// ClusterSummary describes one cluster. Unknown labels give a zero summary
// rather than an error.
func (s *Store) ClusterSummary(label int) (core.ClusterSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.ready {
		return core.ClusterSummary{}, ErrNotReady
	}
	return s.clusterSummary(label), nil
}

// clusterSummary must be called with the lock held and the store ready.
func (s *Store) clusterSummary(label int) core.ClusterSummary {
	var members [][]string
	for i := range s.profiles {
		if s.profiles[i].Cluster == label {
			members = append(members, s.tokens[i])
		}
	}
	if len(members) == 0 {
		return core.ClusterSummary{}
	}
	return core.ClusterSummary{
		MemberCount: len(members),
		TopTokens:   cluster.TopTokens(members, DefaultTopTokens),
	}
}

// Profile returns the built profile with the given ID.
func (s *Store) Profile(id int) (*core.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.ready {
		return nil, ErrNotReady
	}
	for i := range s.profiles {
		if s.profiles[i].ID == id {
			p := s.profiles[i]
			return &p, nil
		}
	}
	return nil, ErrProfileNotFound
}

// Profiles returns a copy of all built profiles in ascending ID order.
func (s *Store) Profiles() ([]core.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.ready {
		return nil, ErrNotReady
	}
	out := make([]core.Profile, len(s.profiles))
	copy(out, s.profiles)
	return out, nil
}
