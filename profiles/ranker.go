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
	"context"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/sshhmmoonnyyaa/Basenko-friend-finder/core"
)

// FindSimilar ranks the corpus against the query text by cosine similarity
// and returns up to topK matches, best first. Ties keep ascending profile ID
// order. A query that normalizes to nothing returns an empty list; that is a
// terminal non-result, not an error.
func (s *Store) FindSimilar(ctx context.Context, text string, topK int) ([]core.MatchResult, error) {
	profiles, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	normalized := s.normalizer.Normalize(text)
	if normalized == "" {
		s.logger.Debug("query normalized to nothing", "query", text)
		return []core.MatchResult{}, nil
	}

	query, err := s.embedder.EmbedText(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	matches := make([]core.MatchResult, 0, len(profiles))
	for i := range profiles {
		score, err := similarity(query, profiles[i].Embedding)
		if err != nil {
			return nil, fmt.Errorf("profile %d: %w", profiles[i].ID, err)
		}
		matches = append(matches, core.MatchResult{
			ProfileID:   profiles[i].ID,
			Similarity:  score,
			Description: profiles[i].Description,
			Cluster:     profiles[i].Cluster,
		})
	}

	// Profiles are held in ascending ID order, so a stable sort keeps ID
	// order within equal scores.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})

	if topK < len(matches) {
		matches = matches[:topK]
	}
	return matches, nil
}

// PredictCluster assigns the query text to its nearest cluster. A query that
// normalizes to nothing short-circuits to the core.ErrEmptyQuery sentinel
// without calling the embedder.
func (s *Store) PredictCluster(ctx context.Context, text string) (core.Prediction, error) {
	if _, err := s.snapshot(); err != nil {
		return core.Prediction{Cluster: -1}, err
	}

	normalized := s.normalizer.Normalize(text)
	if normalized == "" {
		return core.Prediction{Cluster: -1}, core.ErrEmptyQuery
	}

	query, err := s.embedder.EmbedText(ctx, normalized)
	if err != nil {
		return core.Prediction{Cluster: -1}, fmt.Errorf("embed query: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	label, confidence, err := s.model.Assign(query)
	if err != nil {
		return core.Prediction{Cluster: -1}, fmt.Errorf("assign cluster: %w", err)
	}

	summary := s.clusterSummary(label)
	return core.Prediction{
		Cluster:        label,
		Confidence:     confidence,
		NormalizedText: normalized,
		ClusterSize:    summary.MemberCount,
		TopTokens:      summary.TopTokens,
	}, nil
}

// snapshot returns the built profiles. The slice is safe to read without the
// lock because the store is immutable once ready.
func (s *Store) snapshot() ([]core.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.ready {
		return nil, ErrNotReady
	}
	return s.profiles, nil
}

// similarity computes cosine similarity; a zero vector scores 0 against
// everything.
func similarity(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("embedding dimension mismatch: %d vs %d", len(a), len(b))
	}
	na := floats.Norm(a, 2)
	nb := floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0, nil
	}
	return floats.Dot(a, b) / (na * nb), nil
}

func cosine(a, b []float64) float64 {
	score, err := similarity(a, b)
	if err != nil {
		return 0
	}
	return score
}
