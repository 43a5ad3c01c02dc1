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

package cluster

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

const maxIterations = 100

var (
	// ErrNoVectors is returned when Fit is called with an empty input.
	ErrNoVectors = errors.New("no vectors to cluster")

	// ErrDimensionMismatch is returned when input vectors have inconsistent
	// dimensions, or a vector assigned later does not match the fitted model.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
)

// Model is a fitted k-means clustering.
type Model struct {
	// K is the effective number of clusters. It may be lower than requested
	// when there are fewer vectors than clusters.
	K int

	// Centroids holds one centroid per cluster, indexed by label.
	Centroids [][]float64

	// Labels holds the assigned cluster label for each input vector, in
	// input order.
	Labels []int
}

// Fit clusters vectors into at most k groups using seeded k-means.
//
// The same vectors, k, and seed always produce the same model. When k exceeds
// the number of vectors, the effective cluster count is reduced to match.
func Fit(vectors [][]float64, k int, seed int64) (*Model, error) {
	if len(vectors) == 0 {
		return nil, ErrNoVectors
	}
	if k < 1 {
		return nil, fmt.Errorf("cluster count must be positive, got %d", k)
	}

	dim := len(vectors[0])
	for i, v := range vectors {
		if len(v) != dim {
			return nil, fmt.Errorf("%w: vector %d has %d dimensions, want %d",
				ErrDimensionMismatch, i, len(v), dim)
		}
	}

	if k > len(vectors) {
		k = len(vectors)
	}

	centroids := initialCentroids(vectors, k, seed)
	labels := make([]int, len(vectors))

	for iter := 0; iter < maxIterations; iter++ {
		changed := false
		for i, v := range vectors {
			label := nearest(centroids, v)
			if label != labels[i] {
				changed = true
				labels[i] = label
			}
		}
		if iter > 0 && !changed {
			break
		}
		recomputeCentroids(centroids, vectors, labels)
	}

	return &Model{K: k, Centroids: centroids, Labels: labels}, nil
}

// Assign returns the nearest cluster label for v and a confidence in (0, 1].
// Confidence is 1/(1+d) where d is the euclidean distance to the centroid,
// so a vector sitting exactly on a centroid scores 1.
func (m *Model) Assign(v []float64) (int, float64, error) {
	if len(m.Centroids) == 0 {
		return -1, 0, ErrNoVectors
	}
	if len(v) != len(m.Centroids[0]) {
		return -1, 0, fmt.Errorf("%w: got %d dimensions, want %d",
			ErrDimensionMismatch, len(v), len(m.Centroids[0]))
	}

	label := nearest(m.Centroids, v)
	dist := floats.Distance(v, m.Centroids[label], 2)
	return label, 1 / (1 + dist), nil
}

// Sizes returns the member count per cluster label.
func (m *Model) Sizes() map[int]int {
	sizes := make(map[int]int, m.K)
	for _, label := range m.Labels {
		sizes[label]++
	}
	return sizes
}

// initialCentroids seeds the first centroid from rng and picks the rest
// farthest-first: each new centroid is the vector with the greatest distance
// to its nearest already-chosen centroid. Ties go to the lowest index.
func initialCentroids(vectors [][]float64, k int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))

	centroids := make([][]float64, 0, k)
	centroids = append(centroids, clone(vectors[rng.Intn(len(vectors))]))

	minDist := make([]float64, len(vectors))
	for i := range minDist {
		minDist[i] = math.Inf(1)
	}

	for len(centroids) < k {
		last := centroids[len(centroids)-1]
		farthest := 0
		best := math.Inf(-1)
		for i, v := range vectors {
			if d := floats.Distance(v, last, 2); d < minDist[i] {
				minDist[i] = d
			}
			if minDist[i] > best {
				best = minDist[i]
				farthest = i
			}
		}
		centroids = append(centroids, clone(vectors[farthest]))
	}
	return centroids
}

func recomputeCentroids(centroids [][]float64, vectors [][]float64, labels []int) {
	dim := len(vectors[0])
	sums := make([][]float64, len(centroids))
	counts := make([]int, len(centroids))
	for i := range sums {
		sums[i] = make([]float64, dim)
	}
	for i, v := range vectors {
		floats.Add(sums[labels[i]], v)
		counts[labels[i]]++
	}
	for i := range centroids {
		if counts[i] == 0 {
			// Empty cluster keeps its previous centroid.
			continue
		}
		floats.Scale(1/float64(counts[i]), sums[i])
		copy(centroids[i], sums[i])
	}
}

func nearest(centroids [][]float64, v []float64) int {
	label := 0
	best := math.Inf(1)
	for i, c := range centroids {
		if d := floats.Distance(v, c, 2); d < best {
			best = d
			label = i
		}
	}
	return label
}

func clone(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
