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

// Package profiles implements the profile matching engine: an immutable
// in-memory store of embedded profiles with similarity ranking and cluster
// prediction on top.
//
// # Lifecycle
//
// A Store is built exactly once. Build loads the corpus, normalizes and
// embeds every description, fits the clustering, and freezes the result.
// Concurrent Build calls collapse into a single build; once Ready reports
// true the data never changes, so readers need no further coordination with
// the builder. Queries before the build completes fail with ErrNotReady.
//
// Any resource failure during the build (corpus file, embedding backend) is
// fatal to that build. Query-time degradation is reserved for one case: text
// that normalizes to nothing is a terminal non-result, not an error state.
// FindSimilar returns an empty list and PredictCluster returns the
// core.ErrEmptyQuery sentinel without ever touching the embedder.
//
// # Caching
//
// With a repository configured, Build persists the processed corpus keyed by
// the content fingerprint of the raw descriptions, and a later Build with an
// unchanged corpus skips the embedding pass. Clustering is refit from the
// cached embeddings; with a fixed seed that reproduces the cached labels.
package profiles
