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


// Package ai defines the text-embedding abstraction used by the matching
// engine.
//
// The Embedder interface decouples the core pipeline from the concrete model.
// Two implementations exist:
//
//   - ai/openai: production implementation backed by a pretrained multilingual
//     sentence-embedding model served over an OpenAI-compatible API
//   - ai/mock: deterministic character-trigram embedder for tests
//
// The production model is expensive to construct: it is created once at
// process start and shared read-only afterwards. A model that fails to load is
// a fatal startup error; the system cannot serve without it. Identical input
// text always yields an identical vector, and the vector dimensionality is
// fixed for the lifetime of the process.
package ai
