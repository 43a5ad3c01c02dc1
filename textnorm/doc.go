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


// Package textnorm normalizes Russian free-text self-descriptions into a
// compact token form suitable for embedding and cluster summaries.
//
// Normalization lowercases the input, strips everything outside the Russian
// alphabet, tokenizes, drops stop-words and short tokens, and reduces each
// surviving token to a stable base form with the Snowball Russian stemmer.
// The stop-word and length rules apply both before and after reduction.
//
// The output is deterministic and idempotent: normalizing an already
// normalized string returns it unchanged. An empty result is a valid outcome
// and signals "no usable content"; callers must treat it as a terminal case
// rather than an error.
package textnorm
