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


package core

import (
	"fmt"
	"strings"
)

// ValidateProfile validates a Profile according to domain rules.
//
// Validation rules:
//   - Description must not be empty or whitespace-only
//   - ID must not be negative
//
// NOT validated (populated during the corpus build):
//   - NormalizedText (may legitimately be empty)
//   - Embedding (empty until the embedding pass runs)
//   - Cluster and 2-D coordinates (set by the cluster engine)
func ValidateProfile(profile *Profile) error {
	if profile == nil {
		return fmt.Errorf("%w: profile is nil", ErrInvalidProfile)
	}

	if strings.TrimSpace(profile.Description) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrEmptyDescription)
	}

	if profile.ID < 0 {
		return fmt.Errorf("%w: negative id %d", ErrInvalidProfile, profile.ID)
	}

	return nil
}
