package core

import (
	"errors"
	"testing"
)

func TestValidateProfile(t *testing.T) {
	tests := []struct {
		name    string
		profile *Profile
		wantErr error
	}{
		{
			name:    "valid profile",
			profile: &Profile{ID: 0, Description: "увлекаюсь рисованием"},
			wantErr: nil,
		},
		{
			name:    "nil profile",
			profile: nil,
			wantErr: ErrInvalidProfile,
		},
		{
			name:    "empty description",
			profile: &Profile{ID: 1, Description: ""},
			wantErr: ErrEmptyDescription,
		},
		{
			name:    "whitespace-only description",
			profile: &Profile{ID: 1, Description: "   \t "},
			wantErr: ErrEmptyDescription,
		},
		{
			name:    "negative id",
			profile: &Profile{ID: -1, Description: "спорт"},
			wantErr: ErrInvalidProfile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProfile(tt.profile)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateProfile() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateProfile() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
