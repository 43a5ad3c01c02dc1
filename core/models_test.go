package core

import (
	"testing"
)

func TestFingerprintFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "same content produces same fingerprint",
			content: "люблю рисовать и путешествовать",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "long content",
			content: "a considerably longer corpus snapshot that should still hash consistently across calls",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fp1 := FingerprintFromContent(tt.content)
			fp2 := FingerprintFromContent(tt.content)

			if fp1 != fp2 {
				t.Errorf("FingerprintFromContent() produced different fingerprints for same content: %d vs %d", fp1, fp2)
			}
		})
	}
}

func TestFingerprintFromContent_Different(t *testing.T) {
	fp1 := FingerprintFromContent("corpus one")
	fp2 := FingerprintFromContent("corpus two")

	if fp1 == fp2 {
		t.Errorf("FingerprintFromContent() produced same fingerprint for different content")
	}
}
