package ai

import "context"

// Embedder generates dense vector embeddings from normalized text.
// Implementations must be thread-safe for concurrent use and deterministic:
// the same text always maps to the same vector for the life of the process.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	EmbedText(ctx context.Context, text string) ([]float64, error)

	// EmbedTexts generates embeddings for multiple texts in one batch.
	// The returned slice is in input order and has one vector per text.
	EmbedTexts(ctx context.Context, texts []string) ([][]float64, error)
}
