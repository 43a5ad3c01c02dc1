package mock

import (
	"context"
	"hash/fnv"
	"math"
)

// Dim is the dimensionality of vectors produced by the default mock behavior.
const Dim = 256

// MockEmbedder is a test double for ai.Embedder.
// It allows custom behavior injection via function fields.
//
// The default behavior embeds text as a bag of character trigrams hashed into
// Dim buckets and L2-normalized. That keeps it deterministic (same text, same
// vector) while giving texts with shared word roots a high cosine similarity,
// which is what the ranking and clustering tests need.
type MockEmbedder struct {
	// EmbedTextFunc is called by EmbedText if set.
	EmbedTextFunc func(ctx context.Context, text string) ([]float64, error)

	// EmbedTextsFunc is called by EmbedTexts if set.
	EmbedTextsFunc func(ctx context.Context, texts []string) ([][]float64, error)

	callCount int
}

// NewMockEmbedder creates a mock embedder with default deterministic behavior.
// Returns the concrete type so tests can assert on call counts.
func NewMockEmbedder() *MockEmbedder {
	return &MockEmbedder{}
}

// EmbedText generates a deterministic embedding for a single text.
func (m *MockEmbedder) EmbedText(ctx context.Context, text string) ([]float64, error) {
	m.callCount++

	if m.EmbedTextFunc != nil {
		return m.EmbedTextFunc(ctx, text)
	}
	return trigramVector(text, Dim), nil
}

// EmbedTexts generates deterministic embeddings for multiple texts.
func (m *MockEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float64, error) {
	m.callCount++

	if m.EmbedTextsFunc != nil {
		return m.EmbedTextsFunc(ctx, texts)
	}

	vectors := make([][]float64, len(texts))
	for i, text := range texts {
		vectors[i] = trigramVector(text, Dim)
	}
	return vectors, nil
}

// CallCount returns the number of times any embed method was called.
func (m *MockEmbedder) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockEmbedder) Reset() {
	m.callCount = 0
	m.EmbedTextFunc = nil
	m.EmbedTextsFunc = nil
}

// trigramVector hashes the character trigrams of text (padded per word, so
// word boundaries count) into dim buckets and L2-normalizes the result.
func trigramVector(text string, dim int) []float64 {
	vector := make([]float64, dim)

	runes := []rune(" " + text + " ")
	for i := 0; i+3 <= len(runes); i++ {
		h := fnv.New32a()
		h.Write([]byte(string(runes[i : i+3])))
		vector[int(h.Sum32())%dim]++
	}

	var sumSquares float64
	for _, v := range vector {
		sumSquares += v * v
	}
	if sumSquares > 0 {
		norm := math.Sqrt(sumSquares)
		for i := range vector {
			vector[i] /= norm
		}
	}
	return vector
}
