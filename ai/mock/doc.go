// Package mock provides a test double implementation of ai.Embedder.
//
// The mock allows tests to run without a local embedding server and gives
// controlled, deterministic behavior. The default embedding is a hashed bag
// of character trigrams, so texts that share word roots come out close in
// cosine space.
//
// # Usage in Tests
//
//	mockEmbedder := mock.NewMockEmbedder()
//	vector, err := mockEmbedder.EmbedText(ctx, "спорт бег")
//
//	// Custom behavior injection
//	mockEmbedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float64, error) {
//	    return []float64{0.1, 0.2, 0.3}, nil
//	}
//
//	// Check call counts
//	count := mockEmbedder.CallCount()
package mock
