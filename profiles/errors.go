package profiles

import "errors"

var (
	// ErrNotReady indicates that the one-time build has not completed yet.
	ErrNotReady = errors.New("profile store is not built yet")

	// ErrNormalizerRequired indicates that no normalizer was provided.
	ErrNormalizerRequired = errors.New("normalizer is required")

	// ErrEmbedderRequired indicates that no embedder was provided.
	ErrEmbedderRequired = errors.New("embedder is required")

	// ErrCorpusRequired indicates that no corpus source was configured.
	ErrCorpusRequired = errors.New("corpus source is required")

	// ErrProfileNotFound indicates that no profile has the requested ID.
	ErrProfileNotFound = errors.New("profile not found")
)
