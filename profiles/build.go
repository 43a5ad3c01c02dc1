package profiles

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/sshhmmoonnyyaa/Basenko-friend-finder/cluster"
	"github.com/sshhmmoonnyyaa/Basenko-friend-finder/core"
	"github.com/sshhmmoonnyyaa/Basenko-friend-finder/corpus"
	"github.com/sshhmmoonnyyaa/Basenko-friend-finder/storage"
)

// Build runs the one-time corpus build: load, normalize, embed, cluster,
// freeze. Concurrent calls collapse into a single build; calling Build after
// the store is ready is a no-op.
func (s *Store) Build(ctx context.Context) error {
	if s.Ready() {
		return nil
	}

	_, err, _ := s.group.Do("build", func() (any, error) {
		if s.Ready() {
			return nil, nil
		}
		return nil, s.build(ctx)
	})
	return err
}

func (s *Store) build(ctx context.Context) error {
	raw, err := s.loadCorpus()
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}
	fingerprint := corpusFingerprint(raw)

	s.logger.Info("starting corpus build",
		"profiles", len(raw),
		"clusters", s.clusterCount,
		"seed", s.seed)

	built, cached, err := s.loadCache(ctx, fingerprint)
	if err != nil {
		return err
	}
	if !cached {
		built, err = s.embedCorpus(ctx, raw)
		if err != nil {
			return err
		}
	}

	vectors := make([][]float64, len(built))
	tokens := make([][]string, len(built))
	for i := range built {
		vectors[i] = built[i].Embedding
		tokens[i] = strings.Fields(built[i].NormalizedText)
	}

	model, err := cluster.Fit(vectors, s.clusterCount, s.seed)
	if err != nil {
		return fmt.Errorf("fit clustering: %w", err)
	}
	coords, err := cluster.Project2D(vectors)
	if err != nil {
		return fmt.Errorf("project coordinates: %w", err)
	}
	for i := range built {
		built[i].Cluster = model.Labels[i]
		built[i].X = coords[i][0]
		built[i].Y = coords[i][1]
	}

	if s.repo != nil && !cached {
		if err := s.repo.SaveProfiles(ctx, fingerprint, built); err != nil {
			// The cache is a derived artifact; losing it does not
			// invalidate the build.
			s.logger.Warn("failed to persist processed corpus", "error", err)
		} else {
			s.logger.Info("processed corpus persisted", "fingerprint", uint64(fingerprint))
		}
	}

	stats := computeStats(built, model, vectors)

	s.mu.Lock()
	s.profiles = built
	s.tokens = tokens
	s.model = model
	s.stats = stats
	s.ready = true
	s.mu.Unlock()

	s.logger.Info("corpus build complete",
		"profiles", len(built),
		"clusters", model.K,
		"embedding_dim", stats.EmbeddingDim,
		"from_cache", cached)
	return nil
}

func (s *Store) loadCorpus() ([]core.Profile, error) {
	if s.seedProfiles != nil {
		raw := make([]core.Profile, 0, len(s.seedProfiles))
		for _, p := range s.seedProfiles {
			if err := core.ValidateProfile(&p); err != nil {
				return nil, err
			}
			raw = append(raw, core.Profile{ID: p.ID, Description: p.Description, Cluster: -1})
		}
		if len(raw) == 0 {
			return nil, corpus.ErrEmptyCorpus
		}
		sort.Slice(raw, func(i, j int) bool { return raw[i].ID < raw[j].ID })
		return raw, nil
	}
	return corpus.Load(s.corpusPath, s.corpusColumn)
}

// loadCache returns the cached processed corpus when the repository holds
// profiles built from the same raw descriptions.
func (s *Store) loadCache(ctx context.Context, fingerprint core.Fingerprint) ([]core.Profile, bool, error) {
	if s.repo == nil {
		return nil, false, nil
	}

	cached, err := s.repo.Profiles(ctx, fingerprint)
	if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrFingerprintMismatch) {
		s.logger.Info("processed-corpus cache miss", "reason", err)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read processed corpus cache: %w", err)
	}

	s.logger.Info("processed-corpus cache hit", "profiles", len(cached))
	return cached, true, nil
}

// embedCorpus normalizes every description and embeds the batches on a
// worker pool. The input order is preserved.
func (s *Store) embedCorpus(ctx context.Context, raw []core.Profile) ([]core.Profile, error) {
	built := make([]core.Profile, len(raw))
	texts := make([]string, len(raw))
	for i, p := range raw {
		built[i] = p
		built[i].NormalizedText = s.normalizer.Normalize(p.Description)
		texts[i] = built[i].NormalizedText
	}

	pool, err := ants.NewPool(s.poolSize)
	if err != nil {
		return nil, fmt.Errorf("create embedding pool: %w", err)
	}
	defer pool.Release()

	progress := newProgressTracker(s.logger, len(raw), s.batchSize*s.poolSize)

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		embedErr error
	)
	for start := 0; start < len(texts); start += s.batchSize {
		end := start + s.batchSize
		if end > len(texts) {
			end = len(texts)
		}

		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()

			vectors, err := s.embedder.EmbedTexts(ctx, texts[start:end])
			if err != nil {
				errOnce.Do(func() { embedErr = fmt.Errorf("embed batch %d-%d: %w", start, end, err) })
				return
			}
			if len(vectors) != end-start {
				errOnce.Do(func() {
					embedErr = fmt.Errorf("embed batch %d-%d: got %d vectors, want %d", start, end, len(vectors), end-start)
				})
				return
			}
			for i, v := range vectors {
				built[start+i].Embedding = v
			}
			progress.Add(end - start)
		})
		if submitErr != nil {
			wg.Done()
			return nil, fmt.Errorf("submit embedding batch: %w", submitErr)
		}
	}
	wg.Wait()

	if embedErr != nil {
		return nil, embedErr
	}
	return built, nil
}

// corpusFingerprint identifies the raw corpus by its description content.
func corpusFingerprint(raw []core.Profile) core.Fingerprint {
	var b strings.Builder
	for _, p := range raw {
		b.WriteString(p.Description)
		b.WriteByte('\n')
	}
	return core.FingerprintFromContent(b.String())
}

func computeStats(built []core.Profile, model *cluster.Model, vectors [][]float64) core.DatasetStats {
	dim := 0
	if len(vectors) > 0 {
		dim = len(vectors[0])
	}

	var sum float64
	pairs := 0
	for i := 0; i < len(vectors); i++ {
		for j := i + 1; j < len(vectors); j++ {
			sum += cosine(vectors[i], vectors[j])
			pairs++
		}
	}
	mean := 0.0
	if pairs > 0 {
		mean = sum / float64(pairs)
	}

	return core.DatasetStats{
		TotalProfiles:          len(built),
		ClusterCount:           model.K,
		ClusterSizes:           model.Sizes(),
		EmbeddingDim:           dim,
		MeanPairwiseSimilarity: mean,
	}
}
