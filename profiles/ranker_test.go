package profiles

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sshhmmoonnyyaa/Basenko-friend-finder/core"
)

func TestFindSimilar_RanksSharedTopicFirst(t *testing.T) {
	store, _ := builtTestStore(t)

	matches, err := store.FindSimilar(context.Background(), "Люблю рисовать", 3)
	require.NoError(t, err)
	require.Len(t, matches, 3)

	// Both drawing profiles must beat the sport profile.
	assert.Contains(t, []int{0, 1}, matches[0].ProfileID)
	assert.Contains(t, []int{0, 1}, matches[1].ProfileID)
	assert.Equal(t, 2, matches[2].ProfileID)

	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Similarity, matches[i].Similarity)
	}
}

func TestFindSimilar_IdenticalTextScoresOne(t *testing.T) {
	store, _ := builtTestStore(t)

	matches, err := store.FindSimilar(context.Background(), "Занимаюсь спортом и бегом", 1)
	require.NoError(t, err)
	require.Len(t, matches, 1)

	assert.Equal(t, 2, matches[0].ProfileID)
	assert.InDelta(t, 1.0, matches[0].Similarity, 1e-9)
}

func TestFindSimilar_TopKClamping(t *testing.T) {
	store, _ := builtTestStore(t)
	ctx := context.Background()

	matches, err := store.FindSimilar(ctx, "спорт", 1)
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	matches, err = store.FindSimilar(ctx, "спорт", 100)
	require.NoError(t, err)
	assert.Len(t, matches, 3)

	// Non-positive topK falls back to the default.
	matches, err = store.FindSimilar(ctx, "спорт", 0)
	require.NoError(t, err)
	assert.Len(t, matches, 3)
}

func TestFindSimilar_EmptyQueryIsTerminal(t *testing.T) {
	store, embedder := builtTestStore(t)
	calls := embedder.CallCount()

	for _, query := range []string{"", "   ", "!!! ??? 123", "hello world"} {
		matches, err := store.FindSimilar(context.Background(), query, 5)
		require.NoError(t, err, "query %q", query)
		assert.Empty(t, matches, "query %q", query)
	}

	assert.Equal(t, calls, embedder.CallCount(),
		"empty queries must not reach the embedder")
}

func TestFindSimilar_Deterministic(t *testing.T) {
	store, _ := builtTestStore(t)
	ctx := context.Background()

	first, err := store.FindSimilar(ctx, "рисование", 3)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := store.FindSimilar(ctx, "рисование", 3)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestPredictCluster(t *testing.T) {
	store, _ := builtTestStore(t)

	built, err := store.Profiles()
	require.NoError(t, err)

	prediction, err := store.PredictCluster(context.Background(), "Занимаюсь спортом")
	require.NoError(t, err)

	assert.Equal(t, built[2].Cluster, prediction.Cluster)
	assert.Greater(t, prediction.Confidence, 0.0)
	assert.LessOrEqual(t, prediction.Confidence, 1.0)
	assert.Equal(t, "спорт", prediction.NormalizedText)
	assert.Equal(t, 1, prediction.ClusterSize)
	assert.NotEmpty(t, prediction.TopTokens)
}

func TestPredictCluster_EmptyQuerySentinel(t *testing.T) {
	store, embedder := builtTestStore(t)
	calls := embedder.CallCount()

	prediction, err := store.PredictCluster(context.Background(), "... !!!")
	assert.ErrorIs(t, err, core.ErrEmptyQuery)
	assert.Equal(t, -1, prediction.Cluster)
	assert.Zero(t, prediction.Confidence)

	assert.Equal(t, calls, embedder.CallCount(),
		"an empty query must not reach the embedder")
}

func TestPredictCluster_Stability(t *testing.T) {
	store, _ := builtTestStore(t)
	ctx := context.Background()

	first, err := store.PredictCluster(ctx, "Увлекаюсь рисованием")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := store.PredictCluster(ctx, "Увлекаюсь рисованием")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
