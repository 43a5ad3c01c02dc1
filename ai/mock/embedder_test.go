package mock

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockEmbedder_Deterministic(t *testing.T) {
	e := NewMockEmbedder()
	ctx := context.Background()

	v1, err := e.EmbedText(ctx, "спорт бег")
	require.NoError(t, err)
	v2, err := e.EmbedText(ctx, "спорт бег")
	require.NoError(t, err)

	assert.Equal(t, v1, v2)
	assert.Len(t, v1, Dim)
}

func TestMockEmbedder_UnitNorm(t *testing.T) {
	e := NewMockEmbedder()

	v, err := e.EmbedText(context.Background(), "рис путешеств")
	require.NoError(t, err)

	var sum float64
	for _, x := range v {
		sum += x * x
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestMockEmbedder_SharedRootsAreCloser(t *testing.T) {
	e := NewMockEmbedder()
	ctx := context.Background()

	a, err := e.EmbedText(ctx, "любл рис путешеств")
	require.NoError(t, err)
	b, err := e.EmbedText(ctx, "рис")
	require.NoError(t, err)
	c, err := e.EmbedText(ctx, "спорт бег")
	require.NoError(t, err)

	assert.Greater(t, dot(a, b), dot(a, c),
		"texts sharing a root should score higher than unrelated texts")
}

func TestMockEmbedder_EmbedTexts(t *testing.T) {
	e := NewMockEmbedder()

	vs, err := e.EmbedTexts(context.Background(), []string{"спорт", "бег"})
	require.NoError(t, err)
	require.Len(t, vs, 2)

	single, err := e.EmbedText(context.Background(), "спорт")
	require.NoError(t, err)
	assert.Equal(t, single, vs[0])
}

func TestMockEmbedder_CallCount(t *testing.T) {
	e := NewMockEmbedder()
	assert.Equal(t, 0, e.CallCount())

	_, err := e.EmbedText(context.Background(), "спорт")
	require.NoError(t, err)
	_, err = e.EmbedTexts(context.Background(), []string{"бег"})
	require.NoError(t, err)

	assert.Equal(t, 2, e.CallCount())

	e.Reset()
	assert.Equal(t, 0, e.CallCount())
}

func TestMockEmbedder_Injection(t *testing.T) {
	e := NewMockEmbedder()
	e.EmbedTextFunc = func(ctx context.Context, text string) ([]float64, error) {
		return []float64{1, 0, 0}, nil
	}

	v, err := e.EmbedText(context.Background(), "что угодно")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 0}, v)
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	if math.IsNaN(s) {
		return 0
	}
	return s
}
