package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	n, err := New()
	require.NoError(t, err)
	assert.NotNil(t, n)
}

func TestNormalize_EmptyInput(t *testing.T) {
	n, err := New()
	require.NoError(t, err)

	tests := []struct {
		name string
		in   string
	}{
		{"empty string", ""},
		{"whitespace only", "   \t\n  "},
		{"punctuation only", "?!., - ()"},
		{"non-russian script only", "Hello world 123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "", n.Normalize(tt.in))
		})
	}
}

func TestNormalize_TotalExclusion(t *testing.T) {
	n, err := New()
	require.NoError(t, err)

	t.Run("stop-words only", func(t *testing.T) {
		assert.Equal(t, "", n.Normalize("и не на я с как а то ну да"))
	})

	t.Run("tokens under length threshold", func(t *testing.T) {
		assert.Equal(t, "", n.Normalize("эх ах ой"))
	})

	t.Run("greeting filler", func(t *testing.T) {
		assert.Equal(t, "", n.Normalize("Привет, это просто я!"))
	})
}

func TestNormalize_KeepsContentTokens(t *testing.T) {
	n, err := New()
	require.NoError(t, err)

	got := n.Normalize("Занимаюсь спортом и бегом")
	assert.Equal(t, "спорт бег", got, "content words survive in original order, filler is dropped")
}

func TestNormalize_StripsMixedScript(t *testing.T) {
	n, err := New()
	require.NoError(t, err)

	assert.Equal(t, "спорт", n.Normalize("I love спорт!!! <3"))
}

func TestNormalize_SharedBaseForm(t *testing.T) {
	n, err := New()
	require.NoError(t, err)

	// Different inflections of the same lexeme reduce to one base form, which
	// is what lets thematically close profiles overlap.
	a := n.Normalize("рисовать")
	b := n.Normalize("рисованием")
	require.NotEmpty(t, a)
	assert.Equal(t, a, b)
}

func TestNormalize_Deterministic(t *testing.T) {
	n, err := New()
	require.NoError(t, err)

	in := "Люблю рисовать и путешествовать по старинным городам"
	first := n.Normalize(in)
	for range 10 {
		assert.Equal(t, first, n.Normalize(in))
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	n, err := New()
	require.NoError(t, err)

	inputs := []string{
		"Люблю рисовать и путешествовать",
		"увлекаюсь рисованием и искусством",
		"занимаюсь спортом и бегом",
		"Программирую на разных языках, играю на гитаре",
		"",
	}
	for _, in := range inputs {
		once := n.Normalize(in)
		assert.Equal(t, once, n.Normalize(once), "normalize must be a no-op on its own output: %q", in)
	}
}

func TestTokens(t *testing.T) {
	n, err := New()
	require.NoError(t, err)

	t.Run("splits normalized output", func(t *testing.T) {
		toks := n.Tokens("Занимаюсь спортом и бегом")
		assert.Equal(t, []string{"спорт", "бег"}, toks)
	})

	t.Run("nil for unusable input", func(t *testing.T) {
		assert.Nil(t, n.Tokens("   "))
	})
}

func TestWithExtraStopWords(t *testing.T) {
	n, err := New(WithExtraStopWords([]string{"спорт"}))
	require.NoError(t, err)

	assert.Equal(t, "бег", n.Normalize("занимаюсь спортом и бегом"))
}
