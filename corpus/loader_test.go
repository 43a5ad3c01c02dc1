package corpus

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sshhmmoonnyyaa/Basenko-friend-finder/core"
)

func TestRead_DetectsDescriptionColumn(t *testing.T) {
	csvData := "name,description\nАня,Люблю рисовать\nБоря,Занимаюсь спортом\n"

	profiles, err := Read(strings.NewReader(csvData), "")
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	assert.Equal(t, 0, profiles[0].ID)
	assert.Equal(t, "Люблю рисовать", profiles[0].Description)
	assert.Equal(t, -1, profiles[0].Cluster)
	assert.Equal(t, 1, profiles[1].ID)
}

func TestRead_DetectsRussianHeader(t *testing.T) {
	csvData := "Имя,Описание\nАня,Люблю рисовать\n"

	profiles, err := Read(strings.NewReader(csvData), "")
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "Люблю рисовать", profiles[0].Description)
}

func TestRead_ExplicitColumn(t *testing.T) {
	csvData := "id,bio\n1,Занимаюсь спортом\n"

	profiles, err := Read(strings.NewReader(csvData), "bio")
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "Занимаюсь спортом", profiles[0].Description)
}

func TestRead_DropsBlankRowsKeepingIDs(t *testing.T) {
	csvData := "description\nЛюблю рисовать\n\n   \nЗанимаюсь спортом\n"

	profiles, err := Read(strings.NewReader(csvData), "")
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	assert.Equal(t, 0, profiles[0].ID)
	assert.Equal(t, 3, profiles[1].ID)

	t.Run("consecutive blank lines", func(t *testing.T) {
		csvData := "description\n\n\n\nЛюблю рисовать\n\nЗанимаюсь спортом\n"

		profiles, err := Read(strings.NewReader(csvData), "")
		require.NoError(t, err)
		require.Len(t, profiles, 2)

		assert.Equal(t, 3, profiles[0].ID)
		assert.Equal(t, 5, profiles[1].ID)
	})
}

func TestRead_Errors(t *testing.T) {
	t.Run("missing column", func(t *testing.T) {
		_, err := Read(strings.NewReader("a,b\n1,2\n"), "")
		assert.ErrorIs(t, err, ErrMissingColumn)
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := Read(strings.NewReader(""), "")
		assert.ErrorIs(t, err, ErrEmptyCorpus)
	})

	t.Run("header only", func(t *testing.T) {
		_, err := Read(strings.NewReader("description\n"), "")
		assert.ErrorIs(t, err, ErrEmptyCorpus)
	})

	t.Run("all rows blank", func(t *testing.T) {
		_, err := Read(strings.NewReader("description\n\n  \n"), "")
		assert.ErrorIs(t, err, ErrEmptyCorpus)
	})
}

func TestWrite_RoundTripsProcessedColumns(t *testing.T) {
	profiles := []core.Profile{
		{ID: 0, Description: "Люблю рисовать", NormalizedText: "любл рис", Cluster: 2, X: 0.5, Y: -1.25},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, profiles))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,description,normalized_text,cluster,pca_x,pca_y", lines[0])
	assert.Equal(t, "0,Люблю рисовать,любл рис,2,0.5,-1.25", lines[1])
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.csv")
	require.NoError(t, os.WriteFile(path, []byte("description\nЛюблю рисовать\n"), 0o644))

	profiles, err := Load(path, "")
	require.NoError(t, err)
	require.Len(t, profiles, 1)

	_, err = Load(filepath.Join(t.TempDir(), "missing.csv"), "")
	assert.Error(t, err)
}
