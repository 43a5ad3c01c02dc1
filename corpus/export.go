package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sshhmmoonnyyaa/Basenko-friend-finder/core"
)

// processedHeader is the column layout of an exported processed corpus.
var processedHeader = []string{"id", "description", "normalized_text", "cluster", "pca_x", "pca_y"}

// Export writes the processed corpus to a CSV file at path, one row per
// profile with the derived columns appended.
func Export(path string, profiles []core.Profile) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}

	if err := Write(f, profiles); err != nil {
		f.Close()
		return fmt.Errorf("export corpus %s: %w", path, err)
	}
	return f.Close()
}

// Write writes the processed corpus rows to w in CSV form.
func Write(w io.Writer, profiles []core.Profile) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(processedHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, p := range profiles {
		record := []string{
			strconv.Itoa(p.ID),
			p.Description,
			p.NormalizedText,
			strconv.Itoa(p.Cluster),
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write profile %d: %w", p.ID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
