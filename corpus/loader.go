// Copyright 2025 The Basenko Friend Finder Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package corpus loads profile descriptions from CSV files and writes the
// processed corpus back out with the derived columns appended.
package corpus

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sshhmmoonnyyaa/Basenko-friend-finder/core"
)

var (
	// ErrMissingColumn is returned when no description column can be found
	// in the CSV header.
	ErrMissingColumn = errors.New("description column not found")

	// ErrEmptyCorpus is returned when the CSV contains no usable rows.
	ErrEmptyCorpus = errors.New("corpus contains no profiles")
)

// defaultColumns are tried in order when no column name is given.
var defaultColumns = []string{"description", "описание"}

// Load reads profiles from a CSV file. The column argument names the
// description column; when empty, common names are tried case-insensitively.
// Rows with a blank description are dropped. Profile IDs are the positional
// index of the row in the file (header excluded), starting at 0, so dropped
// rows leave gaps in the ID sequence.
func Load(path, column string) ([]core.Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	profiles, err := Read(f, column)
	if err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", path, err)
	}
	return profiles, nil
}

// Read parses CSV profile rows from r. See Load for the row semantics.
func Read(r io.Reader, column string) ([]core.Profile, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyCorpus
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	col, err := findColumn(header, column)
	if err != nil {
		return nil, err
	}
	headerLine, _ := reader.FieldPos(0)

	var profiles []core.Profile
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		// The reader skips fully blank lines without reporting them, so the
		// positional ID comes from the file line, not a read counter.
		line, _ := reader.FieldPos(0)
		id := line - headerLine - 1
		if col >= len(record) {
			continue
		}
		description := strings.TrimSpace(record[col])
		if description == "" {
			continue
		}
		profiles = append(profiles, core.Profile{
			ID:          id,
			Description: description,
			Cluster:     -1,
		})
	}

	if len(profiles) == 0 {
		return nil, ErrEmptyCorpus
	}
	return profiles, nil
}

func findColumn(header []string, column string) (int, error) {
	candidates := defaultColumns
	if column != "" {
		candidates = []string{strings.ToLower(column)}
	}
	for _, want := range candidates {
		for i, name := range header {
			if strings.ToLower(strings.TrimSpace(name)) == want {
				return i, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: header %v", ErrMissingColumn, header)
}
