// skylark
// (C) 2025, CRU Project
//
// CRU Project and all other contributors /
// copyright owners license this file to you under the Apache
// License, Version 2.0 (the "License"); you may not use this
// file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Dataset is an in-memory, column-oriented view of one delimited file.
// Only the required columns are parsed and kept; a dataset is never
// mutated after Load returns.
type Dataset struct {
	path    string
	columns map[string][]float64
	rows    int
}

// Getter provides datasets to checks by file name. The production
// implementation is [Dir]; tests may supply their own.
type Getter interface {
	Load(name string, required []string) (*Dataset, error)
}

// Dir loads datasets from a single directory.
type Dir struct {
	root string
}

var _ Getter = (*Dir)(nil)

// NewDir creates a new directory-backed dataset getter
func NewDir(root string) Dir {
	return Dir{root: root}
}

func (d Dir) Load(name string, required []string) (*Dataset, error) {
	return Load(filepath.Join(d.root, name), required)
}

// Load reads the delimited file at path and parses every required column
// as float64. It fails fast with [ErrMissingFile], [ErrSchema] or
// [ErrNonFinite]; a value that does not parse as a finite float is
// treated as non-finite.
func Load(path string, required []string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrMissingFile{Path: path}
		}
		return nil, fmt.Errorf("failed to open dataset %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrSchema{Path: path, Missing: append([]string{}, required...)}
		}
		return nil, fmt.Errorf("failed to read header of %q: %w", path, err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range required {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, ErrSchema{Path: path, Missing: missing}
	}

	columns := make(map[string][]float64, len(required))
	rows := 0
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d of %q: %w", rows+1, path, err)
		}
		for _, name := range required {
			raw := strings.TrimSpace(record[index[name]])
			v, perr := strconv.ParseFloat(raw, 64)
			if perr != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNonFinite{Path: path, Column: name, Row: rows, Value: raw}
			}
			columns[name] = append(columns[name], v)
		}
		rows++
	}

	return &Dataset{path: path, columns: columns, rows: rows}, nil
}

// Len returns the number of records
func (d *Dataset) Len() int {
	return d.rows
}

// Path returns the source file the dataset was loaded from
func (d *Dataset) Path() string {
	return d.path
}

// Column returns the parsed values of a required column in record order.
// It returns nil for columns that were not requested at load time.
func (d *Dataset) Column(name string) []float64 {
	return d.columns[name]
}
