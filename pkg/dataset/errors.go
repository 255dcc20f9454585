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
	"errors"
	"fmt"
	"strings"
)

// ErrMissingFile is returned when the dataset file does not exist.
// Checks treat this as "not applicable", never as a failure.
type ErrMissingFile struct {
	Path string
}

func (e ErrMissingFile) Error() string {
	return fmt.Sprintf("dataset file %q does not exist", e.Path)
}

// ErrSchema is returned when one or more required columns are absent
type ErrSchema struct {
	Path    string
	Missing []string
}

func (e ErrSchema) Error() string {
	return fmt.Sprintf("dataset %q is missing required columns: %s", e.Path, strings.Join(e.Missing, ", "))
}

// ErrNonFinite is returned when a required column holds a value that is
// NaN, infinite or not parseable as a float
type ErrNonFinite struct {
	Path   string
	Column string
	Row    int
	Value  string
}

func (e ErrNonFinite) Error() string {
	return fmt.Sprintf("dataset %q has a non-finite value %q in column %q at row %d", e.Path, e.Value, e.Column, e.Row)
}

// ErrInsufficientData is returned when a selection holds fewer samples
// than a rule needs
type ErrInsufficientData struct {
	What string
	Need int
	Got  int
}

func (e ErrInsufficientData) Error() string {
	return fmt.Sprintf("insufficient data: need %d samples %s, got %d", e.Need, e.What, e.Got)
}

// IsMissingFile reports whether err is an [ErrMissingFile]
func IsMissingFile(err error) bool {
	var e ErrMissingFile
	return errors.As(err, &e)
}
