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

package badge

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name      string
		label     string
		status    string
		passed    bool
		wantColor string
	}{
		{name: "pass badge", label: "CRU", status: "PASS", passed: true, wantColor: "#4c1"},
		{name: "fail badge", label: "CRU", status: "FAIL", passed: false, wantColor: "#e05d44"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svg := string(Render(tt.label, tt.status, tt.passed))

			assert.True(t, strings.HasPrefix(svg, "<svg xmlns="))
			assert.Contains(t, svg, tt.wantColor)
			assert.Contains(t, svg, fmt.Sprintf("aria-label=%q", tt.label+": "+tt.status))
			assert.Contains(t, svg, ">"+tt.label+"</text>")
			assert.Contains(t, svg, ">"+tt.status+"</text>")
		})
	}
}

func TestRender_Geometry(t *testing.T) {
	// "CRU" (3 chars) and "PASS" (4 chars): 38 + 44 = 82 total
	svg := string(Render("CRU", "PASS", true))
	assert.Contains(t, svg, `width="82" height="20"`)
	assert.Contains(t, svg, `x="38" width="44"`)
}

func TestRender_Deterministic(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("identical input renders byte-identical badges", prop.ForAll(
		func(label string, passed bool) bool {
			status := "FAIL"
			if passed {
				status = "PASS"
			}
			return bytes.Equal(Render(label, status, passed), Render(label, status, passed))
		},
		gen.AlphaString(),
		gen.Bool(),
	))

	properties.Property("badge width follows the text lengths", prop.ForAll(
		func(label string) bool {
			want := fmt.Sprintf(`width="%d"`, charW*len(label)+padding+charW*4+padding)
			return strings.Contains(string(Render(label, "PASS", true)), want)
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cru_checks.svg")

	require.NoError(t, Write(path, "CRU", "PASS", true))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Render("CRU", "PASS", true), b)
}
