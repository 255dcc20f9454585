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

package cmb

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cru-project/skylark/pkg/checks"
	"github.com/cru-project/skylark/pkg/dataset"
)

// spectrum renders a CSV with one Cl sample per multipole
func spectrum(ell []int, cl []float64) string {
	var b strings.Builder
	b.WriteString("ell,Cl\n")
	for i := range ell {
		fmt.Fprintf(&b, "%d,%g\n", ell[i], cl[i])
	}
	return b.String()
}

// window returns 11 multipoles spanning the default check window and a
// flat baseline of ones, which callers perturb per test case
func window() ([]int, []float64) {
	ell := make([]int, 11)
	cl := make([]float64, 11)
	for i := range ell {
		ell[i] = 450 + 10*i
		cl[i] = 1.0
	}
	return ell, cl
}

func dataDir(t *testing.T, content string) dataset.Getter {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, defaultFile), []byte(content), 0o644))
	return dataset.NewDir(dir)
}

func TestCheck_Run(t *testing.T) {
	// bounds chosen exactly representable in binary so the inclusive
	// comparisons are not at the mercy of decimal rounding
	cfg := &Config{DepthMin: 0.125, DepthMax: 0.5}

	tests := []struct {
		name       string
		perturb    func(cl []float64)
		wantStatus checks.Status
		wantDetail string
	}{
		{
			name:       "depth inside the envelope passes",
			perturb:    func(cl []float64) { cl[5] = 1.25 },
			wantStatus: checks.StatusPass,
			wantDetail: "relative modulation depth=2.500e-01",
		},
		{
			name:       "flat spectrum fails below the envelope",
			perturb:    func(cl []float64) {},
			wantStatus: checks.StatusFail,
			wantDetail: "relative modulation depth=0.000e+00",
		},
		{
			name:       "too deep a modulation fails",
			perturb:    func(cl []float64) { cl[5] = 2.0 },
			wantStatus: checks.StatusFail,
		},
		{
			name:       "depth exactly on the lower bound passes",
			perturb:    func(cl []float64) { cl[5] = 1.125 },
			wantStatus: checks.StatusPass,
		},
		{
			name:       "depth exactly on the upper bound passes",
			perturb:    func(cl []float64) { cl[5] = 1.5 },
			wantStatus: checks.StatusPass,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ell, cl := window()
			tt.perturb(cl)

			c := NewCheck()
			require.NoError(t, c.SetConfig(cfg))
			res := c.Run(context.Background(), dataDir(t, spectrum(ell, cl)))

			assert.Equal(t, CheckName, res.Name)
			assert.Equal(t, tt.wantStatus, res.Status)
			if tt.wantDetail != "" {
				assert.Contains(t, res.Details, tt.wantDetail)
			}
		})
	}
}

func TestCheck_Run_DefaultEnvelope(t *testing.T) {
	// a per-mille modulation on a 1.2e-10 plateau is the predicted imprint
	ell, cl := window()
	for i := range cl {
		cl[i] = 1.2e-10
	}
	cl[5] = 1.2e-10 * 1.001

	c := NewCheck()
	res := c.Run(context.Background(), dataDir(t, spectrum(ell, cl)))

	assert.Equal(t, checks.StatusPass, res.Status)
	assert.Contains(t, res.Details, "expected in [3.000e-04, 5.000e-03]")
}

func TestCheck_Run_EmptyWindow(t *testing.T) {
	// every multipole sits outside the default [450, 550] window
	content := spectrum([]int{2, 100, 600, 2500}, []float64{1, 1, 1, 1})

	c := NewCheck()
	res := c.Run(context.Background(), dataDir(t, content))

	assert.Equal(t, checks.StatusFail, res.Status)
	assert.Contains(t, res.Details, "insufficient data: need 10 samples with ell in [450, 550], got 0")
}

func TestCheck_Run_UnderpopulatedWindow(t *testing.T) {
	ell := []int{450, 500, 550}
	content := spectrum(ell, []float64{1, 1, 1})

	c := NewCheck()
	res := c.Run(context.Background(), dataDir(t, content))

	assert.Equal(t, checks.StatusFail, res.Status)
	assert.Contains(t, res.Details, "insufficient data")
}

func TestCheck_Run_NonPositiveBaseline(t *testing.T) {
	ell, cl := window()
	for i := range cl {
		cl[i] = 0
	}

	c := NewCheck()
	require.NoError(t, c.SetConfig(&Config{MinSamples: 5}))
	res := c.Run(context.Background(), dataDir(t, spectrum(ell, cl)))

	assert.Equal(t, checks.StatusFail, res.Status)
	assert.Contains(t, res.Details, "non-positive baseline median")
}

func TestCheck_Run_MissingFileSkips(t *testing.T) {
	c := NewCheck()

	res := c.Run(context.Background(), dataset.NewDir(t.TempDir()))

	assert.Equal(t, checks.StatusSkip, res.Status)
	assert.Contains(t, res.Details, defaultFile)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{name: "defaults are valid", config: Config{}},
		{name: "custom window", config: Config{WindowLo: 400, WindowHi: 600, MinSamples: 20}},
		{name: "inverted window", config: Config{WindowLo: 600, WindowHi: 500}, wantErr: true},
		{name: "negative sample count", config: Config{MinSamples: -1}, wantErr: true},
		{name: "negative depth bound", config: Config{DepthMin: -3e-4}, wantErr: true},
		{name: "inverted depth envelope", config: Config{DepthMin: 1e-2, DepthMax: 1e-3}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				var e checks.ErrInvalidConfig
				assert.ErrorAs(t, err, &e)
				return
			}
			assert.NoError(t, err)
		})
	}
}
