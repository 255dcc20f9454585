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

package generate

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cru-project/skylark/pkg/dataset"
)

var datasetFiles = []string{
	"gw_strain.csv",
	"uhecr_flux.csv",
	"cmb_cl_TT.csv",
	"dm_limits.csv",
}

func TestAll_WritesEveryDataset(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, All(context.Background(), Options{Dir: dir}))

	for _, name := range datasetFiles {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, "dataset %s must be written", name)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestAll_Deterministic(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()

	require.NoError(t, All(context.Background(), Options{Dir: first}))
	require.NoError(t, All(context.Background(), Options{Dir: second}))

	for _, name := range datasetFiles {
		a, err := os.ReadFile(filepath.Join(first, name))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(second, name))
		require.NoError(t, err)
		assert.Equal(t, a, b, "dataset %s must render byte-identical", name)
	}
}

func TestAll_KeepsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "dm_limits.csv")
	require.NoError(t, os.WriteFile(existing, []byte("hand-edited\n"), 0o644))

	require.NoError(t, All(context.Background(), Options{Dir: dir}))

	b, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "hand-edited\n", string(b))
}

func TestAll_ForceOverwrites(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "dm_limits.csv")
	require.NoError(t, os.WriteFile(existing, []byte("hand-edited\n"), 0o644))

	require.NoError(t, All(context.Background(), Options{Dir: dir, Force: true}))

	b, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Contains(t, string(b), "mass_GeV,sigma_SI_cm2,limit_SI_cm2")
}

func TestAll_DatasetsLoadWithCheckColumns(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, All(context.Background(), Options{Dir: dir}))

	tests := []struct {
		file     string
		required []string
		minRows  int
	}{
		{file: "gw_strain.csv", required: []string{"f_Hz", "h_strain"}, minRows: 24},
		{file: "uhecr_flux.csv", required: []string{"log10E_eV", "flux"}, minRows: 11},
		{file: "cmb_cl_TT.csv", required: []string{"ell", "Cl"}, minRows: 1000},
		{file: "dm_limits.csv", required: []string{"mass_GeV", "sigma_SI_cm2", "limit_SI_cm2"}, minRows: 8},
	}

	d := dataset.NewDir(dir)
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			ds, err := d.Load(tt.file, tt.required)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, ds.Len(), tt.minRows)
		})
	}
}

func TestAll_SpectraAreOrdered(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, All(context.Background(), Options{Dir: dir}))

	d := dataset.NewDir(dir)

	gw, err := d.Load("gw_strain.csv", []string{"f_Hz"})
	require.NoError(t, err)
	assert.True(t, dataset.IsStrictlyIncreasing(gw.Column("f_Hz")))

	uhecr, err := d.Load("uhecr_flux.csv", []string{"log10E_eV"})
	require.NoError(t, err)
	assert.True(t, dataset.IsStrictlyIncreasing(uhecr.Column("log10E_eV")))

	cmb, err := d.Load("cmb_cl_TT.csv", []string{"ell"})
	require.NoError(t, err)
	assert.True(t, dataset.IsStrictlyIncreasing(cmb.Column("ell")))
}
