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

package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cru-project/skylark/pkg/checks/cmb"
	"github.com/cru-project/skylark/pkg/checks/dm"
	"github.com/cru-project/skylark/pkg/checks/gw"
	"github.com/cru-project/skylark/pkg/checks/uhecr"
)

func TestConfig_Empty(t *testing.T) {
	assert.True(t, Config{}.Empty())
	assert.False(t, Config{GW: &gw.Config{}}.Empty())
}

func TestConfig_Iter_ReportOrder(t *testing.T) {
	cfg := Config{
		DM:    &dm.Config{},
		UHECR: &uhecr.Config{},
		CMB:   &cmb.Config{},
		GW:    &gw.Config{},
	}

	var names []string
	for _, c := range cfg.Iter() {
		names = append(names, c.For())
	}
	assert.Equal(t, []string{"gw_strain", "cmb_feature", "uhecr_cutoff", "dm_limits"}, names)
}

func TestConfig_Iter_SkipsAbsentChecks(t *testing.T) {
	cfg := Config{CMB: &cmb.Config{}, DM: &dm.Config{}}

	configs := cfg.Iter()
	require.Len(t, configs, 2)
	assert.Equal(t, "cmb_feature", configs[0].For())
	assert.Equal(t, "dm_limits", configs[1].For())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{name: "empty config is valid", config: Config{}},
		{name: "valid checks", config: Config{GW: &gw.Config{TargetHz: 2e-3}, DM: &dm.Config{}}},
		{name: "one invalid check", config: Config{GW: &gw.Config{TargetHz: -1}}, wantErr: true},
		{
			name: "errors are joined across checks",
			config: Config{
				GW:    &gw.Config{TargetHz: -1},
				UHECR: &uhecr.Config{MaxRatio: -0.3},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestConfig_For(t *testing.T) {
	cfg := Config{GW: &gw.Config{TargetHz: 2e-3}}

	require.NotNil(t, cfg.For("gw_strain"))
	assert.Equal(t, "gw_strain", cfg.For("gw_strain").For())
	assert.Nil(t, cfg.For("cmb_feature"))
	assert.Nil(t, cfg.For("unknown"))

	assert.True(t, cfg.HasCheck("gw_strain"))
	assert.False(t, cfg.HasCheck("dm_limits"))
}

func TestConfig_UnmarshalYAML(t *testing.T) {
	raw := `
gw_strain:
  targetHz: 2.0e-3
  strainMin: 5.0e-24
  strainMax: 5.0e-21
uhecr_cutoff:
  maxRatio: 0.25
`
	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte(raw), &cfg))

	require.NotNil(t, cfg.GW)
	assert.Equal(t, 2.0e-3, cfg.GW.TargetHz)
	assert.Equal(t, 5.0e-24, cfg.GW.StrainMin)
	require.NotNil(t, cfg.UHECR)
	assert.Equal(t, 0.25, cfg.UHECR.MaxRatio)
	assert.Nil(t, cfg.CMB)
	assert.Nil(t, cfg.DM)
	assert.NoError(t, cfg.Validate())
}
