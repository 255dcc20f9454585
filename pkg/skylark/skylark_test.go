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

package skylark

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cru-project/skylark/pkg/checks"
	"github.com/cru-project/skylark/pkg/config"
	"github.com/cru-project/skylark/pkg/dataset"
	"github.com/cru-project/skylark/pkg/factory"
	"github.com/cru-project/skylark/pkg/generate"
	"github.com/cru-project/skylark/pkg/report"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.NewConfig()
	cfg.SetDataDir(t.TempDir())
	cfg.SetOutputDir(filepath.Join(t.TempDir(), "badges"))
	cfg.SetBadgeLabel("CRU")
	return cfg
}

func readSummary(t *testing.T, cfg *config.Config) report.Summary {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(cfg.OutputDir, cfg.Artifacts.SummaryFile))
	require.NoError(t, err)
	var s report.Summary
	require.NoError(t, json.Unmarshal(b, &s))
	return s
}

func TestRun_GeneratedDatasetsPass(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, generate.All(context.Background(), generate.Options{Dir: cfg.DataDir}))

	s := New(cfg, factory.Default())
	code := s.Run(context.Background())

	assert.Equal(t, ExitOK, code)

	summary := readSummary(t, cfg)
	assert.True(t, summary.Passed)
	require.Len(t, summary.Results, 4)
	for _, r := range summary.Results {
		assert.Equal(t, checks.StatusPass, r.Status, "%s: %s", r.Name, r.Details)
	}

	for _, name := range []string{
		cfg.Artifacts.SummaryFile,
		cfg.Artifacts.LogFile,
		cfg.Artifacts.BadgeFile,
		cfg.Artifacts.MetricsFile,
	} {
		_, err := os.Stat(filepath.Join(cfg.OutputDir, name))
		assert.NoError(t, err, "artifact %s must be written", name)
	}

	badge, err := os.ReadFile(filepath.Join(cfg.OutputDir, cfg.Artifacts.BadgeFile))
	require.NoError(t, err)
	assert.Contains(t, string(badge), ">PASS</text>")
}

func TestRun_AllDatasetsMissing(t *testing.T) {
	cfg := testConfig(t)

	s := New(cfg, factory.Default())
	code := s.Run(context.Background())

	assert.Equal(t, ExitOK, code, "a run where every check is skipped passes")

	summary := readSummary(t, cfg)
	assert.True(t, summary.Passed)
	for _, r := range summary.Results {
		assert.Equal(t, checks.StatusSkip, r.Status)
	}
}

func TestRun_FailingCheck(t *testing.T) {
	cfg := testConfig(t)
	// a flat spectrum with no cutoff suppression
	content := "log10E_eV,flux\n19.0,1.0e-18\n19.2,1.0e-18\n19.4,1.0e-18\n19.8,1.0e-18\n20.0,1.0e-18\n"
	require.NoError(t, os.WriteFile(filepath.Join(cfg.DataDir, "uhecr_flux.csv"), []byte(content), 0o644))

	s := New(cfg, factory.Default())
	code := s.Run(context.Background())

	assert.Equal(t, ExitCheckFailed, code)

	summary := readSummary(t, cfg)
	assert.False(t, summary.Passed)

	badge, err := os.ReadFile(filepath.Join(cfg.OutputDir, cfg.Artifacts.BadgeFile))
	require.NoError(t, err)
	assert.Contains(t, string(badge), ">FAIL</text>")
}

type panicCheck struct{}

func (*panicCheck) Run(context.Context, dataset.Getter) checks.Result {
	panic("boom")
}
func (*panicCheck) SetConfig(checks.Runtime) error       { return nil }
func (*panicCheck) GetConfig() checks.Runtime            { return nil }
func (*panicCheck) Name() string                         { return "panic_check" }
func (*panicCheck) Schema() (*openapi3.SchemaRef, error) { return nil, nil }

func TestRun_PanickingCheckFailsItsResultOnly(t *testing.T) {
	cfg := testConfig(t)

	s := New(cfg, []checks.Check{&panicCheck{}})
	code := s.Run(context.Background())

	assert.Equal(t, ExitCheckFailed, code, "a panicking check fails the run, not the process")

	summary := readSummary(t, cfg)
	require.Len(t, summary.Results, 1)
	assert.Equal(t, checks.StatusFail, summary.Results[0].Status)
	assert.Contains(t, summary.Results[0].Details, "check panicked: boom")
}

func TestRun_UnwritableOutputDir(t *testing.T) {
	cfg := testConfig(t)
	// occupy the output path with a plain file so MkdirAll fails
	require.NoError(t, os.WriteFile(cfg.OutputDir, []byte("in the way"), 0o644))

	s := New(cfg, factory.Default())
	code := s.Run(context.Background())

	assert.Equal(t, ExitUnexpected, code)
}
