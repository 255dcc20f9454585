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
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cru-project/skylark/internal/logger"
	"github.com/cru-project/skylark/pkg/badge"
	"github.com/cru-project/skylark/pkg/checks"
	"github.com/cru-project/skylark/pkg/config"
	"github.com/cru-project/skylark/pkg/dataset"
	"github.com/cru-project/skylark/pkg/db"
	"github.com/cru-project/skylark/pkg/report"
)

// Process exit codes of a run
const (
	// ExitOK means every executed check passed, or all were skipped
	ExitOK = 0
	// ExitCheckFailed means at least one check failed
	ExitCheckFailed = 1
	// ExitUnexpected means the run itself broke; a best-effort fail
	// badge has been written
	ExitUnexpected = 2
)

// Skylark runs the registered checks against the local datasets and
// writes the summary, log, badge and metrics artifacts.
type Skylark struct {
	cfg    *config.Config
	checks []checks.Check
	db     db.DB
}

// New creates a new Skylark from the given configuration and checks
func New(cfg *config.Config, cks []checks.Check) *Skylark {
	return &Skylark{
		cfg:    cfg,
		checks: cks,
		db:     db.NewInMemory(),
	}
}

// Run executes every registered check in order and writes the artifacts.
// It returns the process exit code. Checks run independently: one broken
// check never aborts the others, and a broken run still leaves a FAIL
// badge behind.
func (s *Skylark) Run(ctx context.Context) (code int) {
	log := logger.FromContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			log.Error("Unexpected error during the run", "panic", r)
			s.failsafe(ctx, fmt.Sprintf("unexpected error: %v", r))
			code = ExitUnexpected
		}
	}()

	data := dataset.NewDir(s.cfg.DataDir)
	for _, c := range s.checks {
		result := runCheck(ctx, c, data)
		log.InfoContext(ctx, "Check finished", "check", result.Name, "status", result.Status)
		s.db.Save(result)
	}

	summary := report.New(time.Now(), s.db.List())
	if err := s.writeArtifacts(ctx, summary); err != nil {
		log.Error("Failed to write artifacts", "error", err)
		s.failsafe(ctx, err.Error())
		return ExitUnexpected
	}

	if !summary.Passed {
		return ExitCheckFailed
	}
	return ExitOK
}

// runCheck guards a single check execution so a panicking check is
// reported as its own failure instead of taking the run down
func runCheck(ctx context.Context, c checks.Check, data dataset.Getter) (result checks.Result) {
	defer func() {
		if r := recover(); r != nil {
			result = checks.Fail(c.Name(), "check panicked: %v", r)
		}
	}()
	return c.Run(ctx, data)
}

// writeArtifacts writes the summary, log, badge and metrics files into
// the output directory, overwriting any previous run
func (s *Skylark) writeArtifacts(ctx context.Context, summary report.Summary) error {
	log := logger.FromContext(ctx)

	if err := os.MkdirAll(s.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	a := s.cfg.Artifacts
	if err := summary.WriteJSON(filepath.Join(s.cfg.OutputDir, a.SummaryFile)); err != nil {
		return err
	}
	if err := summary.WriteLog(filepath.Join(s.cfg.OutputDir, a.LogFile)); err != nil {
		return err
	}

	status := "PASS"
	if !summary.Passed {
		status = "FAIL"
	}
	if err := badge.Write(filepath.Join(s.cfg.OutputDir, a.BadgeFile), s.cfg.Badge.Label, status, summary.Passed); err != nil {
		return err
	}
	if err := summary.WriteMetrics(filepath.Join(s.cfg.OutputDir, a.MetricsFile)); err != nil {
		return err
	}

	log.InfoContext(ctx, "Artifacts written", "dir", s.cfg.OutputDir, "passed", summary.Passed)
	return nil
}

// failsafe writes a FAIL badge and a report carrying the error text, so
// a consumer never keeps a stale passing badge after a broken run. All
// writes are best effort.
func (s *Skylark) failsafe(ctx context.Context, detail string) {
	log := logger.FromContext(ctx)

	if err := os.MkdirAll(s.cfg.OutputDir, 0o755); err != nil {
		log.Error("Failed to create output directory for the fail badge", "error", err)
		return
	}

	a := s.cfg.Artifacts
	if err := badge.Write(filepath.Join(s.cfg.OutputDir, a.BadgeFile), s.cfg.Badge.Label, "FAIL", false); err != nil {
		log.Error("Failed to write the fail badge", "error", err)
	}

	results := append(s.db.List(), checks.Fail("orchestrator", "%s", detail))
	summary := report.New(time.Now(), results)
	if err := summary.WriteJSON(filepath.Join(s.cfg.OutputDir, a.SummaryFile)); err != nil {
		log.Error("Failed to write the failure summary", "error", err)
	}
	if err := summary.WriteLog(filepath.Join(s.cfg.OutputDir, a.LogFile)); err != nil {
		log.Error("Failed to write the failure log", "error", err)
	}
}
