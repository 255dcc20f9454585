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

// Package report serializes the aggregate result of one run into the
// machine-readable summary, the human-readable log and the prometheus
// textfile artifacts.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cru-project/skylark/pkg/checks"
)

// Summary is the aggregate over all check results of one invocation.
// It is written once and never updated.
type Summary struct {
	// Timestamp is the UTC time the run finished
	Timestamp time.Time `json:"timestamp_utc"`
	// Passed is the conjunction of all non-skipped results
	Passed bool `json:"passed_all"`
	// Results lists the individual outcomes in report order
	Results []checks.Result `json:"results"`
}

// New builds the summary over one run. Skipped checks never count
// against the overall outcome; a run where every check was skipped, or
// where no check ran at all, passes.
func New(ts time.Time, results []checks.Result) Summary {
	passed := true
	for _, r := range results {
		if r.Status == checks.StatusFail {
			passed = false
		}
	}
	if results == nil {
		results = []checks.Result{}
	}
	return Summary{
		Timestamp: ts.UTC(),
		Passed:    passed,
		Results:   results,
	}
}

// WriteJSON writes the machine-readable summary
func (s Summary) WriteJSON(path string) error {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}

// WriteLog writes the human-readable log, one line per check prefixed
// with its outcome
func (s Summary) WriteLog(path string) error {
	return os.WriteFile(path, []byte(s.logText()), 0o644)
}

func (s Summary) logText() string {
	overall := "PASS"
	if !s.Passed {
		overall = "FAIL"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] dataset checks:\n", s.Timestamp.Format(time.RFC3339))
	for _, r := range s.Results {
		fmt.Fprintf(&b, "%-4s %s: %s\n", r.Status, r.Name, r.Details)
	}
	fmt.Fprintf(&b, "overall: %s\n", overall)
	return b.String()
}
