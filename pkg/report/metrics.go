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

package report

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/cru-project/skylark/pkg/checks"
)

// WriteMetrics exports the run outcome in the node-exporter textfile
// format, so the docs CI can scrape the badge pipeline like any other
// batch job.
func (s Summary) WriteMetrics(path string) error {
	reg := prometheus.NewRegistry()

	passed := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "skylark_run_passed",
		Help: "1 if the run passed overall, 0 otherwise.",
	})
	timestamp := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "skylark_run_timestamp_seconds",
		Help: "Unix timestamp of the run.",
	})
	byStatus := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "skylark_checks",
		Help: "Number of checks per outcome.",
	}, []string{"status"})

	reg.MustRegister(passed, timestamp, byStatus)

	if s.Passed {
		passed.Set(1)
	}
	timestamp.Set(float64(s.Timestamp.Unix()))

	counts := map[checks.Status]int{
		checks.StatusPass: 0,
		checks.StatusFail: 0,
		checks.StatusSkip: 0,
	}
	for _, r := range s.Results {
		counts[r.Status]++
	}
	for status, n := range counts {
		byStatus.WithLabelValues(string(status)).Set(float64(n))
	}

	mfs, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create metrics file: %w", err)
	}
	defer f.Close()

	enc := expfmt.NewEncoder(f, expfmt.FmtText)
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("failed to encode metrics: %w", err)
		}
	}
	return nil
}
