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

package uhecr

import (
	"context"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/cru-project/skylark/internal/logger"
	"github.com/cru-project/skylark/pkg/checks"
	"github.com/cru-project/skylark/pkg/dataset"
)

var (
	_ checks.Check   = (*check)(nil)
	_ checks.Runtime = (*Config)(nil)
)

const CheckName = "uhecr_cutoff"

// Dataset columns the check consumes
const (
	colLogE = "log10E_eV"
	colFlux = "flux"
)

// check is the implementation of the UHECR cutoff check. It compares the
// median flux above the cutoff energy against the median below it and
// requires a clear suppression.
type check struct {
	config Config
}

// NewCheck creates a new instance of the UHECR cutoff check
func NewCheck() checks.Check {
	return &check{
		config: (&Config{}).withDefaults(),
	}
}

// SetConfig sets the configuration for the check
func (ch *check) SetConfig(cfg checks.Runtime) error {
	c, ok := cfg.(*Config)
	if !ok {
		return checks.ErrConfigMismatch{
			Expected: CheckName,
			Current:  cfg.For(),
		}
	}
	if err := c.Validate(); err != nil {
		return err
	}
	ch.config = c.withDefaults()
	return nil
}

// GetConfig returns the current configuration of the check
func (ch *check) GetConfig() checks.Runtime {
	cfg := ch.config
	return &cfg
}

// Name returns the name of the check
func (*check) Name() string {
	return CheckName
}

// Schema provides the schema of the result produced by the check
func (ch *check) Schema() (*openapi3.SchemaRef, error) {
	return checks.SchemaFor(&ch.config)
}

// Run compares the region medians around the cutoff
func (ch *check) Run(ctx context.Context, data dataset.Getter) checks.Result {
	log := logger.FromContext(ctx)
	cfg := ch.config

	ds, err := data.Load(cfg.File, []string{colLogE, colFlux})
	if err != nil {
		log.InfoContext(ctx, "Dataset not usable", "check", CheckName, "error", err)
		return checks.ResultFromLoadError(CheckName, cfg.File, err)
	}

	logE := ds.Column(colLogE)
	flux := ds.Column(colFlux)

	var below, above []float64
	for i, e := range logE {
		switch {
		case e >= cfg.BelowLo && e < cfg.Cutoff:
			below = append(below, flux[i])
		case e >= cfg.Cutoff && e <= cfg.AboveHi:
			above = append(above, flux[i])
		}
	}

	if len(below) < cfg.MinBelow {
		return checks.Fail(CheckName, "%v", dataset.ErrInsufficientData{
			What: fmt.Sprintf("with log10E in [%g, %g)", cfg.BelowLo, cfg.Cutoff),
			Need: cfg.MinBelow,
			Got:  len(below),
		})
	}
	if len(above) < cfg.MinAbove {
		return checks.Fail(CheckName, "%v", dataset.ErrInsufficientData{
			What: fmt.Sprintf("with log10E in [%g, %g]", cfg.Cutoff, cfg.AboveHi),
			Need: cfg.MinAbove,
			Got:  len(above),
		})
	}

	medBelow := dataset.Median(below)
	medAbove := dataset.Median(above)

	den, floored := dataset.FloorDenominator(medBelow)
	if floored {
		return checks.Fail(CheckName, "non-positive median flux %.3e below the cutoff", medBelow)
	}

	ratio := medAbove / den
	details := "median below=%.3e, above=%.3e, suppression ratio=%.3g; expected <= %.3g"
	if ratio <= cfg.MaxRatio {
		return checks.Pass(CheckName, details, medBelow, medAbove, ratio, cfg.MaxRatio)
	}
	return checks.Fail(CheckName, details, medBelow, medAbove, ratio, cfg.MaxRatio)
}
