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

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/cru-project/skylark/internal/logger"
	"github.com/cru-project/skylark/pkg/checks"
	"github.com/cru-project/skylark/pkg/dataset"
)

var (
	_ checks.Check   = (*check)(nil)
	_ checks.Runtime = (*Config)(nil)
)

const CheckName = "cmb_feature"

// Dataset columns the check consumes
const (
	colEll = "ell"
	colCl  = "Cl"
)

// check is the implementation of the CMB feature check. It measures the
// relative modulation depth of the TT power spectrum inside a multipole
// window and verifies it stays at the predicted order of magnitude.
type check struct {
	config Config
}

// NewCheck creates a new instance of the CMB feature check
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

// Run measures the modulation depth inside the configured window
func (ch *check) Run(ctx context.Context, data dataset.Getter) checks.Result {
	log := logger.FromContext(ctx)
	cfg := ch.config

	ds, err := data.Load(cfg.File, []string{colEll, colCl})
	if err != nil {
		log.InfoContext(ctx, "Dataset not usable", "check", CheckName, "error", err)
		return checks.ResultFromLoadError(CheckName, cfg.File, err)
	}

	ell := ds.Column(colEll)
	cl := ds.Column(colCl)

	idx := dataset.Window(ell, cfg.WindowLo, cfg.WindowHi)
	if len(idx) < cfg.MinSamples {
		return checks.Fail(CheckName, "%v", dataset.ErrInsufficientData{
			What: detailWindow(cfg),
			Need: cfg.MinSamples,
			Got:  len(idx),
		})
	}

	vals := dataset.At(cl, idx)
	base := dataset.Median(vals)
	den, floored := dataset.FloorDenominator(base)
	if floored {
		return checks.Fail(CheckName, "non-positive baseline median Cl=%.3e %s", base, detailWindow(cfg))
	}

	depth := dataset.MaxAbsDeviation(vals, base) / den
	details := "median Cl=%.3e, relative modulation depth=%.3e; expected in [%.3e, %.3e]"
	if depth >= cfg.DepthMin && depth <= cfg.DepthMax {
		return checks.Pass(CheckName, details, base, depth, cfg.DepthMin, cfg.DepthMax)
	}
	return checks.Fail(CheckName, details, base, depth, cfg.DepthMin, cfg.DepthMax)
}

func detailWindow(cfg Config) string {
	return fmt.Sprintf("with ell in [%g, %g]", cfg.WindowLo, cfg.WindowHi)
}
