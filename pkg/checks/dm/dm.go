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

package dm

import (
	"context"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/cru-project/skylark/internal/logger"
	"github.com/cru-project/skylark/pkg/checks"
	"github.com/cru-project/skylark/pkg/dataset"
)

var (
	_ checks.Check   = (*check)(nil)
	_ checks.Runtime = (*Config)(nil)
)

const CheckName = "dm_limits"

// Dataset columns the check consumes
const (
	colMass  = "mass_GeV"
	colSigma = "sigma_SI_cm2"
	colLimit = "limit_SI_cm2"
)

// check is the implementation of the dark-matter limit check. It verifies
// that the predicted spin-independent cross-section stays at or below the
// experimental limit at every mass point.
type check struct {
	config Config
}

// NewCheck creates a new instance of the dark-matter limit check
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

// Run compares the prediction against the limits point by point
func (ch *check) Run(ctx context.Context, data dataset.Getter) checks.Result {
	log := logger.FromContext(ctx)
	cfg := ch.config

	ds, err := data.Load(cfg.File, []string{colMass, colSigma, colLimit})
	if err != nil {
		log.InfoContext(ctx, "Dataset not usable", "check", CheckName, "error", err)
		return checks.ResultFromLoadError(CheckName, cfg.File, err)
	}
	if ds.Len() == 0 {
		return checks.Fail(CheckName, "%v", dataset.ErrInsufficientData{What: "in " + cfg.File, Need: 1, Got: 0})
	}

	mass := ds.Column(colMass)
	sigma := ds.Column(colSigma)
	limit := ds.Column(colLimit)

	violations := 0
	firstMass := 0.0
	for i := range sigma {
		if sigma[i] > limit[i] {
			if violations == 0 {
				firstMass = mass[i]
			}
			violations++
		}
	}

	if violations > 0 {
		return checks.Fail(CheckName, "%d of %d mass points exceed the limits, first at m=%.3g GeV", violations, ds.Len(), firstMass)
	}
	return checks.Pass(CheckName, "all %d mass points at or under the limits", ds.Len())
}
