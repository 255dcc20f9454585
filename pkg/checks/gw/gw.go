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

package gw

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

const CheckName = "gw_strain"

// Dataset columns the check consumes
const (
	colFrequency = "f_Hz"
	colStrain    = "h_strain"
)

// check is the implementation of the gravitational-wave strain check.
// It picks the sample nearest to the target frequency and verifies the
// predicted strain sits inside the accepted envelope.
type check struct {
	config Config
}

// NewCheck creates a new instance of the gravitational-wave strain check
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

// Run evaluates the strain envelope at the target frequency
func (ch *check) Run(ctx context.Context, data dataset.Getter) checks.Result {
	log := logger.FromContext(ctx)
	cfg := ch.config

	ds, err := data.Load(cfg.File, []string{colFrequency, colStrain})
	if err != nil {
		log.InfoContext(ctx, "Dataset not usable", "check", CheckName, "error", err)
		return checks.ResultFromLoadError(CheckName, cfg.File, err)
	}
	if ds.Len() == 0 {
		return checks.Fail(CheckName, "%v", dataset.ErrInsufficientData{What: "in " + cfg.File, Need: 1, Got: 0})
	}

	f := ds.Column(colFrequency)
	h := ds.Column(colStrain)
	i := dataset.Nearest(f, cfg.TargetHz)

	// A non-positive strain is a broken measurement, not a candidate for
	// the envelope comparison.
	if h[i] <= 0 {
		return checks.Fail(CheckName, "non-positive strain h=%.3e at nearest f=%.3e Hz", h[i], f[i])
	}

	details := "nearest f=%.3e Hz, h=%.3e; expected in [%.3e, %.3e]"
	if h[i] >= cfg.StrainMin && h[i] <= cfg.StrainMax {
		return checks.Pass(CheckName, details, f[i], h[i], cfg.StrainMin, cfg.StrainMax)
	}
	return checks.Fail(CheckName, details, f[i], h[i], cfg.StrainMin, cfg.StrainMax)
}
