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
	"github.com/cru-project/skylark/pkg/checks"
)

const (
	defaultFile     = "uhecr_flux.csv"
	defaultBelowLo  = 19.0
	defaultCutoff   = 19.7
	defaultAboveHi  = 20.3
	defaultMinBelow = 3
	defaultMinAbove = 2
	defaultMaxRatio = 0.30
)

// Config defines the configuration parameters for the UHECR suppression
// check. The below region is [belowLo, cutoff), the above region is
// [cutoff, aboveHi]; the ratio bound is inclusive.
type Config struct {
	// File is the dataset file name inside the data directory
	File string `json:"file,omitempty" yaml:"file,omitempty"`
	// BelowLo is the lower edge of the reference region in log10(E/eV)
	BelowLo float64 `json:"belowLo,omitempty" yaml:"belowLo,omitempty"`
	// Cutoff splits the spectrum into the reference and suppressed regions
	Cutoff float64 `json:"cutoff,omitempty" yaml:"cutoff,omitempty"`
	// AboveHi is the upper edge of the suppressed region
	AboveHi float64 `json:"aboveHi,omitempty" yaml:"aboveHi,omitempty"`
	// MinBelow and MinAbove are the smallest accepted sample counts per region
	MinBelow int `json:"minBelow,omitempty" yaml:"minBelow,omitempty"`
	MinAbove int `json:"minAbove,omitempty" yaml:"minAbove,omitempty"`
	// MaxRatio is the inclusive upper bound on medianAbove / medianBelow
	MaxRatio float64 `json:"maxRatio,omitempty" yaml:"maxRatio,omitempty"`
}

// For returns the name of the check
func (c *Config) For() string {
	return CheckName
}

// withDefaults fills zero-valued fields with the built-in defaults
func (c *Config) withDefaults() Config {
	out := *c
	if out.File == "" {
		out.File = defaultFile
	}
	if out.BelowLo == 0 {
		out.BelowLo = defaultBelowLo
	}
	if out.Cutoff == 0 {
		out.Cutoff = defaultCutoff
	}
	if out.AboveHi == 0 {
		out.AboveHi = defaultAboveHi
	}
	if out.MinBelow == 0 {
		out.MinBelow = defaultMinBelow
	}
	if out.MinAbove == 0 {
		out.MinAbove = defaultMinAbove
	}
	if out.MaxRatio == 0 {
		out.MaxRatio = defaultMaxRatio
	}
	return out
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	cfg := c.withDefaults()

	if cfg.Cutoff <= cfg.BelowLo {
		return checks.ErrInvalidConfig{CheckName: CheckName, Field: "cutoff", Reason: "cutoff must be above the lower edge of the reference region"}
	}
	if cfg.AboveHi < cfg.Cutoff {
		return checks.ErrInvalidConfig{CheckName: CheckName, Field: "aboveHi", Reason: "upper edge must not be below the cutoff"}
	}
	if cfg.MinBelow < 1 || cfg.MinAbove < 1 {
		return checks.ErrInvalidConfig{CheckName: CheckName, Field: "minBelow", Reason: "minimum sample counts must be at least 1"}
	}
	if cfg.MaxRatio <= 0 {
		return checks.ErrInvalidConfig{CheckName: CheckName, Field: "maxRatio", Reason: "ratio bound must be positive"}
	}
	return nil
}
