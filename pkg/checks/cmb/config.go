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
	"github.com/cru-project/skylark/pkg/checks"
)

const (
	defaultFile       = "cmb_cl_TT.csv"
	defaultWindowLo   = 450
	defaultWindowHi   = 550
	defaultMinSamples = 10
	defaultDepthMin   = 3e-4
	defaultDepthMax   = 5e-3
)

// Config defines the configuration parameters for the CMB modulation
// check. The window and both depth bounds are inclusive.
type Config struct {
	// File is the dataset file name inside the data directory
	File string `json:"file,omitempty" yaml:"file,omitempty"`
	// WindowLo and WindowHi select the multipole window (inclusive)
	WindowLo float64 `json:"windowLo,omitempty" yaml:"windowLo,omitempty"`
	WindowHi float64 `json:"windowHi,omitempty" yaml:"windowHi,omitempty"`
	// MinSamples is the smallest window population the depth is computed on
	MinSamples int `json:"minSamples,omitempty" yaml:"minSamples,omitempty"`
	// DepthMin and DepthMax bound the accepted relative modulation depth (inclusive)
	DepthMin float64 `json:"depthMin,omitempty" yaml:"depthMin,omitempty"`
	DepthMax float64 `json:"depthMax,omitempty" yaml:"depthMax,omitempty"`
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
	if out.WindowLo == 0 {
		out.WindowLo = defaultWindowLo
	}
	if out.WindowHi == 0 {
		out.WindowHi = defaultWindowHi
	}
	if out.MinSamples == 0 {
		out.MinSamples = defaultMinSamples
	}
	if out.DepthMin == 0 {
		out.DepthMin = defaultDepthMin
	}
	if out.DepthMax == 0 {
		out.DepthMax = defaultDepthMax
	}
	return out
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	cfg := c.withDefaults()

	if cfg.WindowHi < cfg.WindowLo {
		return checks.ErrInvalidConfig{CheckName: CheckName, Field: "windowHi", Reason: "window upper bound must not be below the lower bound"}
	}
	if cfg.MinSamples < 1 {
		return checks.ErrInvalidConfig{CheckName: CheckName, Field: "minSamples", Reason: "minimum sample count must be at least 1"}
	}
	if cfg.DepthMin <= 0 {
		return checks.ErrInvalidConfig{CheckName: CheckName, Field: "depthMin", Reason: "lower depth bound must be positive"}
	}
	if cfg.DepthMax < cfg.DepthMin {
		return checks.ErrInvalidConfig{CheckName: CheckName, Field: "depthMax", Reason: "upper depth bound must not be below the lower bound"}
	}
	return nil
}
