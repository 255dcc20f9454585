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
	"github.com/cru-project/skylark/pkg/checks"
)

const (
	defaultFile      = "gw_strain.csv"
	defaultTargetHz  = 1e-3
	defaultStrainMin = 3e-23
	defaultStrainMax = 3e-22
)

// Config defines the configuration parameters for the gravitational-wave
// strain check. Both envelope bounds are inclusive: a strain exactly on a
// bound passes.
type Config struct {
	// File is the dataset file name inside the data directory
	File string `json:"file,omitempty" yaml:"file,omitempty"`
	// TargetHz is the frequency the nearest sample is selected for
	TargetHz float64 `json:"targetHz,omitempty" yaml:"targetHz,omitempty"`
	// StrainMin is the inclusive lower bound of the accepted strain
	StrainMin float64 `json:"strainMin,omitempty" yaml:"strainMin,omitempty"`
	// StrainMax is the inclusive upper bound of the accepted strain
	StrainMax float64 `json:"strainMax,omitempty" yaml:"strainMax,omitempty"`
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
	if out.TargetHz == 0 {
		out.TargetHz = defaultTargetHz
	}
	if out.StrainMin == 0 {
		out.StrainMin = defaultStrainMin
	}
	if out.StrainMax == 0 {
		out.StrainMax = defaultStrainMax
	}
	return out
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	cfg := c.withDefaults()

	if cfg.TargetHz <= 0 {
		return checks.ErrInvalidConfig{CheckName: CheckName, Field: "targetHz", Reason: "target frequency must be positive"}
	}
	if cfg.StrainMin <= 0 {
		return checks.ErrInvalidConfig{CheckName: CheckName, Field: "strainMin", Reason: "lower strain bound must be positive"}
	}
	if cfg.StrainMax < cfg.StrainMin {
		return checks.ErrInvalidConfig{CheckName: CheckName, Field: "strainMax", Reason: "upper strain bound must not be below the lower bound"}
	}
	return nil
}
