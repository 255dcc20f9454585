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

package runtime

import (
	"errors"

	"github.com/cru-project/skylark/pkg/checks"
	"github.com/cru-project/skylark/pkg/checks/cmb"
	"github.com/cru-project/skylark/pkg/checks/dm"
	"github.com/cru-project/skylark/pkg/checks/gw"
	"github.com/cru-project/skylark/pkg/checks/uhecr"
)

// Config holds the runtime configuration for the various checks
// skylark supports. An absent entry leaves the check unregistered.
type Config struct {
	GW    *gw.Config    `yaml:"gw_strain" json:"gw_strain"`
	CMB   *cmb.Config   `yaml:"cmb_feature" json:"cmb_feature"`
	UHECR *uhecr.Config `yaml:"uhecr_cutoff" json:"uhecr_cutoff"`
	DM    *dm.Config    `yaml:"dm_limits" json:"dm_limits"`
}

// Empty returns true if no checks are configured
func (c Config) Empty() bool {
	return c.size() == 0
}

func (c Config) Validate() (err error) {
	for _, cfg := range c.Iter() {
		if vErr := cfg.Validate(); vErr != nil {
			err = errors.Join(err, vErr)
		}
	}

	return err
}

// Iter returns configured checks in report order
func (c Config) Iter() []checks.Runtime {
	var configs []checks.Runtime
	if c.GW != nil {
		configs = append(configs, c.GW)
	}
	if c.CMB != nil {
		configs = append(configs, c.CMB)
	}
	if c.UHECR != nil {
		configs = append(configs, c.UHECR)
	}
	if c.DM != nil {
		configs = append(configs, c.DM)
	}
	return configs
}

// size returns the number of checks configured
func (c Config) size() int {
	return len(c.Iter())
}

// HasCheck returns true if a check with the given name is configured
func (c Config) HasCheck(name string) bool {
	return c.For(name) != nil
}

// For returns the runtime configuration for the check with the given name
func (c Config) For(name string) checks.Runtime {
	switch name {
	case gw.CheckName:
		if c.GW != nil {
			return c.GW
		}
	case cmb.CheckName:
		if c.CMB != nil {
			return c.CMB
		}
	case uhecr.CheckName:
		if c.UHECR != nil {
			return c.UHECR
		}
	case dm.CheckName:
		if c.DM != nil {
			return c.DM
		}
	}
	return nil
}
