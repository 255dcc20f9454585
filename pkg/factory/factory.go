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

package factory

import (
	"errors"

	"github.com/cru-project/skylark/pkg/checks"
	"github.com/cru-project/skylark/pkg/checks/cmb"
	"github.com/cru-project/skylark/pkg/checks/dm"
	"github.com/cru-project/skylark/pkg/checks/gw"
	"github.com/cru-project/skylark/pkg/checks/runtime"
	"github.com/cru-project/skylark/pkg/checks/uhecr"
)

// newCheck creates a new check instance from the given config
func newCheck(cfg checks.Runtime) (checks.Check, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	if f, ok := registry[cfg.For()]; ok {
		c := f()
		err := c.SetConfig(cfg)
		return c, err
	}
	return nil, errors.New("unknown check type")
}

// NewChecksFromConfig creates all checks defined in the provided config,
// in report order
func NewChecksFromConfig(cfg runtime.Config) ([]checks.Check, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var result []checks.Check
	for _, c := range cfg.Iter() {
		check, err := newCheck(c)
		if err != nil {
			return nil, err
		}
		result = append(result, check)
	}
	return result, nil
}

// Default creates every registered check with its built-in defaults,
// in report order
func Default() []checks.Check {
	result := make([]checks.Check, 0, len(order))
	for _, name := range order {
		result = append(result, registry[name]())
	}
	return result
}

// registry is a convenience map to create new checks
var registry = map[string]func() checks.Check{
	gw.CheckName:    gw.NewCheck,
	cmb.CheckName:   cmb.NewCheck,
	uhecr.CheckName: uhecr.NewCheck,
	dm.CheckName:    dm.NewCheck,
}

// order fixes the sequence checks appear in within the report
var order = []string{
	gw.CheckName,
	cmb.CheckName,
	uhecr.CheckName,
	dm.CheckName,
}
