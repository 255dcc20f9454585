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

const defaultFile = "dm_limits.csv"

// Config defines the configuration parameters for the dark-matter limit
// check. A predicted cross-section exactly on the limit passes.
type Config struct {
	// File is the dataset file name inside the data directory
	File string `json:"file,omitempty" yaml:"file,omitempty"`
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
	return out
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	return nil
}
