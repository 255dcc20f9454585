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

package config

// Default artifact file names inside the output directory
const (
	DefaultSummaryFile = "checks.json"
	DefaultLogFile     = "checks.log"
	DefaultBadgeFile   = "cru_checks.svg"
	DefaultMetricsFile = "checks.prom"
)

// Config is the static configuration of one skylark invocation
type Config struct {
	// DataDir is the directory the dataset csv files are read from
	DataDir string
	// OutputDir is the directory the artifacts are written to
	OutputDir string
	// ChecksFile is the optional yaml file with the check thresholds
	ChecksFile string
	// Badge configures the rendered status badge
	Badge BadgeConfig
	// Artifacts holds the artifact file names inside OutputDir
	Artifacts ArtifactConfig
}

// BadgeConfig is the configuration for the status badge
type BadgeConfig struct {
	Label string
}

// ArtifactConfig holds the artifact file names inside the output directory
type ArtifactConfig struct {
	SummaryFile string
	LogFile     string
	BadgeFile   string
	MetricsFile string
}

// RunFlagsNameMapping maps the config fields to the CLI flag names
type RunFlagsNameMapping struct {
	DataDir    string
	OutputDir  string
	ChecksFile string
	BadgeLabel string
}

// NewConfig creates a new Config with the default artifact names
func NewConfig() *Config {
	return &Config{
		Artifacts: ArtifactConfig{
			SummaryFile: DefaultSummaryFile,
			LogFile:     DefaultLogFile,
			BadgeFile:   DefaultBadgeFile,
			MetricsFile: DefaultMetricsFile,
		},
	}
}

// SetDataDir sets the dataset directory
func (c *Config) SetDataDir(dir string) {
	c.DataDir = dir
}

// SetOutputDir sets the artifact directory
func (c *Config) SetOutputDir(dir string) {
	c.OutputDir = dir
}

// SetChecksFile sets the path of the check threshold file
func (c *Config) SetChecksFile(path string) {
	c.ChecksFile = path
}

// SetBadgeLabel sets the label text on the left side of the badge
func (c *Config) SetBadgeLabel(label string) {
	c.Badge.Label = label
}
