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

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cru-project/skylark/internal/logger"
	"github.com/cru-project/skylark/pkg/checks/runtime"
)

// FileLoader reads the check threshold configuration from a yaml file
type FileLoader struct {
	path string
}

// NewFileLoader creates a loader for the configured checks file
func NewFileLoader(cfg *Config) *FileLoader {
	return &FileLoader{
		path: cfg.ChecksFile,
	}
}

// Load reads and parses the check configuration. An unset path yields an
// empty configuration, which callers treat as "use the defaults".
func (f *FileLoader) Load(ctx context.Context) (runtime.Config, error) {
	log := logger.FromContext(ctx)

	var cfg runtime.Config
	if f.path == "" {
		log.Debug("No checks file configured, using built-in defaults")
		return cfg, nil
	}

	log.Info("Reading check configuration from file", "file", f.path)
	b, err := os.ReadFile(f.path)
	if err != nil {
		log.Error("Failed to read checks file", "path", f.path, "error", err)
		return cfg, fmt.Errorf("failed to read checks file: %w", err)
	}

	if err := yaml.Unmarshal(b, &cfg); err != nil {
		log.Error("Failed to parse checks file", "error", err)
		return cfg, fmt.Errorf("failed to parse checks file: %w", err)
	}

	return cfg, nil
}
