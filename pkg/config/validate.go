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

	"github.com/cru-project/skylark/internal/logger"
)

// Validates the config
func (c *Config) Validate(ctx context.Context, fm *RunFlagsNameMapping) error {
	log := logger.FromContext(ctx)

	ok := true
	if c.DataDir == "" {
		ok = false
		log.ErrorContext(ctx, "The data directory must not be empty", fm.DataDir, c.DataDir)
	}
	if c.OutputDir == "" {
		ok = false
		log.ErrorContext(ctx, "The output directory must not be empty", fm.OutputDir, c.OutputDir)
	}
	if c.Badge.Label == "" {
		ok = false
		log.ErrorContext(ctx, "The badge label must not be empty", fm.BadgeLabel, c.Badge.Label)
	}
	if c.ChecksFile != "" {
		if _, err := os.Stat(c.ChecksFile); err != nil {
			ok = false
			log.ErrorContext(ctx, "The checks file is not readable", fm.ChecksFile, c.ChecksFile, "error", err)
		}
	}

	if !ok {
		return fmt.Errorf("validation of configuration failed")
	}
	return nil
}
