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

package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/cru-project/skylark/internal/logger"
	"github.com/cru-project/skylark/pkg/generate"
)

// NewCmdGenerate creates a new generate command
func NewCmdGenerate() *cobra.Command {
	var dataDir string
	var force bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the offline datasets",
		Long: `Writes the representative offline datasets (GW strain, UHECR flux, CMB TT spectrum, DM limits)
into the data directory. Existing files are kept unless --force is given. No network access is used.`,
		Run: runGenerate(&dataDir, &force),
	}

	cmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "d", "data", "directory the dataset csv files are written to")
	cmd.PersistentFlags().BoolVar(&force, "force", false, "overwrite datasets that already exist")

	return cmd
}

// runGenerate writes the synthetic datasets
func runGenerate(dataDir *string, force *bool) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		log := logger.NewLogger()
		ctx := logger.IntoContext(context.Background(), log)

		if err := generate.All(ctx, generate.Options{Dir: *dataDir, Force: *force}); err != nil {
			log.Error("Error while generating the datasets", "error", err)
			os.Exit(1)
		}
	}
}
