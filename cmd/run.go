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
	"github.com/spf13/viper"

	"github.com/cru-project/skylark/internal/logger"
	"github.com/cru-project/skylark/pkg/checks"
	"github.com/cru-project/skylark/pkg/config"
	"github.com/cru-project/skylark/pkg/factory"
	"github.com/cru-project/skylark/pkg/skylark"
)

// NewCmdRun creates a new run command
func NewCmdRun() *cobra.Command {
	fm := config.RunFlagsNameMapping{
		DataDir:    "dataDir",
		OutputDir:  "outputDir",
		ChecksFile: "checksFile",
		BadgeLabel: "badgeLabel",
	}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the dataset checks",
		Long:  `Runs every configured check against the local datasets and writes the summary, log and badge artifacts`,
		Run:   run(&fm),
	}

	NewFlag(fm.DataDir, fm.DataDir).StringP("d").
		Bind(cmd, "data", "directory the dataset csv files are read from")
	NewFlag(fm.OutputDir, fm.OutputDir).StringP("o").
		Bind(cmd, "badges", "directory the summary, log, badge and metrics artifacts are written to")
	NewFlag(fm.ChecksFile, fm.ChecksFile).StringP("c").
		Bind(cmd, "", "path to the yaml file with the check thresholds; built-in defaults apply if unset")
	NewFlag(fm.BadgeLabel, fm.BadgeLabel).String().
		Bind(cmd, "CRU", "label text on the left side of the badge")

	return cmd
}

// run is the entry point to start the skylark
func run(fm *config.RunFlagsNameMapping) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		log := logger.NewLogger()
		ctx := logger.IntoContext(context.Background(), log)

		cfg := config.NewConfig()

		cfg.SetDataDir(viper.GetString(fm.DataDir))
		cfg.SetOutputDir(viper.GetString(fm.OutputDir))
		cfg.SetChecksFile(viper.GetString(fm.ChecksFile))
		cfg.SetBadgeLabel(viper.GetString(fm.BadgeLabel))

		if err := cfg.Validate(ctx, fm); err != nil {
			log.Error("Error while validating the config", "error", err)
			os.Exit(skylark.ExitUnexpected)
		}

		rcfg, err := config.NewFileLoader(cfg).Load(ctx)
		if err != nil {
			log.Error("Error while loading the check configuration", "error", err)
			os.Exit(skylark.ExitUnexpected)
		}

		var cks []checks.Check
		if rcfg.Empty() {
			cks = factory.Default()
		} else {
			cks, err = factory.NewChecksFromConfig(rcfg)
			if err != nil {
				log.Error("Error while building the checks", "error", err)
				os.Exit(skylark.ExitUnexpected)
			}
		}

		s := skylark.New(cfg, cks)

		log.Info("Running skylark")
		os.Exit(s.Run(ctx))
	}
}
