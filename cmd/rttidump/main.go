/*
   Copyright 2025 The mrpt-go Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// rttidump inspects the classes registered with the run-time class
// registry: names, base classes, aliases and instantiability.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jjxforever/mrpt"
	"github.com/jjxforever/mrpt/config"

	// Register the sample observation/pose hierarchy.
	_ "github.com/jjxforever/mrpt/objs"
)

var (
	version = "dev"
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "rttidump",
	Short: "Inspect the run-time class registry",
	Long: `rttidump lists the classes registered with the run-time class registry,
their base classes, backward-compatibility aliases and whether they can be
instantiated generically.

Output format is controlled by --format (or the RTTIDUMP_FORMAT
environment variable).`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger, err := initLogger(debug)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		mrpt.SetConfig(config.NewConfig(config.WithLogger(logger)))
		// Make the complete hierarchy visible before any query.
		mrpt.RegisterAllPendingClasses()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringP("format", "f", "yaml", "output format: yaml or json")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	viper.SetEnvPrefix("RTTIDUMP")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
}

// initLogger builds a production zap logger, at debug level when requested.
func initLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
