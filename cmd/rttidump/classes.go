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

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jjxforever/mrpt"
	"github.com/jjxforever/mrpt/introspect"
)

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "List all registered classes in registration order",
	RunE: func(cmd *cobra.Command, args []string) error {
		report := introspect.Build(mrpt.Registry())
		out, err := render(report)
		if err != nil {
			return err
		}
		cmd.Print(string(out))
		return nil
	},
}

var childrenCmd = &cobra.Command{
	Use:   "children <class>",
	Short: "List the registered subclasses of a class",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		base, ok := mrpt.FindRegisteredClass(args[0])
		if !ok {
			return fmt.Errorf("%w: %q", mrpt.ErrClassNotFound, args[0])
		}
		for _, name := range introspect.ChildrenOf(mrpt.Registry(), base) {
			cmd.Println(name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classesCmd)
	rootCmd.AddCommand(childrenCmd)
}

// render serializes a report according to the configured output format.
func render(report *introspect.Report) ([]byte, error) {
	switch format := viper.GetString("format"); format {
	case "yaml":
		return report.YAML()
	case "json":
		return report.JSON()
	default:
		return nil, fmt.Errorf("unknown output format %q (want yaml or json)", format)
	}
}
