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
	"strings"

	"github.com/spf13/cobra"

	"github.com/jjxforever/mrpt"
	"github.com/jjxforever/mrpt/apis"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the registered class hierarchy",
	RunE: func(cmd *cobra.Command, args []string) error {
		all := mrpt.GetAllRegisteredClasses()

		// Immediate children per descriptor, registration order.
		children := make(map[*apis.Descriptor][]*apis.Descriptor)
		for _, d := range all {
			if d.Base == nil {
				continue
			}
			if b := d.Base(); b != nil {
				children[b] = append(children[b], d)
			}
		}

		var walk func(d *apis.Descriptor, depth int)
		walk = func(d *apis.Descriptor, depth int) {
			line := strings.Repeat("  ", depth) + d.Name
			if d.IsAbstract() {
				line += " (abstract)"
			}
			cmd.Println(line)
			for _, c := range children[d] {
				walk(c, depth+1)
			}
		}
		walk(apis.ObjectClassID, 0)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
