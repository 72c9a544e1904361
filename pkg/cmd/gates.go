// Copyright Qirlab Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	"github.com/qirlab/go-qir/pkg/ir"
	"github.com/qirlab/go-qir/pkg/jsonfile"
	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"
)

// gatesCmd lists the operation variants known to this core.
var gatesCmd = &cobra.Command{
	Use:   "gates [flags] [name]",
	Short: "List known operations, or print the schema of one.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 1 {
			schema, ok := jsonfile.SchemaFor(args[0])
			//
			if !ok {
				fmt.Printf("unknown operation %q\n", args[0])
				os.Exit(1)
			}
			//
			data, err := json.MarshalIndent(schema, "", "  ")
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			//
			fmt.Println(string(data))
			//
			return
		}
		//
		names := ir.AvailableOperations()
		//
		if getFlag(cmd, "gates-only") {
			names = ir.AvailableGates()
		}
		//
		for _, name := range names {
			d, _ := ir.Describe(name)
			fmt.Printf("%-40s %-28s v%s\n", d.Name, d.Category, d.Introduced)
		}
	},
}

func init() {
	rootCmd.AddCommand(gatesCmd)
	gatesCmd.Flags().Bool("gates-only", false, "list only unitary gates")
}
