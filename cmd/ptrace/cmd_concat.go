/*
Copyright 2025 Trident Authors

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
	"github.com/spf13/cobra"
)

func newConcatCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:          "concat <first.json> <second.json>",
		Short:        "Append the entries of the second result to those of the first",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			first, err := readResult(args[0])
			if err != nil {
				return err
			}
			second, err := readResult(args[1])
			if err != nil {
				return err
			}
			if first.Input() != second.Input() {
				log.Warningf("combining results over different inputs: %q and %q", first.Input(), second.Input())
			}

			return writeResult(cmd.OutOrStdout(), first.ConcatResult(second), outputFormat)
		},
	}

	cmd.Flags().StringVar(&outputFormat, "format", formatText, "output format (text, json)")

	return cmd
}
