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
	"fmt"

	"github.com/jplu/parsec/result"
	"github.com/spf13/cobra"
)

func newConsumedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "consumed <result.json>",
		Short:        "Print the part of the input each entry consumed",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := readResult(args[0])
			if err != nil {
				return err
			}

			lines := result.Map(r, func(value, remainder string) string {
				consumed, ok := result.Entry{Value: value, Remainder: remainder}.Consumed(r.Input())
				if !ok {
					log.Warningf("remainder %q is not a suffix of the input", remainder)
					return fmt.Sprintf("?\t%q", value)
				}
				return fmt.Sprintf("%q\t%q", consumed, value)
			})

			out := cmd.OutOrStdout()
			for _, line := range lines {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	return cmd
}
