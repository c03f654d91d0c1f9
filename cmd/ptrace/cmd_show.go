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
	"github.com/jplu/parsec/result"
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	var (
		input        string
		values       []string
		remainders   []string
		outputFormat string
		normalize    bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Build a result from value/remainder pairs and print it",
		Long: `Build a result over --input. Each --value is paired with the
--remainder in the same position, so both flags must be given the same
number of times.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := result.NewWithEntries(input, values, remainders)
			if err != nil {
				return err
			}
			if normalize {
				r = result.NewNormalized(input).ConcatResult(r)
			}
			log.Debugf("built result with %d entries", r.Len())

			return writeResult(cmd.OutOrStdout(), r, outputFormat)
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "original input the entries were derived from")
	cmd.Flags().StringArrayVar(&values, "value", nil, "value produced by a parsing step (repeatable)")
	cmd.Flags().StringArrayVar(&remainders, "remainder", nil, "input left unconsumed by that step (repeatable)")
	cmd.Flags().StringVar(&outputFormat, "format", formatText, "output format (text, json)")
	cmd.Flags().BoolVar(&normalize, "nfc", false, "normalize the input to Unicode NFC")

	return cmd
}
