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
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jplu/parsec/result"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// readResult decodes a JSON-encoded result from path.
func readResult(path string) (*result.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var r result.Result
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	log.Debugf("read %d entries from %s", r.Len(), path)
	return &r, nil
}

// writeResult prints r to w in the given format.
func writeResult(w io.Writer, r *result.Result, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case formatText:
		fmt.Fprintf(w, "input: %q\n", r.Input())
		i := 0
		r.ForEach(func(value, remainder string) {
			fmt.Fprintf(w, "%d\t%q\t%q\n", i, value, remainder)
			i++
		})
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
