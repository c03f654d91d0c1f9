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
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jplu/parsec/result"
)

// runCmd executes ptrace with args and returns what it wrote to stdout.
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// writeResultFile stores r as JSON in a temporary file and returns its path.
func writeResultFile(t *testing.T, name string, r *result.Result) string {
	t.Helper()
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("json.Marshal() failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("os.WriteFile() failed: %v", err)
	}
	return path
}

func TestShow(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
		wantErr  bool
	}{
		{
			name:     "Empty",
			args:     []string{"show", "--input", "anything"},
			expected: "input: \"anything\"\n",
		},
		{
			name: "Pairs",
			args: []string{
				"show", "--input", "123 apples",
				"--value", "1", "--remainder", "23 apples",
				"--value", "12", "--remainder", "3 apples",
			},
			expected: "input: \"123 apples\"\n0\t\"1\"\t\"23 apples\"\n1\t\"12\"\t\"3 apples\"\n",
		},
		{
			name:     "NFC Input",
			args:     []string{"show", "--nfc", "--input", "cafe\u0301", "--value", "c", "--remainder", "af\u00e9"},
			expected: "input: \"caf\u00e9\"\n0\t\"c\"\t\"af\u00e9\"\n",
		},
		{
			name:     "JSON",
			args:     []string{"show", "--format", "json", "--input", "12", "--value", "1", "--remainder", "2"},
			expected: "{\n  \"input\": \"12\",\n  \"entries\": [\n    {\n      \"value\": \"1\",\n      \"remainder\": \"2\"\n    }\n  ]\n}\n",
		},
		{
			name:    "Unknown Format",
			args:    []string{"show", "--format", "yaml"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCmd(t, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("show error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && out != tt.expected {
				t.Errorf("show output = %q, want %q", out, tt.expected)
			}
		})
	}
}

func TestShow_MismatchedPairs(t *testing.T) {
	out, err := runCmd(t, "show", "--input", "123", "--value", "1", "--value", "12", "--remainder", "23")
	if !errors.Is(err, result.ErrInvalidArgument) {
		t.Fatalf("show error = %v, want ErrInvalidArgument", err)
	}
	if out != "" {
		t.Errorf("show printed output on error: %q", out)
	}
}

func TestConcat(t *testing.T) {
	first := writeResultFile(t, "a.json", result.New("123 apples").Push("1", "23 apples"))
	second := writeResultFile(t, "b.json", result.New("other").Push("12", "3 apples"))

	out, err := runCmd(t, "concat", first, second)
	if err != nil {
		t.Fatalf("concat failed: %v", err)
	}
	expected := "input: \"123 apples\"\n0\t\"1\"\t\"23 apples\"\n1\t\"12\"\t\"3 apples\"\n"
	if out != expected {
		t.Errorf("concat output = %q, want %q", out, expected)
	}

	for _, path := range []string{first, second} {
		r, err := readResult(path)
		if err != nil {
			t.Fatalf("readResult(%s) failed: %v", path, err)
		}
		if r.Len() != 1 {
			t.Errorf("concat modified %s: %d entries", path, r.Len())
		}
	}
}

func TestConcat_Errors(t *testing.T) {
	valid := writeResultFile(t, "a.json", result.New("x"))
	incomplete := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(incomplete, []byte(`{"input":"x","entries":[{"value":"1"}]}`), 0o600); err != nil {
		t.Fatalf("os.WriteFile() failed: %v", err)
	}

	tests := []struct {
		name string
		args []string
	}{
		{"Missing Argument", []string{"concat", valid}},
		{"Missing File", []string{"concat", valid, filepath.Join(t.TempDir(), "missing.json")}},
		{"Incomplete Entry", []string{"concat", valid, incomplete}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runCmd(t, tt.args...); err == nil {
				t.Errorf("concat %v succeeded, want error", tt.args[1:])
			}
		})
	}
}

func TestConsumed(t *testing.T) {
	path := writeResultFile(t, "r.json", result.New("123 apples").
		Push("1", "23 apples").
		Push("123", " apples").
		Push("x", "pears"))

	out, err := runCmd(t, "consumed", path)
	if err != nil {
		t.Fatalf("consumed failed: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	expected := []string{
		"\"1\"\t\"1\"",
		"\"123\"\t\"123\"",
		"?\t\"x\"",
	}
	if len(lines) != len(expected) {
		t.Fatalf("consumed printed %d lines, want %d: %q", len(lines), len(expected), out)
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], expected[i])
		}
	}
}
