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

// Package result provides the container parser combinators use to carry
// the outcome of a parse from one step to the next.
//
// A Result records the original input together with an ordered list of
// entries. Each entry pairs the value produced by one parsing step with the
// part of the input that step left unconsumed:
//
//	r := result.New("123 apples").
//		Push("1", "23 apples").
//		Push("12", "3 apples")
//
// The order of entries follows the order in which they were pushed and is
// preserved by every traversal and by concatenation.
//
// A Result is mutable: Push appends in place and returns the receiver so
// calls can be chained. Use Clone to take an independent snapshot. A Result
// is not safe for concurrent use; callers must serialize Push against reads.
package result

import (
	"encoding/json"
	"fmt"
	"iter"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Entry is the outcome of one parsing step.
type Entry struct {
	Value     string
	Remainder string
}

// Consumed returns the prefix of input that precedes the entry's remainder.
// It reports false if the remainder is not a suffix of input.
func (e Entry) Consumed(input string) (string, bool) {
	if !strings.HasSuffix(input, e.Remainder) {
		return "", false
	}
	return input[:len(input)-len(e.Remainder)], true
}

// Result is an ordered collection of entries derived from a single input.
// The zero value is an empty result over the empty input.
type Result struct {
	input   string
	entries []Entry
}

// New returns an empty Result over input.
func New(input string) *Result {
	return &Result{input: input}
}

// NewNormalized returns an empty Result over the Unicode Normalization
// Form C of input. Entries pushed later are stored as given.
func NewNormalized(input string) *Result {
	return New(norm.NFC.String(input))
}

// NewWithEntries returns a Result over input whose initial entries pair
// values[i] with remainders[i]. If the slices differ in length no Result is
// built and the returned error matches ErrInvalidArgument.
func NewWithEntries(input string, values, remainders []string) (*Result, error) {
	if len(values) != len(remainders) {
		return nil, newConstructError(
			errLengthMismatch.with("%d values, %d remainders", len(values), len(remainders)),
		)
	}

	r := &Result{input: input}
	if len(values) > 0 {
		r.entries = make([]Entry, len(values))
		for i := range values {
			r.entries[i] = Entry{Value: values[i], Remainder: remainders[i]}
		}
	}
	return r, nil
}

// Input returns the string the result was derived from.
func (r *Result) Input() string {
	return r.input
}

// Len returns the number of entries.
func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

// Push appends a new entry and returns r.
func (r *Result) Push(value, remainder string) *Result {
	r.entries = append(r.entries, Entry{Value: value, Remainder: remainder})
	return r
}

// Concat returns a new slice holding the entries of r followed by those of
// other. Neither r nor other is modified and other's input is not consulted.
// A nil other contributes no entries.
func (r *Result) Concat(other *Result) []Entry {
	combined := make([]Entry, 0, r.Len()+other.Len())
	combined = append(combined, r.entries...)
	if other != nil {
		combined = append(combined, other.entries...)
	}
	return combined
}

// ConcatResult is like Concat but wraps the combined entries in a new Result
// over r's input.
func (r *Result) ConcatResult(other *Result) *Result {
	return &Result{input: r.input, entries: r.Concat(other)}
}

// Entries returns a copy of the entries in insertion order.
func (r *Result) Entries() []Entry {
	entries := make([]Entry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Clone returns an independent copy of r.
func (r *Result) Clone() *Result {
	c := &Result{input: r.input}
	if len(r.entries) > 0 {
		c.entries = r.Entries()
	}
	return c
}

// All returns an iterator over the value and remainder of each entry.
// Every call starts again from the first entry.
func (r *Result) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, e := range r.entries {
			if !yield(e.Value, e.Remainder) {
				return
			}
		}
	}
}

// ForEach calls visit once for every entry, in order.
func (r *Result) ForEach(visit func(value, remainder string)) {
	for value, remainder := range r.All() {
		visit(value, remainder)
	}
}

// ForEachErr calls visit for every entry, in order, and stops at the first
// error, which is returned unchanged.
func (r *Result) ForEachErr(visit func(value, remainder string) error) error {
	for value, remainder := range r.All() {
		if err := visit(value, remainder); err != nil {
			return err
		}
	}
	return nil
}

// Map applies transform to every entry of r and returns the results in
// entry order. The returned slice always has r.Len() elements.
func Map[T any](r *Result, transform func(value, remainder string) T) []T {
	out := make([]T, 0, r.Len())
	for value, remainder := range r.All() {
		out = append(out, transform(value, remainder))
	}
	return out
}

// String renders the result for diagnostics, e.g.
// `"123 apples" [("1", "23 apples") ("12", "3 apples")]`.
func (r *Result) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%q [", r.input)
	for i, e := range r.entries {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "(%q, %q)", e.Value, e.Remainder)
	}
	b.WriteByte(']')
	return b.String()
}

type jsonEntry struct {
	Value     *string `json:"value"`
	Remainder *string `json:"remainder"`
}

type jsonResult struct {
	Input   string      `json:"input"`
	Entries []jsonEntry `json:"entries"`
}

// MarshalJSON implements the json.Marshaler interface.
func (r *Result) MarshalJSON() ([]byte, error) {
	doc := jsonResult{Input: r.input, Entries: make([]jsonEntry, len(r.entries))}
	for i := range r.entries {
		doc.Entries[i] = jsonEntry{Value: &r.entries[i].Value, Remainder: &r.entries[i].Remainder}
	}
	return json.Marshal(doc)
}

// UnmarshalJSON implements the json.Unmarshaler interface. Every entry must
// carry both a value and a remainder.
func (r *Result) UnmarshalJSON(data []byte) error {
	var doc jsonResult
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	decoded := &Result{input: doc.Input}
	for i, e := range doc.Entries {
		if e.Value == nil || e.Remainder == nil {
			return newConstructError(errIncompleteEntry.with("entry %d", i))
		}
		decoded.Push(*e.Value, *e.Remainder)
	}
	*r = *decoded
	return nil
}
