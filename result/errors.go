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

package result

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched (via errors.Is) by every error returned when a
// Result is built from inconsistent arguments, such as value and remainder
// slices of different lengths.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	// errLengthMismatch is returned when the initial values and remainders
	// cannot be paired positionally.
	errLengthMismatch = &kindError{message: "values and remainders differ in length"}
	// errIncompleteEntry is returned when a decoded entry lacks its value or
	// its remainder.
	errIncompleteEntry = &kindError{message: "entry is missing a field"}
)

// ConstructError is the error type returned when a Result cannot be built.
type ConstructError struct {
	Message string
	Err     error
}

// Error returns the string representation of the construction error.
func (e *ConstructError) Error() string {
	return fmt.Sprintf("parse result: %s", e.Message)
}

// Unwrap provides compatibility with Go's standard errors package.
func (e *ConstructError) Unwrap() error {
	return e.Err
}

// newConstructError wraps err into a ConstructError. It returns nil if err is nil.
func newConstructError(err error) *ConstructError {
	if err == nil {
		return nil
	}
	return &ConstructError{Message: err.Error(), Err: ErrInvalidArgument}
}

// kindError carries the details of a construction failure.
type kindError struct {
	message string
	details string
}

func (e *kindError) Error() string {
	if e.details != "" {
		return fmt.Sprintf("%s (%s)", e.message, e.details)
	}
	return e.message
}

// with returns a copy of e carrying the given details.
func (e *kindError) with(format string, args ...any) *kindError {
	return &kindError{message: e.message, details: fmt.Sprintf(format, args...)}
}
