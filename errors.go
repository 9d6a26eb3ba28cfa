// Copyright (c) 2025 Knot HQ and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package setting

import "fmt"

// InvalidKeyError occurs if a Setting is constructed with, or assigned, an empty key.
type InvalidKeyError struct{}

// Error implements the error interface.
func (e InvalidKeyError) Error() string {
	return "an empty key is not allowed for a setting"
}

// IncompleteValueError occurs when the value of an append fragment is read
// before it has been merged with its default.
type IncompleteValueError struct {
	Key string
}

// Error implements the error interface.
func (e IncompleteValueError) Error() string {
	return fmt.Sprintf("value of setting %q is incomplete: it still has to be appended to its default", e.Key)
}

// MissingOriginError occurs when a relative path is resolved but neither
// the setting nor the caller supplies an origin to resolve against.
type MissingOriginError struct {
	// Key names the setting being resolved. It is empty when the
	// package level resolver functions were called directly.
	Key string
}

// Error implements the error interface.
func (e MissingOriginError) Error() string {
	if e.Key == "" {
		return "cannot determine path without an origin"
	}
	return fmt.Sprintf("cannot determine path of setting %q without an origin", e.Key)
}

// LineNumberUnavailableError occurs when line numbers are queried on a
// setting whose origin is not a SourcePosition.
type LineNumberUnavailableError struct {
	Key string
}

// Error implements the error interface.
func (e LineNumberUnavailableError) Error() string {
	return fmt.Sprintf("setting %q has a plain path origin which carries no line numbers", e.Key)
}
