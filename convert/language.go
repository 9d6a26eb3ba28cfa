// Copyright (c) 2025 Knot HQ and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package convert

import (
	"fmt"

	lang "github.com/knothq/setting/language"
)

// InvalidLanguageError occurs when a language name matches nothing in the registry.
type InvalidLanguageError struct {
	Name  string
	cause error
}

// Error implements the error interface.
func (e InvalidLanguageError) Error() string {
	return fmt.Sprintf("invalid language name %q", e.Name)
}

// Unwrap implements the implicit interface for usage with errors.Is and errors.As.
func (e InvalidLanguageError) Unwrap() error {
	return e.cause
}

// Language converts an element text into a registered Language. The
// registry's own lookup failure is re-wrapped as InvalidLanguageError so
// callers can surface it as a configuration error.
func Language(s string) (lang.Language, error) {
	l, err := lang.Lookup(s)
	if err != nil {
		return lang.Language{}, InvalidLanguageError{Name: s, cause: err}
	}
	return l, nil
}
