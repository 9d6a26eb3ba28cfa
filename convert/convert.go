// Copyright (c) 2025 Knot HQ and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package convert turns settings into strongly typed values.
//
// The building block is Func[T], a conversion from one element text to a
// T. TypedList, TypedDict and TypedOrderedDict lift a Func over whole
// settings. All converters returned by this package are stateless; a
// single converter can be reused across any number of settings.
package convert

import (
	"fmt"

	"github.com/knothq/setting"
)

// Func converts a single element text into a T. Any function with this
// shape plugs into the list and dict converters, user supplied or not.
type Func[T any] func(string) (T, error)

// ConversionError occurs when an element of a setting cannot be converted
// to the requested type.
type ConversionError struct {
	Key   string
	Text  string
	Cause error
}

// Error implements the error interface.
func (e ConversionError) Error() string {
	return fmt.Sprintf("setting %q: cannot convert %q: %s", e.Key, e.Text, e.Cause)
}

// Unwrap implements the implicit interface for usage with errors.Is and errors.As.
func (e ConversionError) Unwrap() error {
	return e.Cause
}

// TypedList returns a converter that splits a setting into elements and
// converts each one with conv, preserving declaration order. It fails the
// same way element access fails while the setting is an unmerged append
// fragment.
func TypedList[T any](conv Func[T]) func(*setting.Setting) ([]T, error) {
	return func(s *setting.Setting) ([]T, error) {
		elems, err := s.Elements()
		if err != nil {
			return nil, err
		}

		out := make([]T, 0, len(elems))
		for _, elem := range elems {
			v, err := conv(elem)
			if err != nil {
				return nil, ConversionError{Key: s.Key(), Text: elem, Cause: err}
			}
			out = append(out, v)
		}
		return out, nil
	}
}

// TypedDict returns a converter that parses a mapping shaped setting,
// converting keys with keyConv and value texts with valConv. An empty
// value text yields def without conversion, so "key:" means "use the
// default" rather than "convert the empty string".
func TypedDict[K comparable, V any](keyConv Func[K], valConv Func[V], def V) func(*setting.Setting) (map[K]V, error) {
	entries := TypedOrderedDict(keyConv, valConv, def)

	return func(s *setting.Setting) (map[K]V, error) {
		es, err := entries(s)
		if err != nil {
			return nil, err
		}

		m := make(map[K]V, len(es))
		for _, e := range es {
			m[e.Key] = e.Value
		}
		return m, nil
	}
}

// Entry is one key/value association produced by TypedOrderedDict.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// TypedOrderedDict is TypedDict preserving the declaration order of the
// keys, for consumers where that order carries meaning, such as ranked
// option lists.
func TypedOrderedDict[K comparable, V any](keyConv Func[K], valConv Func[V], def V) func(*setting.Setting) ([]Entry[K, V], error) {
	return func(s *setting.Setting) ([]Entry[K, V], error) {
		pairs, err := s.Pairs()
		if err != nil {
			return nil, err
		}

		entries := make([]Entry[K, V], 0, len(pairs))
		for _, p := range pairs {
			k, err := keyConv(p.Key)
			if err != nil {
				return nil, ConversionError{Key: s.Key(), Text: p.Key, Cause: err}
			}

			v := def
			if p.Value != "" {
				v, err = valConv(p.Value)
				if err != nil {
					return nil, ConversionError{Key: s.Key(), Text: p.Value, Cause: err}
				}
			}
			entries = append(entries, Entry[K, V]{Key: k, Value: v})
		}
		return entries, nil
	}
}
