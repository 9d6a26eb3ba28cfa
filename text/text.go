// Copyright (c) 2025 Knot HQ and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package text implements the raw textual value underlying a setting.
//
// A Value stores text exactly as it was read from its source and exposes
// derived views of it: the whole string, a delimited element list and
// scalar coercions. None of the views mutate the stored text, so a single
// Value can be read any number of times.
package text

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultDelimiters are the list delimiters used when no others are configured.
var DefaultDelimiters = []string{",", ";"}

// Option configures a Value.
type Option func(*Value)

// WithDelimiters overrides the delimiter set used for element splitting.
func WithDelimiters(delims ...string) Option {
	return func(v *Value) {
		v.delimiters = delims
	}
}

// KeepWhitespace disables the whitespace stripping which is
// applied to the value and its elements by default.
func KeepWhitespace() Option {
	return func(v *Value) {
		v.stripWhitespace = false
	}
}

// KeepEmptyElements disables the removal of empty elements
// which is applied during element splitting by default.
func KeepEmptyElements() Option {
	return func(v *Value) {
		v.removeEmpty = false
	}
}

// Value is a raw text value together with its formatting options.
// The zero Value is not usable; construct one with New.
type Value struct {
	raw string

	stripWhitespace bool
	delimiters      []string
	removeEmpty     bool
}

// New returns a Value holding the given raw text. By default the
// surrounding whitespace is stripped, elements are split on "," and ";"
// and empty elements are removed.
func New(raw string, opts ...Option) Value {
	v := Value{
		raw:             raw,
		stripWhitespace: true,
		delimiters:      DefaultDelimiters,
		removeEmpty:     true,
	}
	for _, opt := range opts {
		opt(&v)
	}
	return v
}

// Replace returns a copy of v holding different raw text but
// the same formatting options.
func (v Value) Replace(raw string) Value {
	v.raw = raw
	return v
}

// Raw returns the stored text without any processing applied.
func (v Value) Raw() string {
	return v.raw
}

// String implements the fmt.Stringer interface. It returns the stored
// text, whitespace stripped per the configured policy.
func (v Value) String() string {
	if v.stripWhitespace {
		return strings.TrimSpace(v.raw)
	}
	return v.raw
}

// Elements splits the text on any unescaped delimiter and returns the
// parts in declaration order. A backslash escapes the character after it;
// escaping backslashes are removed from the returned parts. Each call
// returns a fresh slice, so the result can be consumed any number of times.
func (v Value) Elements() []string {
	return v.elements(true)
}

func (v Value) elements(removeBackslashes bool) []string {
	parts := splitUnescaped(v.raw, v.delimiters, removeBackslashes)

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v.stripWhitespace {
			p = strings.TrimSpace(p)
		}
		if v.removeEmpty && p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Pair is a single key to value-text association within a mapping-shaped value.
type Pair struct {
	Key   string
	Value string
}

// Pairs parses the text as a mapping: elements are split as by Elements
// and each element is split once more on its first unescaped ":". An
// element without a ":" becomes a Pair with empty value text. Declaration
// order is preserved.
func (v Value) Pairs() []Pair {
	// Backslashes must survive element splitting so that an escaped
	// ":" is still recognizable here. They are removed after the cut.
	elems := v.elements(false)

	pairs := make([]Pair, 0, len(elems))
	for _, elem := range elems {
		key, val := cutUnescaped(elem, ":")
		key = removeBackslashes(key)
		val = removeBackslashes(val)
		if v.stripWhitespace {
			key = strings.TrimSpace(key)
			val = strings.TrimSpace(val)
		}
		pairs = append(pairs, Pair{Key: key, Value: val})
	}
	return pairs
}

func removeBackslashes(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); {
		if s[i] == '\\' && i+1 < len(s) {
			b.WriteByte(s[i+1])
			i += 2
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// ParseBoolError occurs if a text is neither a recognized truthy nor falsy word.
type ParseBoolError struct {
	Text string
}

// Error implements the error interface.
func (e ParseBoolError) Error() string {
	return fmt.Sprintf("%q is not a valid boolean value", e.Text)
}

var (
	trueWords  = []string{"true", "yes", "on", "1"}
	falseWords = []string{"false", "no", "off", "0"}
)

// ParseBool converts a text into a bool. It accepts "true", "yes", "on"
// and "1" as true and "false", "no", "off" and "0" as false, ignoring
// case and surrounding whitespace.
func ParseBool(s string) (bool, error) {
	w := strings.ToLower(strings.TrimSpace(s))
	for _, t := range trueWords {
		if w == t {
			return true, nil
		}
	}
	for _, f := range falseWords {
		if w == f {
			return false, nil
		}
	}
	return false, ParseBoolError{Text: s}
}

// Bool coerces the whole text into a bool using ParseBool.
func (v Value) Bool() (bool, error) {
	return ParseBool(v.String())
}

// Int64 coerces the whole text into an int64.
func (v Value) Int64() (int64, error) {
	return strconv.ParseInt(v.String(), 10, 64)
}

// Float64 coerces the whole text into a float64.
func (v Value) Float64() (float64, error) {
	return strconv.ParseFloat(v.String(), 64)
}

// splitUnescaped splits s on any of the given delimiters, treating a
// backslash as escaping the character after it. When removeBackslashes
// is true the escaping backslashes are dropped from the returned parts.
func splitUnescaped(s string, delimiters []string, removeBackslashes bool) []string {
	var parts []string
	var cur strings.Builder

	for i := 0; i < len(s); {
		if s[i] == '\\' && i+1 < len(s) {
			if !removeBackslashes {
				cur.WriteByte('\\')
			}
			cur.WriteByte(s[i+1])
			i += 2
			continue
		}

		if d := matchDelimiter(s[i:], delimiters); d != "" {
			parts = append(parts, cur.String())
			cur.Reset()
			i += len(d)
			continue
		}

		cur.WriteByte(s[i])
		i++
	}
	return append(parts, cur.String())
}

// cutUnescaped splits s around its first unescaped occurrence of sep.
func cutUnescaped(s, sep string) (before, after string) {
	for i := 0; i < len(s); {
		if s[i] == '\\' && i+1 < len(s) {
			i += 2
			continue
		}
		if strings.HasPrefix(s[i:], sep) {
			return s[:i], s[i+len(sep):]
		}
		i++
	}
	return s, ""
}

// matchDelimiter returns the longest delimiter s starts with, if any.
func matchDelimiter(s string, delimiters []string) string {
	var match string
	for _, d := range delimiters {
		if d != "" && strings.HasPrefix(s, d) && len(d) > len(match) {
			match = d
		}
	}
	return match
}
