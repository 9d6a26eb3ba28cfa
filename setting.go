// Copyright (c) 2025 Knot HQ and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package setting

import (
	"github.com/knothq/setting/text"
)

type options struct {
	origin   Origin
	fromCLI  bool
	toAppend bool
	textOpts []text.Option
}

// Option configures a Setting during construction.
type Option func(*options)

// WithOrigin records the file the setting was declared in. Relative path
// values resolve against this file's directory. End the path with a
// separator to mark the origin as a directory itself. An empty path is
// ignored.
func WithOrigin(path string) Option {
	return func(o *options) {
		if path == "" {
			return
		}
		o.origin = FileOrigin(path)
	}
}

// WithSourcePosition records the file and line the setting was declared at.
func WithSourcePosition(file string, line int) Option {
	return func(o *options) {
		o.origin = SourcePosition{File: file, Line: line}
	}
}

// FromCLI marks the setting as originating from a command line argument
// rather than a configuration file.
func FromCLI() Option {
	return func(o *options) {
		o.fromCLI = true
	}
}

// ToAppend marks the setting as a fragment that still has to be appended
// to a default declared elsewhere. Until Complete is called, reading the
// value or its elements fails with IncompleteValueError.
func ToAppend() Option {
	return func(o *options) {
		o.toAppend = true
	}
}

// WithDelimiters overrides the delimiters used for element splitting.
func WithDelimiters(delims ...string) Option {
	return func(o *options) {
		o.textOpts = append(o.textOpts, text.WithDelimiters(delims...))
	}
}

// KeepWhitespace disables whitespace stripping on the value and its elements.
func KeepWhitespace() Option {
	return func(o *options) {
		o.textOpts = append(o.textOpts, text.KeepWhitespace())
	}
}

// KeepEmptyElements keeps empty elements during element splitting.
func KeepEmptyElements() Option {
	return func(o *options) {
		o.textOpts = append(o.textOpts, text.KeepEmptyElements())
	}
}

// Setting is a single key/value pair read from a configuration source.
// All reads are pure derivations of the stored text; a Setting can safely
// be read from many goroutines once construction (and, for append
// fragments, Complete) has happened before the reads.
type Setting struct {
	key      string
	value    text.Value
	origin   Origin
	fromCLI  bool
	toAppend bool
	length   int
}

// New returns a Setting for the given key and raw text value. It fails
// with InvalidKeyError if the key is empty.
func New(key, value string, opts ...Option) (*Setting, error) {
	if key == "" {
		return nil, InvalidKeyError{}
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &Setting{
		key:      key,
		value:    text.New(value, o.textOpts...),
		origin:   o.origin,
		fromCLI:  o.fromCLI,
		toAppend: o.toAppend,
		length:   1,
	}, nil
}

// Key returns the setting's key.
func (s *Setting) Key() string {
	return s.key
}

// SetKey renames the setting. It fails with InvalidKeyError if the new key is empty.
func (s *Setting) SetKey(key string) error {
	if key == "" {
		return InvalidKeyError{}
	}
	s.key = key
	return nil
}

// Value returns the textual value, whitespace stripped per the configured
// policy. It fails with IncompleteValueError while the setting is an
// unmerged append fragment.
func (s *Setting) Value() (string, error) {
	if s.toAppend {
		return "", IncompleteValueError{Key: s.key}
	}
	return s.value.String(), nil
}

// Elements splits the value on the configured delimiters and returns the
// parts in declaration order. Each call returns a fresh slice. It fails
// with IncompleteValueError while the setting is an unmerged append
// fragment.
func (s *Setting) Elements() ([]string, error) {
	if s.toAppend {
		return nil, IncompleteValueError{Key: s.key}
	}
	return s.value.Elements(), nil
}

// Pairs parses the value as a mapping of key to value text, preserving
// declaration order. It fails with IncompleteValueError while the setting
// is an unmerged append fragment.
func (s *Setting) Pairs() ([]text.Pair, error) {
	if s.toAppend {
		return nil, IncompleteValueError{Key: s.key}
	}
	return s.value.Pairs(), nil
}

// Bool coerces the whole value into a bool.
func (s *Setting) Bool() (bool, error) {
	if s.toAppend {
		return false, IncompleteValueError{Key: s.key}
	}
	return s.value.Bool()
}

// Int64 coerces the whole value into an int64.
func (s *Setting) Int64() (int64, error) {
	if s.toAppend {
		return 0, IncompleteValueError{Key: s.key}
	}
	return s.value.Int64()
}

// Float64 coerces the whole value into a float64.
func (s *Setting) Float64() (float64, error) {
	if s.toAppend {
		return 0, IncompleteValueError{Key: s.key}
	}
	return s.value.Float64()
}

// FromCLI reports whether the setting originated from a command line argument.
func (s *Setting) FromCLI() bool {
	return s.fromCLI
}

// ToAppend reports whether the setting is a fragment awaiting its default.
func (s *Setting) ToAppend() bool {
	return s.toAppend
}

// Complete replaces the fragment's text with the value merged by the
// caller and clears the append flag. The merge itself (locating the
// default and concatenating) is the owning collaborator's job.
func (s *Setting) Complete(merged string) {
	s.value = s.value.Replace(merged)
	s.toAppend = false
}

// Origin returns the path of the originating file, or the empty string if
// the setting has no origin.
func (s *Setting) Origin() string {
	if s.origin == nil {
		return ""
	}
	return s.origin.Filename()
}

// Position returns the setting's origin as a SourcePosition, if it has one.
func (s *Setting) Position() (SourcePosition, bool) {
	pos, ok := s.origin.(SourcePosition)
	return pos, ok
}

// LineNumber returns the line the setting was declared at. It fails with
// LineNumberUnavailableError unless the origin is a SourcePosition.
func (s *Setting) LineNumber() (int, error) {
	pos, ok := s.origin.(SourcePosition)
	if !ok {
		return 0, LineNumberUnavailableError{Key: s.key}
	}
	return pos.Line, nil
}

// EndLineNumber returns the last line the setting spans. It fails with
// LineNumberUnavailableError unless the origin is a SourcePosition.
func (s *Setting) EndLineNumber() (int, error) {
	pos, ok := s.origin.(SourcePosition)
	if !ok {
		return 0, LineNumberUnavailableError{Key: s.key}
	}
	return s.length + pos.Line - 1, nil
}

// Length returns the number of source lines the setting spans.
func (s *Setting) Length() int {
	return s.length
}

// SetLength records the number of source lines the setting spans.
// It is used together with the origin line to compute EndLineNumber.
func (s *Setting) SetLength(n int) {
	s.length = n
}
