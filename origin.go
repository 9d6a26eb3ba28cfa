// Copyright (c) 2025 Knot HQ and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package setting

// Origin identifies the configuration source a setting was declared in.
// The two implementations are FileOrigin for a plain path and
// SourcePosition for a path with a line number.
type Origin interface {
	// Filename returns the path of the originating file. A trailing
	// path separator marks the origin as a directory rather than a file.
	Filename() string
}

// FileOrigin is an origin known only by its path.
type FileOrigin string

// Filename implements the [Origin] interface.
func (o FileOrigin) Filename() string {
	return string(o)
}

// SourcePosition is an origin with an exact line within the file.
type SourcePosition struct {
	File string
	Line int
}

// Filename implements the [Origin] interface.
func (p SourcePosition) Filename() string {
	return p.File
}
