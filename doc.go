// Copyright (c) 2025 Knot HQ and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package setting models a single typed configuration value.
//
// A Setting is one key/value pair read from a configuration source. The
// value is stored once as raw text and consumed on demand through derived
// views: the whole string, a delimited element list, a mapping, scalar
// coercions and filesystem paths. Every view is a pure, repeatable read;
// none of them mutate the stored text.
//
// # Provenance
//
// Each Setting carries an Origin describing where it was declared: either
// a plain file path or a SourcePosition with a line number. The origin
// anchors relative path resolution (a relative value resolves against the
// directory of the file that declared it) and lets callers report errors
// with file and line information.
//
// # Path resolution
//
//	s, _ := setting.New("files", "src/a.py", setting.WithOrigin("/etc/app/app.conf"))
//	p, _ := s.Path("")
//	// p == "/etc/app/src/a.py"
//
// GlobPath escapes pattern metacharacters in the origin directory while
// leaving the value text untouched, so a value that is itself a glob
// pattern keeps its meaning:
//
//	s, _ := setting.New("match", "*.py", setting.WithOrigin("/etc/[app]/app.conf"))
//	p, _ := s.GlobPath("")
//	// p == `/etc/\[app\]/*.py`
//
// # Append fragments
//
// A Setting constructed with ToAppend represents a fragment that still has
// to be concatenated onto a default declared elsewhere. Until Complete is
// called, reading its value or elements fails with IncompleteValueError.
//
// Typed conversions of settings live in the convert subpackage.
package setting
