// Copyright (c) 2025 Knot HQ and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package setting

import (
	"path/filepath"
	"strings"

	"github.com/knothq/setting/glob"
)

// ResolvePath turns a text value into an absolute path. Absolute text is
// returned unchanged. Relative text resolves against the directory
// containing origin; it fails with MissingOriginError if origin is empty.
func ResolvePath(value, origin string) (string, error) {
	return resolvePath(value, origin, false)
}

// ResolveGlobPath is ResolvePath with every pattern metacharacter in the
// origin directory escaped. The value text itself is never escaped since
// it may legitimately be a glob pattern to be matched later.
func ResolveGlobPath(value, origin string) (string, error) {
	return resolvePath(value, origin, true)
}

func resolvePath(value, origin string, escapeOrigin bool) (string, error) {
	value = strings.TrimSpace(value)
	if filepath.IsAbs(value) {
		return value, nil
	}

	if origin == "" {
		return "", MissingOriginError{}
	}

	// The directory must be absolute before it is escaped. Escaping a
	// relative directory could escape characters that absolutization
	// and cleaning would have eliminated.
	dir, err := filepath.Abs(filepath.Dir(origin))
	if err != nil {
		return "", err
	}
	if escapeOrigin {
		dir = glob.Escape(dir)
	}

	return filepath.Join(dir, value), nil
}

// Path resolves the setting's value into an absolute path. The setting's
// own origin is preferred; fallbackOrigin is only consulted when the
// setting has none. To pass a directory as fallbackOrigin, end it with a
// path separator.
func (s *Setting) Path(fallbackOrigin string) (string, error) {
	return s.path(fallbackOrigin, false)
}

// GlobPath resolves the setting's value into an absolute path in which
// the origin directory's pattern metacharacters are escaped, leaving the
// value text usable as a glob pattern.
func (s *Setting) GlobPath(fallbackOrigin string) (string, error) {
	return s.path(fallbackOrigin, true)
}

func (s *Setting) path(fallbackOrigin string, escapeOrigin bool) (string, error) {
	v, err := s.Value()
	if err != nil {
		return "", err
	}

	origin := s.Origin()
	if origin == "" {
		origin = fallbackOrigin
	}

	p, err := resolvePath(v, origin, escapeOrigin)
	if err != nil {
		return "", s.annotate(err)
	}
	return p, nil
}

// PathList splits the value into elements and resolves each one against
// the setting's own origin, in declaration order.
func (s *Setting) PathList() ([]string, error) {
	return s.pathList(false)
}

// GlobPathList is PathList with origin directory escaping enabled.
func (s *Setting) GlobPathList() ([]string, error) {
	return s.pathList(true)
}

func (s *Setting) pathList(escapeOrigin bool) ([]string, error) {
	elems, err := s.Elements()
	if err != nil {
		return nil, err
	}

	origin := s.Origin()
	paths := make([]string, 0, len(elems))
	for _, elem := range elems {
		p, err := resolvePath(elem, origin, escapeOrigin)
		if err != nil {
			return nil, s.annotate(err)
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// annotate attaches the setting's key to errors raised by the path resolver.
func (s *Setting) annotate(err error) error {
	if _, ok := err.(MissingOriginError); ok {
		return MissingOriginError{Key: s.key}
	}
	return err
}
