// Copyright (c) 2025 Knot HQ and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package glob provides escaping for the path/filepath.Match pattern dialect.
package glob

import (
	"runtime"
	"strings"
)

// metaChars are the characters path/filepath.Match assigns special meaning
// to. "]" only matters inside a character class but escaping it is harmless
// and keeps escaped directories readable as literal text.
const metaChars = `*?[]\`

// Escape neutralizes every pattern metacharacter in path so a matcher
// treats the whole string as literal text. On Windows the Match dialect
// disables escaping, so path is returned unchanged there.
func Escape(path string) string {
	if runtime.GOOS == "windows" {
		return path
	}
	if !strings.ContainsAny(path, metaChars) {
		return path
	}

	var b strings.Builder
	b.Grow(len(path) + 4)
	for i := 0; i < len(path); i++ {
		if strings.IndexByte(metaChars, path[i]) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(path[i])
	}
	return b.String()
}
