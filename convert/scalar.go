// Copyright (c) 2025 Knot HQ and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package convert

import (
	"net/url"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"github.com/knothq/setting/text"
)

// String is the identity conversion.
func String(s string) (string, error) {
	return s, nil
}

// Bool converts an element text into a bool using the same word set the
// setting's own boolean coercion accepts.
func Bool(s string) (bool, error) {
	return text.ParseBool(s)
}

// Int64 converts an element text into an int64.
func Int64(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

// Int converts an element text into an int, failing if the parsed value
// does not fit.
func Int(s string) (int, error) {
	n, err := Int64(s)
	if err != nil {
		return 0, err
	}
	return safecast.Conv[int](n)
}

// Float64 converts an element text into a float64.
func Float64(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// URL converts an element text into a parsed URL.
func URL(s string) (*url.URL, error) {
	return url.Parse(strings.TrimSpace(s))
}

// Prebuilt list converters over the scalar conversions.
var (
	StringList = TypedList(String)
	IntList    = TypedList(Int)
	FloatList  = TypedList(Float64)
	BoolList   = TypedList(Bool)
)
