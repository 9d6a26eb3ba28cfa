// Copyright (c) 2025 Knot HQ and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package convert

import (
	"testing"

	"github.com/knothq/setting"

	"github.com/stretchr/testify/require"
)

func mustSetting(t *testing.T, key, value string, opts ...setting.Option) *setting.Setting {
	t.Helper()
	s, err := setting.New(key, value, opts...)
	require.NoError(t, err)
	return s
}

func TestTypedList(t *testing.T) {
	t.Run("converts each element in order", func(t *testing.T) {
		s := mustSetting(t, "limits", "1, 2,3")

		ints, err := TypedList(Int)(s)
		require.NoError(t, err)
		require.Equal(t, []int{1, 2, 3}, ints)
	})

	t.Run("wraps element conversion failures", func(t *testing.T) {
		s := mustSetting(t, "limits", "1, x, 3")

		_, err := TypedList(Int)(s)
		var cerr ConversionError
		require.ErrorAs(t, err, &cerr)
		require.Equal(t, "limits", cerr.Key)
		require.Equal(t, "x", cerr.Text)
	})

	t.Run("fails on an append fragment", func(t *testing.T) {
		s := mustSetting(t, "limits", "1, 2", setting.ToAppend())

		_, err := TypedList(Int)(s)
		var ierr setting.IncompleteValueError
		require.ErrorAs(t, err, &ierr)
	})

	t.Run("a converter is reusable across settings", func(t *testing.T) {
		conv := TypedList(Int)

		a, err := conv(mustSetting(t, "a", "1"))
		require.NoError(t, err)
		b, err := conv(mustSetting(t, "b", "2"))
		require.NoError(t, err)

		require.Equal(t, []int{1}, a)
		require.Equal(t, []int{2}, b)
	})

	t.Run("user supplied conversion", func(t *testing.T) {
		upper := func(s string) (string, error) {
			return s + "!", nil
		}

		out, err := TypedList(upper)(mustSetting(t, "k", "a, b"))
		require.NoError(t, err)
		require.Equal(t, []string{"a!", "b!"}, out)
	})
}

func TestPrebuiltLists(t *testing.T) {
	t.Run("StringList", func(t *testing.T) {
		out, err := StringList(mustSetting(t, "k", "a, b ; c"))
		require.NoError(t, err)
		require.Equal(t, []string{"a", "b", "c"}, out)
	})

	t.Run("IntList", func(t *testing.T) {
		out, err := IntList(mustSetting(t, "k", "1; 2; 3"))
		require.NoError(t, err)
		require.Equal(t, []int{1, 2, 3}, out)
	})

	t.Run("FloatList", func(t *testing.T) {
		out, err := FloatList(mustSetting(t, "k", "0.5, 1.5"))
		require.NoError(t, err)
		require.Equal(t, []float64{0.5, 1.5}, out)
	})

	t.Run("BoolList", func(t *testing.T) {
		out, err := BoolList(mustSetting(t, "k", "yes, no, on, off"))
		require.NoError(t, err)
		require.Equal(t, []bool{true, false, true, false}, out)
	})
}

func TestTypedDict(t *testing.T) {
	t.Run("converts keys and values", func(t *testing.T) {
		s := mustSetting(t, "weights", "a: 1, b: 2")

		m, err := TypedDict(String, Int, 0)(s)
		require.NoError(t, err)
		require.Equal(t, map[string]int{"a": 1, "b": 2}, m)
	})

	t.Run("empty value text yields the default unconverted", func(t *testing.T) {
		s := mustSetting(t, "weights", "a: 1, b:")

		m, err := TypedDict(String, Int, 42)(s)
		require.NoError(t, err)
		require.Equal(t, map[string]int{"a": 1, "b": 42}, m)
	})

	t.Run("wraps key conversion failures", func(t *testing.T) {
		s := mustSetting(t, "weights", "x: 1")

		_, err := TypedDict(Int, Int, 0)(s)
		var cerr ConversionError
		require.ErrorAs(t, err, &cerr)
		require.Equal(t, "x", cerr.Text)
	})

	t.Run("fails on an append fragment", func(t *testing.T) {
		s := mustSetting(t, "weights", "a: 1", setting.ToAppend())

		_, err := TypedDict(String, Int, 0)(s)
		var ierr setting.IncompleteValueError
		require.ErrorAs(t, err, &ierr)
	})
}

func TestTypedOrderedDict(t *testing.T) {
	t.Run("preserves declaration order", func(t *testing.T) {
		s := mustSetting(t, "ranking", "gamma: 3, alpha: 1, beta: 2")

		entries, err := TypedOrderedDict(String, Int, 0)(s)
		require.NoError(t, err)
		require.Equal(t, []Entry[string, int]{
			{Key: "gamma", Value: 3},
			{Key: "alpha", Value: 1},
			{Key: "beta", Value: 2},
		}, entries)
	})

	t.Run("empty value text yields the default", func(t *testing.T) {
		s := mustSetting(t, "ranking", "a:, b: 7")

		entries, err := TypedOrderedDict(String, Int, 9)(s)
		require.NoError(t, err)
		require.Equal(t, []Entry[string, int]{
			{Key: "a", Value: 9},
			{Key: "b", Value: 7},
		}, entries)
	})
}

func TestScalars(t *testing.T) {
	t.Run("Int parses via checked narrowing", func(t *testing.T) {
		n, err := Int("123")
		require.NoError(t, err)
		require.Equal(t, 123, n)

		_, err = Int("not a number")
		require.Error(t, err)
	})

	t.Run("Bool accepts the word table", func(t *testing.T) {
		b, err := Bool("on")
		require.NoError(t, err)
		require.True(t, b)

		_, err = Bool("sideways")
		require.Error(t, err)
	})

	t.Run("URL parses and trims", func(t *testing.T) {
		u, err := URL(" https://example.com/x ")
		require.NoError(t, err)
		require.Equal(t, "example.com", u.Host)

		_, err = URL("://nope")
		require.Error(t, err)
	})
}
