// Copyright (c) 2025 Knot HQ and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package language

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	testCases := []struct {
		name         string
		input        string
		expectedName string
		expectErr    bool
	}{
		{
			name:         "canonical name",
			input:        "Python",
			expectedName: "Python",
		},
		{
			name:         "alias",
			input:        "golang",
			expectedName: "Go",
		},
		{
			name:         "case insensitive",
			input:        "PYTHON",
			expectedName: "Python",
		},
		{
			name:         "surrounding whitespace",
			input:        " c++ ",
			expectedName: "C++",
		},
		{
			name:      "unknown name",
			input:     "klingon",
			expectErr: true,
		},
		{
			name:      "empty name",
			input:     "",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lang, err := Lookup(tc.input)
			if tc.expectErr {
				var uerr UnknownLanguageError
				require.ErrorAs(t, err, &uerr)
				require.Equal(t, tc.input, uerr.Name)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectedName, lang.Name)
		})
	}
}

func TestRegister(t *testing.T) {
	Register(Language{
		Name:       "Brainfry",
		Aliases:    []string{"bfry"},
		Extensions: []string{".bfry"},
	})

	lang, err := Lookup("BFRY")
	require.NoError(t, err)
	require.Equal(t, "Brainfry", lang.Name)
	require.Equal(t, []string{".bfry"}, lang.Extensions)
}
