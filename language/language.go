// Copyright (c) 2025 Knot HQ and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package language maintains a registry of programming language names.
//
// Settings frequently refer to languages by loosely spelled names
// ("cpp", "C++", "Javascript"). The registry resolves such spellings to a
// canonical Language so downstream consumers can compare them reliably.
package language

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Language describes a single registered programming language.
type Language struct {
	// Name is the canonical display name, e.g. "C++".
	Name string

	// Aliases are alternative spellings accepted by Lookup,
	// compared case-insensitively.
	Aliases []string

	// Extensions are the file extensions commonly associated
	// with the language, including the leading dot.
	Extensions []string
}

// UnknownLanguageError occurs if a name matches no registered language.
type UnknownLanguageError struct {
	Name string
}

// Error implements the error interface.
func (e UnknownLanguageError) Error() string {
	return fmt.Sprintf("unknown language: %q", e.Name)
}

var (
	folder = cases.Fold()

	registry = make(map[string]Language)
)

// Register adds a language to the registry. Its canonical name and all of
// its aliases become valid Lookup inputs. Registering a name twice
// overwrites the earlier entry.
func Register(lang Language) {
	registry[folder.String(lang.Name)] = lang
	for _, alias := range lang.Aliases {
		registry[folder.String(alias)] = lang
	}
}

// Lookup resolves a language name or alias, ignoring case and surrounding
// whitespace. It fails with UnknownLanguageError if nothing matches.
func Lookup(name string) (Language, error) {
	lang, ok := registry[folder.String(strings.TrimSpace(name))]
	if !ok {
		return Language{}, UnknownLanguageError{Name: name}
	}
	return lang, nil
}

func init() {
	langs := []Language{
		{Name: "C", Extensions: []string{".c", ".h"}},
		{Name: "C++", Aliases: []string{"cpp", "cxx"}, Extensions: []string{".cpp", ".cc", ".cxx", ".hpp"}},
		{Name: "C#", Aliases: []string{"csharp"}, Extensions: []string{".cs"}},
		{Name: "CSS", Extensions: []string{".css"}},
		{Name: "Go", Aliases: []string{"golang"}, Extensions: []string{".go"}},
		{Name: "HTML", Extensions: []string{".html", ".htm"}},
		{Name: "Java", Extensions: []string{".java"}},
		{Name: "JavaScript", Aliases: []string{"js"}, Extensions: []string{".js", ".mjs"}},
		{Name: "JSON", Extensions: []string{".json"}},
		{Name: "Kotlin", Extensions: []string{".kt", ".kts"}},
		{Name: "Markdown", Aliases: []string{"md"}, Extensions: []string{".md", ".markdown"}},
		{Name: "Python", Aliases: []string{"py", "python3"}, Extensions: []string{".py"}},
		{Name: "Ruby", Aliases: []string{"rb"}, Extensions: []string{".rb"}},
		{Name: "Rust", Aliases: []string{"rs"}, Extensions: []string{".rs"}},
		{Name: "Shell", Aliases: []string{"sh", "bash"}, Extensions: []string{".sh", ".bash"}},
		{Name: "SQL", Extensions: []string{".sql"}},
		{Name: "TypeScript", Aliases: []string{"ts"}, Extensions: []string{".ts", ".tsx"}},
		{Name: "XML", Extensions: []string{".xml"}},
		{Name: "YAML", Aliases: []string{"yml"}, Extensions: []string{".yaml", ".yml"}},
	}
	for _, lang := range langs {
		Register(lang)
	}
}
