package ustring

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Case conversion uses the root-locale mappings throughout: results never
// depend on the runtime environment. Casers are stateful, so each call
// builds its own.

// Downcase converts s to lowercase.
func Downcase(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Upcase converts s to uppercase.
func Upcase(s string) string {
	return cases.Upper(language.Und).String(s)
}

// Capitalize titlecases the first grapheme cluster of s and lowercases the
// rest.
func Capitalize(s string) string {
	first, rest, ok := NextGrapheme(s)
	if !ok {
		return s
	}
	return cases.Title(language.Und).String(first) + Downcase(rest)
}

// Normalize returns s converted to the given Unicode normalization form.
func Normalize(s string, form norm.Form) string {
	return form.String(s)
}

// Equivalent reports whether a and b are canonically equivalent: equal
// after NFC normalization.
func Equivalent(a, b string) bool {
	if a == b {
		return true
	}
	return norm.NFC.String(a) == norm.NFC.String(b)
}
