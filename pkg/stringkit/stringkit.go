// Package stringkit holds rune aware helpers for text values.
package stringkit

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LastRune returns the final code point of s.
// It reports false when s is empty.
// An invalid trailing byte sequence is reported as utf8.RuneError.
func LastRune(s string) (rune, bool) {
	if len(s) == 0 {
		return 0, false
	}
	r, _ := utf8.DecodeLastRuneInString(s)
	return r, true
}

// FirstHalf returns the leading half of s, counted in runes.
// For odd lengths the middle rune belongs to the second half.
func FirstHalf(s string) string {
	half := utf8.RuneCountInString(s) / 2
	var i int
	for index := range s {
		if i == half {
			return s[:index]
		}
		i++
	}
	return s
}

// ToUpper maps s to upper case using the language neutral Unicode case mapping.
func ToUpper(s string) string {
	return Upper(language.Und)(s)
}

// Upper returns an upper casing function for the given language,
// so the result can be passed around as a unary operator.
//
// A cases.Caser is stateful, thus every call gets its own.
func Upper(tag language.Tag) func(string) string {
	return func(s string) string {
		return cases.Upper(tag).String(s)
	}
}
