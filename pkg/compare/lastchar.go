package compare

import (
	"go.llib.dev/frameless/pkg/errorkit"

	"go.llib.dev/funckit/pkg/stringkit"
)

// ErrEmptyText is returned when a text value without any character is asked for its last character.
const ErrEmptyText errorkit.Error = "ErrEmptyText"

// LastChar orders two text values by their final character,
// using the natural code point order of that character.
// Values with the same final character are equal, ties are not broken any further,
// use a stable sort when the original order of equal values matters.
//
// A value that ends in an invalid UTF-8 sequence has utf8.RuneError as its final character,
// so two such values compare as equal.
//
// Both values must be non-empty.
// LastChar has the shape of an ordering function, so it can't return an error,
// instead it panics with an error that matches ErrEmptyText.
// Use LastCharE when the input is not validated upfront.
func LastChar(a, b string) int {
	cmp, err := LastCharE(a, b)
	if err != nil {
		panic(err)
	}
	return cmp
}

// LastCharE is the error returning form of LastChar.
func LastCharE(a, b string) (int, error) {
	ra, err := LastRune(a)
	if err != nil {
		return 0, ErrEmptyText.F("left hand side value has no last character")
	}
	rb, err := LastRune(b)
	if err != nil {
		return 0, ErrEmptyText.F("right hand side value has no last character")
	}
	return Numbers(ra, rb), nil
}

// LastRune extracts the ordering key used by LastChar.
func LastRune(s string) (rune, error) {
	r, ok := stringkit.LastRune(s)
	if !ok {
		return 0, ErrEmptyText
	}
	return r, nil
}

// LastCharComparator is LastChar as a named strategy value.
var LastCharComparator Comparator[string] = Func[string](LastChar)
