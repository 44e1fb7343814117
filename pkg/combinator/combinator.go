// Package combinator defines a single-method contract for merging two text values into one.
//
// Any function with the shape func(a, b string) string can be converted into a Combinator,
// which makes it usable wherever an Interface is expected.
package combinator

import (
	"go.llib.dev/funckit/pkg/slicekit"
	"go.llib.dev/funckit/pkg/stringkit"
)

type Interface interface {
	Combine(a, b string) string
}

// Combinator is an adapter to allow the use of ordinary functions as Interface.
type Combinator func(a, b string) string

func (fn Combinator) Combine(a, b string) string { return fn(a, b) }

// FirstHalves joins the first half of both values.
//
//	FirstHalves("Katze", "Hund") == "KaHu"
var FirstHalves Combinator = func(a, b string) string {
	return stringkit.FirstHalf(a) + stringkit.FirstHalf(b)
}

// Concat joins the two values as they are.
var Concat Combinator = func(a, b string) string { return a + b }

// Fold combines the values from left to right with the given combinator.
// An empty list yields an empty string.
func Fold(c Interface, vs ...string) string {
	if len(vs) == 0 {
		return ""
	}
	out, _ := slicekit.Reduce(vs[1:], vs[0], c.Combine)
	return out
}
