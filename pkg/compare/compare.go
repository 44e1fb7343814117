// Package compare holds ordering functions and the helpers to pass them around as values.
//
// An ordering function has the shape of func(a, b T) int,
// which is what slices.SortFunc and slicekit.SortBy expect.
package compare

import (
	"cmp"
	"strings"
)

// Comparator is the single-method contract of an ordering strategy.
//
// Types implementing this interface can be handed to any routine that needs to order values,
// the same way a named strategy object would be.
type Comparator[T any] interface {
	// Compare returns:
	//   -1 if a is less than b,
	//    0 if they're equal, and
	//   +1 if a is greater.
	//
	// Implementors must ensure consistent ordering semantics.
	Compare(a, b T) int
}

// Func is an adapter to allow the use of ordinary functions as Comparator.
// If fn is a function with the appropriate signature, Func(fn) is a Comparator that calls fn.
type Func[T any] func(a, b T) int

func (fn Func[T]) Compare(a, b T) int { return fn(a, b) }

// By derives an ordering from a key extractor, comparing values by their keys.
func By[T any, K cmp.Ordered](key func(T) K) Func[T] {
	return func(a, b T) int {
		return Numbers(key(a), key(b))
	}
}

// Reverse flips the direction of an ordering.
func Reverse[T any](fn Func[T]) Func[T] {
	return func(a, b T) int {
		return fn(b, a)
	}
}

// IsEqual reports whether two values are equal based on their comparison result.
func IsEqual(cmp int) bool {
	return cmp == 0
}

// IsLess reports whether the receiver is less than another value.
func IsLess(cmp int) bool {
	return cmp < 0
}

// IsLessOrEqual reports whether the receiver is less than or equal to another value.
func IsLessOrEqual(cmp int) bool {
	return cmp <= 0
}

// IsMore reports whether the receiver is greater than another value.
func IsMore(cmp int) bool {
	return 0 < cmp
}

// IsMoreOrEqual reports whether the receiver is more than or equal to another value.
func IsMoreOrEqual(cmp int) bool {
	return 0 <= cmp
}

func IsGreater(cmp int) bool {
	return IsMore(cmp)
}

func IsGreaterOrEqual(cmp int) bool {
	return IsMoreOrEqual(cmp)
}

func Numbers[T cmp.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func Strings[S ~string](a, b S) int {
	return strings.Compare(string(a), string(b))
}
