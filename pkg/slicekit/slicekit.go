// Package slicekit holds slice operations that take their behaviour as a function value.
package slicekit

import (
	"fmt"
	"slices"
)

func Must[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Errorf("slicekit.Must: %w", err))
	}
	return v
}

// Filter returns a new slice with the values that the keep predicate accepted.
// The input slice is not modified.
func Filter[T any](s []T, keep func(v T) bool) []T {
	if s == nil {
		return nil
	}
	out := make([]T, 0, len(s))
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// RemoveIf removes in place every element for which the predicate returns true,
// and returns how many elements were removed.
// The order of the remaining elements is kept.
func RemoveIf[T any](ptr *[]T, pred func(v T) bool) int {
	if ptr == nil {
		panic("slicekit.RemoveIf: nil slice pointer")
	}
	var (
		s      = *ptr
		length = len(s)
	)
	*ptr = slices.DeleteFunc(s, pred)
	return length - len(*ptr)
}

// ReplaceAll replaces in place each element with the result of the unary operator.
func ReplaceAll[T any](s []T, op func(v T) T) {
	for i, v := range s {
		s[i] = op(v)
	}
}

// ForEach hands every element to the consumer function in order.
func ForEach[T any](s []T, fn func(v T)) {
	for _, v := range s {
		fn(v)
	}
}

// SortBy sorts the slice in place with the ordering function.
// The sort is not guaranteed to be stable,
// elements that compare as equal may change their relative order.
func SortBy[T any](s []T, cmp func(a, b T) int) {
	slices.SortFunc(s, cmp)
}

// StableSortBy sorts the slice in place with the ordering function,
// while keeping the original order of equal elements.
func StableSortBy[T any](s []T, cmp func(a, b T) int) {
	slices.SortStableFunc(s, cmp)
}

// Map will do a mapping from an input type into an output type.
func Map[O, I any, FN mapFunc[O, I]](s []I, fn FN) ([]O, error) {
	if s == nil {
		return nil, nil
	}
	var (
		out    = make([]O, len(s))
		mapper = toMapFunc[O, I](fn)
	)
	for index, v := range s {
		o, err := mapper(v)
		if err != nil {
			return out, err
		}
		out[index] = o
	}
	return out, nil
}

// Reduce iterates over a slice, combining elements using the reducer function.
func Reduce[O, I any, FN reduceFunc[O, I]](s []I, initial O, fn FN) (O, error) {
	var (
		result  = initial
		reducer = toReduceFunc[O, I](fn)
	)
	for _, i := range s {
		o, err := reducer(result, i)
		if err != nil {
			return result, err
		}
		result = o
	}
	return result, nil
}

// --------------------------------------------------------------------------------- //

type reduceFunc[O, I any] interface {
	func(O, I) O | func(O, I) (O, error)
}

func toReduceFunc[O, I any, FN reduceFunc[O, I]](m FN) func(O, I) (O, error) {
	switch fn := any(m).(type) {
	case func(O, I) O:
		return func(o O, i I) (O, error) {
			return fn(o, i), nil
		}
	case func(O, I) (O, error):
		return fn
	default:
		panic("unexpected")
	}
}

type mapFunc[O, I any] interface {
	func(I) O | func(I) (O, error)
}

func toMapFunc[O, I any, MF mapFunc[O, I]](m MF) func(I) (O, error) {
	switch fn := any(m).(type) {
	case func(I) O:
		return func(i I) (O, error) {
			return fn(i), nil
		}
	case func(I) (O, error):
		return fn
	default:
		panic("unexpected")
	}
}
