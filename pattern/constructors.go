package pattern

import (
	"cmp"
	"fmt"
	"reflect"

	"github.com/npillmayer/fpmatch"
	"github.com/npillmayer/fpmatch/result"
)

// Any returns a simple pattern which matches every input.
func Any[T any]() Pattern[T, T] {
	return simple[T]("any value")
}

// EqualTo returns a simple pattern matching inputs equal to value.
func EqualTo[T comparable](value T) Pattern[T, T] {
	return simple(fmt.Sprintf("x = %v", value), func(x T) bool {
		return x == value
	})
}

// EqualToFunc is like EqualTo, but the value to compare to is produced by
// provider on every match.
func EqualToFunc[T comparable](provider func() T) Pattern[T, T] {
	fpmatch.AssertArgument(provider != nil, "pattern.EqualToFunc", "provider")
	return simple("x = <lazy>", func(x T) bool {
		return x == provider()
	})
}

// LessThan returns a simple pattern matching inputs x < value.
func LessThan[T cmp.Ordered](value T) Pattern[T, T] {
	return ordered("x < %v", value, func(c int) bool { return c < 0 })
}

// LessThanFunc is like LessThan with a lazily provided value.
func LessThanFunc[T cmp.Ordered](provider func() T) Pattern[T, T] {
	return orderedFunc("pattern.LessThanFunc", "x < %v", provider, func(c int) bool { return c < 0 })
}

// LessOrEqual returns a simple pattern matching inputs x <= value.
func LessOrEqual[T cmp.Ordered](value T) Pattern[T, T] {
	return ordered("x <= %v", value, func(c int) bool { return c <= 0 })
}

// LessOrEqualFunc is like LessOrEqual with a lazily provided value.
func LessOrEqualFunc[T cmp.Ordered](provider func() T) Pattern[T, T] {
	return orderedFunc("pattern.LessOrEqualFunc", "x <= %v", provider, func(c int) bool { return c <= 0 })
}

// GreaterThan returns a simple pattern matching inputs x > value.
func GreaterThan[T cmp.Ordered](value T) Pattern[T, T] {
	return ordered("x > %v", value, func(c int) bool { return c > 0 })
}

// GreaterThanFunc is like GreaterThan with a lazily provided value.
func GreaterThanFunc[T cmp.Ordered](provider func() T) Pattern[T, T] {
	return orderedFunc("pattern.GreaterThanFunc", "x > %v", provider, func(c int) bool { return c > 0 })
}

// GreaterOrEqual returns a simple pattern matching inputs x >= value.
func GreaterOrEqual[T cmp.Ordered](value T) Pattern[T, T] {
	return ordered("x >= %v", value, func(c int) bool { return c >= 0 })
}

// GreaterOrEqualFunc is like GreaterOrEqual with a lazily provided value.
func GreaterOrEqualFunc[T cmp.Ordered](provider func() T) Pattern[T, T] {
	return orderedFunc("pattern.GreaterOrEqualFunc", "x >= %v", provider, func(c int) bool { return c >= 0 })
}

func ordered[T cmp.Ordered](format string, value T, accept func(int) bool) Pattern[T, T] {
	return simple(fmt.Sprintf(format, value), func(x T) bool {
		return accept(cmp.Compare(x, value))
	})
}

func orderedFunc[T cmp.Ordered](op, format string, provider func() T, accept func(int) bool) Pattern[T, T] {
	fpmatch.AssertArgument(provider != nil, op, "provider")
	return simple(fmt.Sprintf(format, "<lazy>"), func(x T) bool {
		return accept(cmp.Compare(x, provider()))
	})
}

// Type returns a pattern which succeeds for inputs of dynamic type Out, converting
// them to Out. A nil input never matches.
//
//     circles := pattern.Type[Shape, Circle]()
//
func Type[In, Out any]() Pattern[In, Out] {
	return Pattern[In, Out]{
		matcher: func(input In) result.Result[Out] {
			v, ok := any(input).(Out)
			return result.Of(v, ok)
		},
		description: fmt.Sprintf("x is %v", reflect.TypeOf((*Out)(nil)).Elem()),
	}
}
