/*
Package result implements the outcome of a single match attempt: either a success
carrying a value, or a failure.

A failed result carries the zero value of T, which is never to be treated as
caller-visible data. Results of comparable type are comparable with ==, which
compares success flags and values.

All combinators are lazy on failure: none of the supplied functions is invoked
for a failed result.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package result

import (
	"fmt"
	"reflect"

	"github.com/npillmayer/fpmatch"
)

// Result is the result of a match attempt. The zero value is a failure.
type Result[T any] struct {
	value T
	ok    bool
}

// Success wraps x into a successful result.
func Success[T any](x T) Result[T] {
	return Result[T]{value: x, ok: true}
}

// Failure returns an unsuccessful result for type T.
func Failure[T any]() Result[T] {
	return Result[T]{}
}

// Of constructs a result from a value and ok flag, mirroring Go's comma-ok idiom.
func Of[T any](x T, ok bool) Result[T] {
	if !ok {
		return Failure[T]()
	}
	return Success(x)
}

// IsSuccessful is true for results created by Success.
func (r Result[T]) IsSuccessful() bool {
	return r.ok
}

// Value returns the value of a successful result, or the zero value of T.
func (r Result[T]) Value() T {
	return r.value
}

// Get returns the value together with the success flag.
func (r Result[T]) Get() (T, bool) {
	return r.value, r.ok
}

// GetValueOrDefault returns the value of a successful result, otherwise def.
func (r Result[T]) GetValueOrDefault(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

// GetValueOrElse returns the value of a successful result, otherwise the value
// produced by provider. provider is called for failures only.
func (r Result[T]) GetValueOrElse(provider func() T) T {
	fpmatch.AssertArgument(provider != nil, "result.GetValueOrElse", "provider")
	if r.ok {
		return r.value
	}
	return provider()
}

// GetValueOrThrow returns the value of a successful result. For a failure it
// returns the error created by errorFactory, which is not called otherwise.
func (r Result[T]) GetValueOrThrow(errorFactory func() error) (T, error) {
	fpmatch.AssertArgument(errorFactory != nil, "result.GetValueOrThrow", "errorFactory")
	if r.ok {
		return r.value, nil
	}
	return r.value, errorFactory()
}

// Where turns a successful result into a failure if its value does not satisfy
// predicate.
func (r Result[T]) Where(predicate func(T) bool) Result[T] {
	fpmatch.AssertArgument(predicate != nil, "result.Where", "predicate")
	if r.ok && predicate(r.value) {
		return r
	}
	return Failure[T]()
}

// Do calls action with the value of a successful result and returns r unchanged.
func (r Result[T]) Do(action func(T)) Result[T] {
	fpmatch.AssertArgument(action != nil, "result.Do", "action")
	if r.ok {
		action(r.value)
	}
	return r
}

func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return "Failure"
}

// --- Combinators -----------------------------------------------------------

// Select maps the value of a successful result.
func Select[T, U any](r Result[T], mapper func(T) U) Result[U] {
	fpmatch.AssertArgument(mapper != nil, "result.Select", "mapper")
	if !r.ok {
		return Failure[U]()
	}
	return Success(mapper(r.value))
}

// Bind chains a result-producing function to a successful result.
func Bind[T, U any](r Result[T], binder func(T) Result[U]) Result[U] {
	fpmatch.AssertArgument(binder != nil, "result.Bind", "binder")
	if !r.ok {
		return Failure[U]()
	}
	return binder(r.value)
}

// Cast converts the value of a successful result to type U. It fails if the value
// is not of type U. A nil value casts successfully to interface, pointer, map,
// slice, channel and function types, and fails for every other kind of type.
func Cast[U, T any](r Result[T]) Result[U] {
	if !r.ok {
		return Failure[U]()
	}
	v := any(r.value)
	if v == nil {
		if isNilable[U]() {
			var none U
			return Success(none)
		}
		return Failure[U]()
	}
	u, ok := v.(U)
	return Of(u, ok)
}

// Equal compares two results: both failed, or both successful with equal values.
func Equal[T comparable](a, b Result[T]) bool {
	return a.ok == b.ok && a.value == b.value
}

func isNilable[U any]() bool {
	switch reflect.TypeOf((*U)(nil)).Elem().Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.UnsafePointer:
		return true
	}
	return false
}

// --- Matching --------------------------------------------------------------

// Matcher lets clients switch over the state of a result:
//
//     var v int
//     switch m := r.Match(); m {
//     case m.Success(&v):
//         …
//     case m.Failure():
//         …
//     }
//
type Matcher[T any] interface {
	Success(*T) Matcher[T]
	Failure() Matcher[T]
}

// Match returns a matcher for a switch statement over r. The switch compares
// matcher pointers, so T need not be comparable.
func (r Result[T]) Match() Matcher[T] {
	return &matcher[T]{r: r}
}

type matcher[T any] struct {
	r Result[T]
}

func (rm *matcher[T]) Success(v *T) Matcher[T] {
	if rm.r.ok {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm *matcher[T]) Failure() Matcher[T] {
	if !rm.r.ok {
		return rm
	}
	return nil
}
