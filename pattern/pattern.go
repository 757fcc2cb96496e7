package pattern

import (
	"context"
	"slices"

	"github.com/npillmayer/fpmatch"
	"github.com/npillmayer/fpmatch/result"
)

// Pattern tests an input of type In and on success transforms it into a value of
// type Out. The zero value is not a valid pattern; create patterns with New,
// Predicate or one of the other constructors.
type Pattern[In, Out any] struct {
	matcher     func(In) result.Result[Out]
	predicates  []func(Out) bool // extra filters, applied in order
	description string
	simple      bool // matcher is the identity
}

// New creates a transforming pattern from a matcher function. Its description is
// empty.
func New[In, Out any](matcher func(In) result.Result[Out]) Pattern[In, Out] {
	fpmatch.AssertArgument(matcher != nil, "pattern.New", "matcher")
	return Pattern[In, Out]{matcher: matcher}
}

// Predicate creates a simple pattern, which succeeds with its input whenever
// predicate holds.
func Predicate[T any](predicate func(T) bool) Pattern[T, T] {
	fpmatch.AssertArgument(predicate != nil, "pattern.Predicate", "predicate")
	return simple[T]("", predicate)
}

func simple[T any](description string, predicates ...func(T) bool) Pattern[T, T] {
	return Pattern[T, T]{
		matcher:     identity[T],
		predicates:  predicates,
		description: description,
		simple:      true,
	}
}

func identity[T any](x T) result.Result[T] {
	return result.Success(x)
}

// Match applies the pattern to an input. It succeeds if the matcher succeeds and
// every predicate added with When accepts the matcher's result.
func (p Pattern[In, Out]) Match(input In) result.Result[Out] {
	assertValid(p, "Pattern.Match")
	r := p.matcher(input)
	if !r.IsSuccessful() {
		return r
	}
	v := r.Value()
	for _, predicate := range p.predicates {
		if !predicate(v) {
			return result.Failure[Out]()
		}
	}
	return r
}

// Matches is a shortcut for p.Match(input).IsSuccessful().
func (p Pattern[In, Out]) Matches(input In) bool {
	return p.Match(input).IsSuccessful()
}

// Description returns the human-readable description of p, possibly empty.
func (p Pattern[In, Out]) Description() string {
	return p.description
}

// IsSimple is true for patterns which do not transform their input.
func (p Pattern[In, Out]) IsSimple() bool {
	return p.simple
}

// IsValid is false for the zero value of Pattern.
func (p Pattern[In, Out]) IsValid() bool {
	return p.matcher != nil
}

// When returns a copy of p with an additional predicate, which has to accept the
// result of a successful match.
func (p Pattern[In, Out]) When(predicate func(Out) bool) Pattern[In, Out] {
	assertValid(p, "Pattern.When")
	fpmatch.AssertArgument(predicate != nil, "Pattern.When", "predicate")
	p.predicates = append(slices.Clip(p.predicates), predicate) // never write into a shared array
	return p
}

// Where is a synonym for When.
func (p Pattern[In, Out]) Where(predicate func(Out) bool) Pattern[In, Out] {
	return p.When(predicate)
}

// WithDescription returns a copy of p with a different description.
func (p Pattern[In, Out]) WithDescription(description string) Pattern[In, Out] {
	assertValid(p, "Pattern.WithDescription")
	p.description = description
	return p
}

// AsAsync lifts p into an asynchronous pattern with the same description.
func (p Pattern[In, Out]) AsAsync() Async[In, Out] {
	assertValid(p, "Pattern.AsAsync")
	return Async[In, Out]{
		matcher: func(_ context.Context, input In) (result.Result[Out], error) {
			return p.Match(input), nil
		},
		description: p.description,
	}
}

func (p Pattern[In, Out]) String() string {
	if p.description == "" {
		return "<pattern>"
	}
	return p.description
}

func assertValid[In, Out any](p Pattern[In, Out], op string) {
	fpmatch.AssertArgument(p.matcher != nil, op, "pattern")
}
