package pattern

import (
	"fmt"
	"slices"

	"github.com/npillmayer/fpmatch"
	"github.com/npillmayer/fpmatch/result"
)

// Formats for descriptions of composite patterns. Each takes the descriptions of
// the operands as arguments.
var (
	DefaultAndDescriptionFormat  = "(%s) and (%s)"
	DefaultOrDescriptionFormat   = "(%s) or (%s)"
	DefaultXorDescriptionFormat  = "(%s) xor (%s)"
	DefaultNotDescriptionFormat  = "not (%s)"
	DefaultPipeDescriptionFormat = "%s -> %s"
)

// Composition is a rule for combining the outcomes of two patterns.
type Composition int

// Compositions supported by Compose.
const (
	And Composition = iota
	Or
	Xor
)

func (c Composition) String() string {
	switch c {
	case And:
		return "and"
	case Or:
		return "or"
	case Xor:
		return "xor"
	}
	return fmt.Sprintf("Composition(%d)", int(c))
}

func (c Composition) format() string {
	switch c {
	case And:
		return DefaultAndDescriptionFormat
	case Or:
		return DefaultOrDescriptionFormat
	case Xor:
		return DefaultXorDescriptionFormat
	}
	panic(fmt.Sprintf("pattern: unknown composition %d", int(c)))
}

// describe formats a composite description, which is empty if any of the parts is.
func describe(format string, parts ...string) string {
	args := make([]any, len(parts))
	for i, part := range parts {
		if part == "" {
			return ""
		}
		args[i] = part
	}
	return fmt.Sprintf(format, args...)
}

// Compose combines p and other according to a composition rule:
//
//  And: both patterns succeed, the result of p is returned
//  Or:  at least one pattern succeeds, the first success is returned (other is
//       matched only if p fails)
//  Xor: exactly one pattern succeeds, its result is returned
//
// Conjunction of two simple patterns concatenates their predicates.
func (p Pattern[In, Out]) Compose(other Pattern[In, Out], composition Composition) Pattern[In, Out] {
	assertValid(p, "Pattern.Compose")
	assertValid(other, "Pattern.Compose")
	description := describe(composition.format(), p.description, other.description)
	if p.simple && other.simple {
		return composeSimple(p, other, composition, description)
	}
	var matcher func(In) result.Result[Out]
	switch composition {
	case And:
		matcher = func(input In) result.Result[Out] {
			r := p.Match(input)
			if !r.IsSuccessful() || !other.Matches(input) {
				return result.Failure[Out]()
			}
			return r
		}
	case Or:
		matcher = func(input In) result.Result[Out] {
			if r := p.Match(input); r.IsSuccessful() {
				return r
			}
			return other.Match(input)
		}
	case Xor:
		matcher = func(input In) result.Result[Out] {
			r1, r2 := p.Match(input), other.Match(input)
			switch {
			case r1.IsSuccessful() && !r2.IsSuccessful():
				return r1
			case r2.IsSuccessful() && !r1.IsSuccessful():
				return r2
			}
			return result.Failure[Out]()
		}
	default:
		panic(fmt.Sprintf("pattern: unknown composition %d", int(composition)))
	}
	return Pattern[In, Out]{matcher: matcher, description: description}
}

// composeSimple combines two identity-matcher patterns. Predicate lists cannot be
// merged for Or and Xor, therefore these wrap both operands.
func composeSimple[In, Out any](p, other Pattern[In, Out], composition Composition,
	description string) Pattern[In, Out] {
	//
	q := p
	q.description = description
	switch composition {
	case And:
		q.predicates = slices.Concat(p.predicates, other.predicates)
	case Or:
		q.predicates = []func(Out) bool{func(x Out) bool {
			return p.holds(x) || other.holds(x)
		}}
	case Xor:
		q.predicates = []func(Out) bool{func(x Out) bool {
			return p.holds(x) != other.holds(x)
		}}
	default:
		panic(fmt.Sprintf("pattern: unknown composition %d", int(composition)))
	}
	return q
}

// holds checks the predicates of a simple pattern.
func (p Pattern[In, Out]) holds(x Out) bool {
	for _, predicate := range p.predicates {
		if !predicate(x) {
			return false
		}
	}
	return true
}

// And is short for p.Compose(other, And).
func (p Pattern[In, Out]) And(other Pattern[In, Out]) Pattern[In, Out] {
	return p.Compose(other, And)
}

// Or is short for p.Compose(other, Or).
func (p Pattern[In, Out]) Or(other Pattern[In, Out]) Pattern[In, Out] {
	return p.Compose(other, Or)
}

// Xor is short for p.Compose(other, Xor).
func (p Pattern[In, Out]) Xor(other Pattern[In, Out]) Pattern[In, Out] {
	return p.Compose(other, Xor)
}

// Not returns a simple pattern which succeeds with its input exactly when p
// fails. Any transformation of p is discarded.
func (p Pattern[In, Out]) Not() Pattern[In, In] {
	assertValid(p, "Pattern.Not")
	return simple(describe(DefaultNotDescriptionFormat, p.description),
		func(x In) bool { return !p.Matches(x) },
	)
}

// Not is the function form of p.Not().
func Not[In, Out any](p Pattern[In, Out]) Pattern[In, In] {
	return p.Not()
}

// --- Linq-style combinators ------------------------------------------------

// Select maps the result of successful matches of p. The description of p is
// retained.
func Select[In, Out, R any](p Pattern[In, Out], mapper func(Out) R) Pattern[In, R] {
	assertValid(p, "pattern.Select")
	fpmatch.AssertArgument(mapper != nil, "pattern.Select", "mapper")
	return Pattern[In, R]{
		matcher: fpmatch.Compose(p.Match, func(r result.Result[Out]) result.Result[R] {
			return result.Select(r, mapper)
		}),
		description: p.description,
	}
}

// Bind derives a second pattern from the result of p and matches the original
// input against it:
//
//     Bind(p, binder).Match(x) == binder(v).Match(x)   if p.Match(x) == Success(v)
//
// The description of p is retained.
func Bind[In, Out, R any](p Pattern[In, Out], binder func(Out) Pattern[In, R]) Pattern[In, R] {
	assertValid(p, "pattern.Bind")
	fpmatch.AssertArgument(binder != nil, "pattern.Bind", "binder")
	return Pattern[In, R]{
		matcher: func(input In) result.Result[R] {
			r := p.Match(input)
			if !r.IsSuccessful() {
				return result.Failure[R]()
			}
			return binder(r.Value()).Match(input)
		},
		description: p.description,
	}
}

// Pipe matches the result of p against second:
//
//     Pipe(p, second).Match(x) == second.Match(v)   if p.Match(x) == Success(v)
//
// The description is formatted with DefaultPipeDescriptionFormat.
func Pipe[In, Mid, Out any](p Pattern[In, Mid], second Pattern[Mid, Out]) Pattern[In, Out] {
	assertValid(p, "pattern.Pipe")
	assertValid(second, "pattern.Pipe")
	return Pattern[In, Out]{
		matcher:     pipe(p.Match, second.Match),
		description: describe(DefaultPipeDescriptionFormat, p.description, second.description),
	}
}

// PipeFunc is like Pipe, with a raw matcher function as the second stage. The
// description of p is retained.
func PipeFunc[In, Mid, Out any](p Pattern[In, Mid], matcher func(Mid) result.Result[Out]) Pattern[In, Out] {
	assertValid(p, "pattern.PipeFunc")
	fpmatch.AssertArgument(matcher != nil, "pattern.PipeFunc", "matcher")
	return Pattern[In, Out]{
		matcher:     pipe(p.Match, matcher),
		description: p.description,
	}
}

func pipe[In, Mid, Out any](first func(In) result.Result[Mid], second func(Mid) result.Result[Out]) func(In) result.Result[Out] {
	return func(input In) result.Result[Out] {
		return result.Bind(first(input), second)
	}
}

// Cast pipes the result of p into Type[Old, New], narrowing (or widening) its
// result type:
//
//     shapes := pattern.Any[Shape]()
//     circles := pattern.Cast[Circle](shapes)
//
func Cast[New, In, Old any](p Pattern[In, Old]) Pattern[In, New] {
	return Pipe(p, Type[Old, New]())
}
