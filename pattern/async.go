package pattern

import (
	"context"
	"fmt"
	"slices"

	"github.com/npillmayer/fpmatch"
	"github.com/npillmayer/fpmatch/result"
)

// Async is the asynchronous counterpart of Pattern. Its matcher may block and
// receives a context; errors returned by user-supplied functions abort a match and
// are handed to the caller unchanged. Patterns never start goroutines of their
// own: all functions are called sequentially on the caller's goroutine.
type Async[In, Out any] struct {
	matcher     func(context.Context, In) (result.Result[Out], error)
	predicates  []func(context.Context, Out) (bool, error)
	description string
}

// NewAsync creates an asynchronous pattern from a matcher function.
func NewAsync[In, Out any](matcher func(context.Context, In) (result.Result[Out], error)) Async[In, Out] {
	fpmatch.AssertArgument(matcher != nil, "pattern.NewAsync", "matcher")
	return Async[In, Out]{matcher: matcher}
}

// PredicateAsync creates an asynchronous pattern which succeeds with its input
// whenever predicate holds.
func PredicateAsync[T any](predicate func(context.Context, T) (bool, error)) Async[T, T] {
	fpmatch.AssertArgument(predicate != nil, "pattern.PredicateAsync", "predicate")
	return Async[T, T]{
		matcher: func(_ context.Context, x T) (result.Result[T], error) {
			return result.Success(x), nil
		},
		predicates: []func(context.Context, T) (bool, error){predicate},
	}
}

// Match applies the pattern to an input, then checks all additional predicates in
// order.
func (p Async[In, Out]) Match(ctx context.Context, input In) (result.Result[Out], error) {
	assertValidAsync(p, "Async.Match")
	r, err := p.matcher(ctx, input)
	if err != nil || !r.IsSuccessful() {
		return r, err
	}
	v := r.Value()
	for _, predicate := range p.predicates {
		ok, err := predicate(ctx, v)
		if err != nil {
			return result.Failure[Out](), err
		}
		if !ok {
			return result.Failure[Out](), nil
		}
	}
	return r, nil
}

// Matches reports whether input matches p.
func (p Async[In, Out]) Matches(ctx context.Context, input In) (bool, error) {
	r, err := p.Match(ctx, input)
	return r.IsSuccessful(), err
}

// Description returns the human-readable description of p, possibly empty.
func (p Async[In, Out]) Description() string {
	return p.description
}

// IsValid is false for the zero value of Async.
func (p Async[In, Out]) IsValid() bool {
	return p.matcher != nil
}

// When returns a copy of p with an additional synchronous predicate.
func (p Async[In, Out]) When(predicate func(Out) bool) Async[In, Out] {
	fpmatch.AssertArgument(predicate != nil, "Async.When", "predicate")
	return p.WhereAsync(func(_ context.Context, x Out) (bool, error) {
		return predicate(x), nil
	})
}

// Where is a synonym for When.
func (p Async[In, Out]) Where(predicate func(Out) bool) Async[In, Out] {
	return p.When(predicate)
}

// WhereAsync returns a copy of p with an additional asynchronous predicate.
func (p Async[In, Out]) WhereAsync(predicate func(context.Context, Out) (bool, error)) Async[In, Out] {
	assertValidAsync(p, "Async.WhereAsync")
	fpmatch.AssertArgument(predicate != nil, "Async.WhereAsync", "predicate")
	p.predicates = append(slices.Clip(p.predicates), predicate)
	return p
}

// WithDescription returns a copy of p with a different description.
func (p Async[In, Out]) WithDescription(description string) Async[In, Out] {
	assertValidAsync(p, "Async.WithDescription")
	p.description = description
	return p
}

func (p Async[In, Out]) String() string {
	if p.description == "" {
		return "<async pattern>"
	}
	return p.description
}

func assertValidAsync[In, Out any](p Async[In, Out], op string) {
	fpmatch.AssertArgument(p.matcher != nil, op, "pattern")
}

// --- Composition -----------------------------------------------------------

// Compose combines p and other according to a composition rule, with the same
// semantics as Pattern.Compose. Operands are matched one after the other; an error
// of the first operand prevents matching the second.
func (p Async[In, Out]) Compose(other Async[In, Out], composition Composition) Async[In, Out] {
	assertValidAsync(p, "Async.Compose")
	assertValidAsync(other, "Async.Compose")
	var matcher func(context.Context, In) (result.Result[Out], error)
	switch composition {
	case And:
		matcher = func(ctx context.Context, input In) (result.Result[Out], error) {
			r, err := p.Match(ctx, input)
			if err != nil || !r.IsSuccessful() {
				return result.Failure[Out](), err
			}
			ok, err := other.Matches(ctx, input)
			if err != nil || !ok {
				return result.Failure[Out](), err
			}
			return r, nil
		}
	case Or:
		matcher = func(ctx context.Context, input In) (result.Result[Out], error) {
			r, err := p.Match(ctx, input)
			if err != nil || r.IsSuccessful() {
				return r, err
			}
			return other.Match(ctx, input)
		}
	case Xor:
		matcher = func(ctx context.Context, input In) (result.Result[Out], error) {
			r1, err := p.Match(ctx, input)
			if err != nil {
				return result.Failure[Out](), err
			}
			r2, err := other.Match(ctx, input)
			if err != nil {
				return result.Failure[Out](), err
			}
			switch {
			case r1.IsSuccessful() && !r2.IsSuccessful():
				return r1, nil
			case r2.IsSuccessful() && !r1.IsSuccessful():
				return r2, nil
			}
			return result.Failure[Out](), nil
		}
	default:
		panic(fmt.Sprintf("pattern: unknown composition %d", int(composition)))
	}
	return Async[In, Out]{
		matcher:     matcher,
		description: describe(composition.format(), p.description, other.description),
	}
}

// And is short for p.Compose(other, And).
func (p Async[In, Out]) And(other Async[In, Out]) Async[In, Out] {
	return p.Compose(other, And)
}

// Or is short for p.Compose(other, Or).
func (p Async[In, Out]) Or(other Async[In, Out]) Async[In, Out] {
	return p.Compose(other, Or)
}

// Xor is short for p.Compose(other, Xor).
func (p Async[In, Out]) Xor(other Async[In, Out]) Async[In, Out] {
	return p.Compose(other, Xor)
}

// Not returns a pattern which succeeds with its input exactly when p fails.
// Errors of p are passed through.
func (p Async[In, Out]) Not() Async[In, In] {
	assertValidAsync(p, "Async.Not")
	return Async[In, In]{
		matcher: func(ctx context.Context, input In) (result.Result[In], error) {
			ok, err := p.Matches(ctx, input)
			if err != nil || ok {
				return result.Failure[In](), err
			}
			return result.Success(input), nil
		},
		description: describe(DefaultNotDescriptionFormat, p.description),
	}
}

// --- Linq-style combinators ------------------------------------------------

// SelectAsync maps the result of successful matches of p.
func SelectAsync[In, Out, R any](p Async[In, Out], mapper func(Out) R) Async[In, R] {
	assertValidAsync(p, "pattern.SelectAsync")
	fpmatch.AssertArgument(mapper != nil, "pattern.SelectAsync", "mapper")
	return Async[In, R]{
		matcher: func(ctx context.Context, input In) (result.Result[R], error) {
			r, err := p.Match(ctx, input)
			if err != nil {
				return result.Failure[R](), err
			}
			return result.Select(r, mapper), nil
		},
		description: p.description,
	}
}

// BindAsync derives a second pattern from the result of p and matches the
// original input against it (see Bind).
func BindAsync[In, Out, R any](p Async[In, Out], binder func(Out) Async[In, R]) Async[In, R] {
	assertValidAsync(p, "pattern.BindAsync")
	fpmatch.AssertArgument(binder != nil, "pattern.BindAsync", "binder")
	return Async[In, R]{
		matcher: func(ctx context.Context, input In) (result.Result[R], error) {
			r, err := p.Match(ctx, input)
			if err != nil || !r.IsSuccessful() {
				return result.Failure[R](), err
			}
			return binder(r.Value()).Match(ctx, input)
		},
		description: p.description,
	}
}

// PipeAsync matches the result of p against second (see Pipe).
func PipeAsync[In, Mid, Out any](p Async[In, Mid], second Async[Mid, Out]) Async[In, Out] {
	assertValidAsync(p, "pattern.PipeAsync")
	assertValidAsync(second, "pattern.PipeAsync")
	return Async[In, Out]{
		matcher:     pipeAsync(p.Match, second.Match),
		description: describe(DefaultPipeDescriptionFormat, p.description, second.description),
	}
}

// PipeAsyncFunc is like PipeAsync, with a raw matcher function as the second
// stage. The description of p is retained.
func PipeAsyncFunc[In, Mid, Out any](p Async[In, Mid],
	matcher func(context.Context, Mid) (result.Result[Out], error)) Async[In, Out] {
	//
	assertValidAsync(p, "pattern.PipeAsyncFunc")
	fpmatch.AssertArgument(matcher != nil, "pattern.PipeAsyncFunc", "matcher")
	return Async[In, Out]{
		matcher:     pipeAsync(p.Match, matcher),
		description: p.description,
	}
}

func pipeAsync[In, Mid, Out any](first func(context.Context, In) (result.Result[Mid], error),
	second func(context.Context, Mid) (result.Result[Out], error)) func(context.Context, In) (result.Result[Out], error) {
	//
	return func(ctx context.Context, input In) (result.Result[Out], error) {
		r, err := first(ctx, input)
		if err != nil || !r.IsSuccessful() {
			return result.Failure[Out](), err
		}
		return second(ctx, r.Value())
	}
}

// CastAsync pipes the result of p into Type[Old, New].
func CastAsync[New, In, Old any](p Async[In, Old]) Async[In, New] {
	return PipeAsync(p, Type[Old, New]().AsAsync())
}
