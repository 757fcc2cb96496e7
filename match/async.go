package match

import (
	"context"
	"iter"

	"github.com/npillmayer/fpmatch"
	"github.com/npillmayer/fpmatch/result"
)

// AsyncExpression is a match expression with asynchronous cases. Cases are
// tested strictly in order: a case is completely evaluated before the next one is
// tested. An error returned by a pattern or handler aborts the execution.
type AsyncExpression[In, Out any] struct {
	settings
	cases []entry[AsyncCase[In, Out]]
}

// CreateAsync returns an empty asynchronous match expression.
func CreateAsync[In, Out any](opts ...Option) AsyncExpression[In, Out] {
	return AsyncExpression[In, Out]{settings: configure(opts)}
}

// Case returns a copy of m with c appended, using the default fallthrough
// behaviour of m.
func (m AsyncExpression[In, Out]) Case(c AsyncCase[In, Out]) AsyncExpression[In, Out] {
	return m.CaseFallthrough(m.fallthroughByDefault, c)
}

// CaseFallthrough returns a copy of m with c appended, overriding the default
// fallthrough behaviour of m for c.
func (m AsyncExpression[In, Out]) CaseFallthrough(fallsThrough bool, c AsyncCase[In, Out]) AsyncExpression[In, Out] {
	fpmatch.AssertArgument(c.try != nil, "AsyncExpression.Case", "case")
	m.cases = appended(m.cases, c, fallsThrough)
	return m
}

// Len returns the number of cases of m.
func (m AsyncExpression[In, Out]) Len() int {
	return len(m.cases)
}

// FallthroughByDefault reports the default fallthrough behaviour for new cases.
func (m AsyncExpression[In, Out]) FallthroughByDefault() bool {
	return m.fallthroughByDefault
}

// ExecuteAsync returns the value produced by the handler of the first matching
// case, or a *MatchError if no case matches.
func (m AsyncExpression[In, Out]) ExecuteAsync(ctx context.Context, input In) (Out, error) {
	r, err := m.ExecuteNonStrictAsync(ctx, input)
	if err != nil {
		return r.Value(), err
	}
	if !r.IsSuccessful() {
		return r.Value(), newMatchError(input)
	}
	return r.Value(), nil
}

// ExecuteNonStrictAsync is like ExecuteAsync, but reports a failed result instead
// of an error if no case matches.
func (m AsyncExpression[In, Out]) ExecuteNonStrictAsync(ctx context.Context, input In) (result.Result[Out], error) {
	for i, e := range m.cases {
		out, ok, err := e.c.try(ctx, input)
		if err != nil {
			return result.Failure[Out](), err
		}
		if ok {
			tracer().Debugf("match: async case #%d matched %v", i, input)
			return result.Success(out), nil
		}
	}
	return result.Failure[Out](), nil
}

// ExecuteWithFallthroughAsync returns a lazy sequence of the values produced by
// the handlers of matching cases (see Expression.ExecuteWithFallthrough). An
// error ends the sequence. If no case matches, the sequence consists of a single
// *MatchError.
func (m AsyncExpression[In, Out]) ExecuteWithFallthroughAsync(ctx context.Context, input In) iter.Seq2[Out, error] {
	return func(yield func(Out, error) bool) {
		matched := false
		for out, err := range m.ExecuteNonStrictWithFallthroughAsync(ctx, input) {
			if err == nil {
				matched = true
			}
			if !yield(out, err) || err != nil {
				return
			}
		}
		if !matched {
			var none Out
			yield(none, newMatchError(input))
		}
	}
}

// ExecuteNonStrictWithFallthroughAsync is like ExecuteWithFallthroughAsync, but
// produces an empty sequence if no case matches.
func (m AsyncExpression[In, Out]) ExecuteNonStrictWithFallthroughAsync(ctx context.Context, input In) iter.Seq2[Out, error] {
	return func(yield func(Out, error) bool) {
		for i, e := range m.cases {
			out, ok, err := e.c.try(ctx, input)
			if err != nil {
				yield(out, err)
				return
			}
			if !ok {
				continue
			}
			tracer().Debugf("match: async case #%d matched %v, falls through = %v", i, input, e.fallsThrough)
			if !yield(out, nil) || !e.fallsThrough {
				return
			}
		}
	}
}

// ToFunction returns m.ExecuteAsync as a function value.
func (m AsyncExpression[In, Out]) ToFunction() func(context.Context, In) (Out, error) {
	return m.ExecuteAsync
}

// ToNonStrictFunction returns m.ExecuteNonStrictAsync as a function value.
func (m AsyncExpression[In, Out]) ToNonStrictFunction() func(context.Context, In) (result.Result[Out], error) {
	return m.ExecuteNonStrictAsync
}

// ToFunctionWithFallthrough returns m.ExecuteWithFallthroughAsync as a function value.
func (m AsyncExpression[In, Out]) ToFunctionWithFallthrough() func(context.Context, In) iter.Seq2[Out, error] {
	return m.ExecuteWithFallthroughAsync
}

// ToNonStrictFunctionWithFallthrough returns m.ExecuteNonStrictWithFallthroughAsync
// as a function value.
func (m AsyncExpression[In, Out]) ToNonStrictFunctionWithFallthrough() func(context.Context, In) iter.Seq2[Out, error] {
	return m.ExecuteNonStrictWithFallthroughAsync
}

// --- Statements ------------------------------------------------------------

// AsyncStatement is a match statement with asynchronous cases.
type AsyncStatement[In any] struct {
	settings
	cases []entry[AsyncAction[In]]
}

// CreateAsyncStatement returns an empty asynchronous match statement.
func CreateAsyncStatement[In any](opts ...Option) AsyncStatement[In] {
	return AsyncStatement[In]{settings: configure(opts)}
}

// Fallthrough returns a copy of s which uses fallsThrough as the default for
// cases added subsequently.
func (s AsyncStatement[In]) Fallthrough(fallsThrough bool) AsyncStatement[In] {
	s.fallthroughByDefault = fallsThrough
	return s
}

// Case returns a copy of s with a appended, using the default fallthrough
// behaviour of s.
func (s AsyncStatement[In]) Case(a AsyncAction[In]) AsyncStatement[In] {
	return s.CaseFallthrough(s.fallthroughByDefault, a)
}

// CaseFallthrough returns a copy of s with a appended, overriding the default
// fallthrough behaviour of s for a.
func (s AsyncStatement[In]) CaseFallthrough(fallsThrough bool, a AsyncAction[In]) AsyncStatement[In] {
	fpmatch.AssertArgument(a.try != nil, "AsyncStatement.Case", "action")
	s.cases = appended(s.cases, a, fallsThrough)
	return s
}

// Len returns the number of cases of s.
func (s AsyncStatement[In]) Len() int {
	return len(s.cases)
}

// FallthroughByDefault reports the default fallthrough behaviour for new cases.
func (s AsyncStatement[In]) FallthroughByDefault() bool {
	return s.fallthroughByDefault
}

// ExecuteAsync performs the action of the first matching case. If no case
// matches, a *MatchError is returned.
func (s AsyncStatement[In]) ExecuteAsync(ctx context.Context, input In) error {
	ok, err := s.ExecuteNonStrictAsync(ctx, input)
	if err == nil && !ok {
		return newMatchError(input)
	}
	return err
}

// ExecuteNonStrictAsync performs the action of the first matching case and
// reports whether there was one.
func (s AsyncStatement[In]) ExecuteNonStrictAsync(ctx context.Context, input In) (bool, error) {
	for i, e := range s.cases {
		ok, err := e.c.try(ctx, input)
		if err != nil {
			return ok, err
		}
		if ok {
			tracer().Debugf("match: async statement case #%d matched %v", i, input)
			return true, nil
		}
	}
	return false, nil
}

// ExecuteWithFallthroughAsync performs the actions of matching cases in order,
// until a matching case does not fall through, and returns the number of actions
// performed. It returns a *MatchError if there were none.
func (s AsyncStatement[In]) ExecuteWithFallthroughAsync(ctx context.Context, input In) (int, error) {
	n, err := s.ExecuteNonStrictWithFallthroughAsync(ctx, input)
	if err == nil && n == 0 {
		return 0, newMatchError(input)
	}
	return n, err
}

// ExecuteNonStrictWithFallthroughAsync is like ExecuteWithFallthroughAsync,
// without reporting an error if no case matches. An action returning an error
// counts as performed.
func (s AsyncStatement[In]) ExecuteNonStrictWithFallthroughAsync(ctx context.Context, input In) (int, error) {
	executed := 0
	for _, e := range s.cases {
		ok, err := e.c.try(ctx, input)
		if ok {
			executed++
		}
		if err != nil {
			return executed, err
		}
		if ok && !e.fallsThrough {
			break
		}
	}
	return executed, nil
}

// ToFunction returns s.ExecuteAsync as a function value.
func (s AsyncStatement[In]) ToFunction() func(context.Context, In) error {
	return s.ExecuteAsync
}

// ToNonStrictFunction returns s.ExecuteNonStrictAsync as a function value.
func (s AsyncStatement[In]) ToNonStrictFunction() func(context.Context, In) (bool, error) {
	return s.ExecuteNonStrictAsync
}

// ToFunctionWithFallthrough returns s.ExecuteWithFallthroughAsync as a function value.
func (s AsyncStatement[In]) ToFunctionWithFallthrough() func(context.Context, In) (int, error) {
	return s.ExecuteWithFallthroughAsync
}

// ToNonStrictFunctionWithFallthrough returns s.ExecuteNonStrictWithFallthroughAsync
// as a function value.
func (s AsyncStatement[In]) ToNonStrictFunctionWithFallthrough() func(context.Context, In) (int, error) {
	return s.ExecuteNonStrictWithFallthroughAsync
}
