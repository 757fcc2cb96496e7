package match

import (
	"iter"

	"github.com/npillmayer/fpmatch"
	"github.com/npillmayer/fpmatch/result"
)

// Expression is a match expression: an ordered list of cases, each of which maps
// a matching input to a value of type Out. An empty instance is usable as an empty
// match expression without fallthrough.
type Expression[In, Out any] struct {
	settings
	cases []entry[Case[In, Out]]
}

// Create returns an empty match expression.
func Create[In, Out any](opts ...Option) Expression[In, Out] {
	return Expression[In, Out]{settings: configure(opts)}
}

// Case returns a copy of m with c appended. c falls through if m falls through
// by default.
func (m Expression[In, Out]) Case(c Case[In, Out]) Expression[In, Out] {
	return m.CaseFallthrough(m.fallthroughByDefault, c)
}

// CaseFallthrough returns a copy of m with c appended, overriding the default
// fallthrough behaviour of m for c.
func (m Expression[In, Out]) CaseFallthrough(fallsThrough bool, c Case[In, Out]) Expression[In, Out] {
	fpmatch.AssertArgument(c.try != nil, "Expression.Case", "case")
	m.cases = appended(m.cases, c, fallsThrough)
	return m
}

// Len returns the number of cases of m.
func (m Expression[In, Out]) Len() int {
	return len(m.cases)
}

// FallthroughByDefault reports the default fallthrough behaviour for new cases.
func (m Expression[In, Out]) FallthroughByDefault() bool {
	return m.fallthroughByDefault
}

// --- Execution -------------------------------------------------------------

// ExecuteOn tests the cases of m in order and returns the value produced by the
// handler of the first matching case. Subsequent cases are not tested. If no case
// matches, a *MatchError is returned.
func (m Expression[In, Out]) ExecuteOn(input In) (Out, error) {
	if r := m.ExecuteNonStrict(input); r.IsSuccessful() {
		return r.Value(), nil
	}
	var none Out
	return none, newMatchError(input)
}

// ExecuteStrict is a synonym for ExecuteOn.
func (m Expression[In, Out]) ExecuteStrict(input In) (Out, error) {
	return m.ExecuteOn(input)
}

// ExecuteNonStrict is like ExecuteOn, but reports a failed result instead of an
// error if no case matches.
func (m Expression[In, Out]) ExecuteNonStrict(input In) result.Result[Out] {
	for i, e := range m.cases {
		if out, ok := e.c.try(input); ok {
			tracer().Debugf("match: case #%d matched %v", i, input)
			return result.Success(out)
		}
	}
	return result.Failure[Out]()
}

// ExecuteWithFallthrough returns a lazy sequence of the values produced by the
// handlers of matching cases, in case order. The sequence ends after the first
// matching case which does not fall through. No case is tested before the
// sequence is iterated, and iterating it again re-executes the cases.
// If no case matches, the sequence consists of a single *MatchError.
func (m Expression[In, Out]) ExecuteWithFallthrough(input In) iter.Seq2[Out, error] {
	return func(yield func(Out, error) bool) {
		matched := false
		for out := range m.ExecuteNonStrictWithFallthrough(input) {
			matched = true
			if !yield(out, nil) {
				return
			}
		}
		if !matched {
			var none Out
			yield(none, newMatchError(input))
		}
	}
}

// ExecuteNonStrictWithFallthrough is like ExecuteWithFallthrough, but produces an
// empty sequence if no case matches.
func (m Expression[In, Out]) ExecuteNonStrictWithFallthrough(input In) iter.Seq[Out] {
	return func(yield func(Out) bool) {
		for i, e := range m.cases {
			out, ok := e.c.try(input)
			if !ok {
				continue
			}
			tracer().Debugf("match: case #%d matched %v, falls through = %v", i, input, e.fallsThrough)
			if !yield(out) || !e.fallsThrough {
				return
			}
		}
	}
}

// --- Functions -------------------------------------------------------------

// ToFunction returns m.ExecuteOn as a function value.
func (m Expression[In, Out]) ToFunction() func(In) (Out, error) {
	return m.ExecuteOn
}

// ToStrictFunction is a synonym for ToFunction.
func (m Expression[In, Out]) ToStrictFunction() func(In) (Out, error) {
	return m.ExecuteOn
}

// ToNonStrictFunction returns m.ExecuteNonStrict as a function value.
func (m Expression[In, Out]) ToNonStrictFunction() func(In) result.Result[Out] {
	return m.ExecuteNonStrict
}

// ToFunctionWithFallthrough returns m.ExecuteWithFallthrough as a function value.
func (m Expression[In, Out]) ToFunctionWithFallthrough() func(In) iter.Seq2[Out, error] {
	return m.ExecuteWithFallthrough
}

// ToNonStrictFunctionWithFallthrough returns m.ExecuteNonStrictWithFallthrough
// as a function value.
func (m Expression[In, Out]) ToNonStrictFunctionWithFallthrough() func(In) iter.Seq[Out] {
	return m.ExecuteNonStrictWithFallthrough
}
