package match

import (
	"github.com/npillmayer/fpmatch"
)

// Statement is a match statement: an ordered list of cases, each of which performs
// an action for a matching input.
type Statement[In any] struct {
	settings
	cases []entry[Action[In]]
}

// CreateStatement returns an empty match statement.
func CreateStatement[In any](opts ...Option) Statement[In] {
	return Statement[In]{settings: configure(opts)}
}

// Fallthrough returns a copy of s which uses fallsThrough as the default for
// cases added subsequently. Cases already registered are not affected.
func (s Statement[In]) Fallthrough(fallsThrough bool) Statement[In] {
	s.fallthroughByDefault = fallsThrough
	return s
}

// Case returns a copy of s with a appended, using the default fallthrough
// behaviour of s.
func (s Statement[In]) Case(a Action[In]) Statement[In] {
	return s.CaseFallthrough(s.fallthroughByDefault, a)
}

// CaseFallthrough returns a copy of s with a appended, overriding the default
// fallthrough behaviour of s for a.
func (s Statement[In]) CaseFallthrough(fallsThrough bool, a Action[In]) Statement[In] {
	fpmatch.AssertArgument(a.try != nil, "Statement.Case", "action")
	s.cases = appended(s.cases, a, fallsThrough)
	return s
}

// Len returns the number of cases of s.
func (s Statement[In]) Len() int {
	return len(s.cases)
}

// FallthroughByDefault reports the default fallthrough behaviour for new cases.
func (s Statement[In]) FallthroughByDefault() bool {
	return s.fallthroughByDefault
}

// --- Execution -------------------------------------------------------------

// ExecuteOn performs the action of the first case matching input. If no case
// matches, a *MatchError is returned.
func (s Statement[In]) ExecuteOn(input In) error {
	if !s.ExecuteNonStrict(input) {
		return newMatchError(input)
	}
	return nil
}

// ExecuteStrict is a synonym for ExecuteOn.
func (s Statement[In]) ExecuteStrict(input In) error {
	return s.ExecuteOn(input)
}

// ExecuteNonStrict performs the action of the first case matching input and
// reports whether there was one.
func (s Statement[In]) ExecuteNonStrict(input In) bool {
	for i, e := range s.cases {
		if e.c.try(input) {
			tracer().Debugf("match: statement case #%d matched %v", i, input)
			return true
		}
	}
	return false
}

// ExecuteWithFallthrough performs the actions of matching cases in order, until
// a matching case does not fall through. It returns the number of actions
// performed, and a *MatchError if there were none.
func (s Statement[In]) ExecuteWithFallthrough(input In) (int, error) {
	n := s.ExecuteNonStrictWithFallthrough(input)
	if n == 0 {
		return 0, newMatchError(input)
	}
	return n, nil
}

// ExecuteNonStrictWithFallthrough is like ExecuteWithFallthrough, without
// reporting an error if no case matches.
func (s Statement[In]) ExecuteNonStrictWithFallthrough(input In) int {
	executed := 0
	for _, e := range s.cases {
		if !e.c.try(input) {
			continue
		}
		executed++
		if !e.fallsThrough {
			break
		}
	}
	return executed
}

// --- Functions -------------------------------------------------------------

// ToFunction returns s.ExecuteOn as a function value.
func (s Statement[In]) ToFunction() func(In) error {
	return s.ExecuteOn
}

// ToStrictFunction is a synonym for ToFunction.
func (s Statement[In]) ToStrictFunction() func(In) error {
	return s.ExecuteOn
}

// ToNonStrictFunction returns s.ExecuteNonStrict as a function value.
func (s Statement[In]) ToNonStrictFunction() func(In) bool {
	return s.ExecuteNonStrict
}

// ToFunctionWithFallthrough returns s.ExecuteWithFallthrough as a function value.
func (s Statement[In]) ToFunctionWithFallthrough() func(In) (int, error) {
	return s.ExecuteWithFallthrough
}

// ToNonStrictFunctionWithFallthrough returns s.ExecuteNonStrictWithFallthrough as
// a function value.
func (s Statement[In]) ToNonStrictFunctionWithFallthrough() func(In) int {
	return s.ExecuteNonStrictWithFallthrough
}
