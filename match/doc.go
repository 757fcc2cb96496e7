/*
Package match arranges patterns into match expressions and match statements.

A match expression is an ordered list of cases, each consisting of a pattern and a
handler producing a value. A match statement is the same with handlers performing
an action only. Cases are tested in the order of registration:

    parity := match.Create[int, string]().
        Case(match.On(pattern.EqualTo(0), func(int) string { return "zero" })).
        Case(match.On(isEven, func(int) string { return "even" })).
        Case(match.On(pattern.Any[int](), func(int) string { return "odd" }))

    s, err := parity.ExecuteOn(7)           // strict: MatchError if no case matches
    r := parity.ExecuteNonStrict(7)         // non-strict: result.Failure if no case matches
    for s := range parity.ExecuteNonStrictWithFallthrough(0) { … }

Building

Builder methods never modify their receiver, but return a new match with the case
appended. Partially built matches may therefore be re-used and branched safely,
and a built match may be shared between goroutines.

Fallthrough

Executing with fallthrough runs every matching case, until a matching case is
reached which does not fall through. Whether a case falls through is decided at
registration: CaseFallthrough sets it explicitly, Case uses the default of the
match (option FallthroughByDefault, false if not given). Fallthrough execution of
expressions is lazy: no handler runs before the resulting sequence is iterated.

Asynchronous matches

AsyncExpression and AsyncStatement take context-aware patterns and handlers,
which may block and return errors. Cases are evaluated strictly one after another
on the caller's goroutine.

Static matches

CreateStatic builds a match once per call site (or per explicit key) and returns
the cached instance on subsequent calls, which is useful for match expressions
defined inside frequently called functions:

    func classify(n int) string {
        m := match.CreateStatic(func(m match.Expression[int, string]) match.Expression[int, string] {
            return m.Case(…).Case(…)
        })
        return m.ExecuteNonStrict(n).GetValueOrDefault("?")
    }

The cache is process-wide and safe for concurrent use; ClearCache evicts the
entries for a type signature.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package match

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.match'.
func tracer() tracing.Trace {
	return tracing.Select("fp.match")
}
