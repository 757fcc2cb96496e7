/*
Package pattern implements composable patterns: functions from an input value to
an optional, possibly transformed result.

A Pattern[In, Out] tests an input of type In and, on success, produces a value of
type Out. Patterns are immutable values; every combinator returns a new pattern and
leaves its operands untouched, so patterns may be shared between goroutines freely.

Simple patterns

Patterns of type Pattern[T, T] created by Predicate, Any, EqualTo, LessThan & co.
or Not are "simple": they do not transform their input but filter it through a
list of predicates. Conjunction of two simple patterns concatenates their
predicate lists, while disjunction and exclusive disjunction wrap both operands
into a fresh predicate.

    small := pattern.LessThan(10)
    even := pattern.Predicate(func(n int) bool { return n%2 == 0 })
    smallAndEven := small.And(even)
    smallOrEven := small.Or(even)

Transforming patterns

Patterns created by New, Type, Select, Bind, Pipe and Cast transform their input.
Pipe feeds the result of the first pattern into the second one, whereas Bind
derives a second pattern from the result and re-matches the original input.

Asynchronous patterns

Async[In, Out] is the context-aware counterpart of Pattern, for matchers which
block, e.g. for I/O. Async patterns report errors of user-supplied functions
alongside the match result. Synchronous patterns are lifted with AsAsync.

Descriptions

Every pattern carries a human-readable description. Combinators derive a
description from their operands' descriptions (see the Default…Format variables),
with the convention that an empty operand description yields an empty composite
description. WithDescription overrides it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pattern

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.pattern'.
func tracer() tracing.Trace {
	return tracing.Select("fp.pattern")
}
