/*
Package fpmatch is a library of composable pattern-matching combinators.

Patterns are values: functions from an input to an optional, possibly transformed
result. They are built programmatically and combined with boolean composition,
piping, binding and caching (package pattern). Match expressions and statements
arrange patterns into ordered cases, as a structured alternative to switch chains
(package match). Both come in a synchronous and a context-aware asynchronous flavour.
Every match attempt produces a result.Result, which is either a success carrying
a value or a failure (package result).

A small example:

    isEven := pattern.Predicate(func(n int) bool { return n%2 == 0 })
    parity := match.Create[int, string]().
        Case(match.On(isEven, func(int) string { return "even" })).
        Case(match.On(pattern.Any[int](), func(int) string { return "odd" }))
    s, err := parity.ExecuteOn(7) // "odd", nil

The root package holds a handful of function helpers and the argument validation
error shared by all sub-packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fpmatch
