package match

import (
	"context"

	"github.com/npillmayer/fpmatch"
	"github.com/npillmayer/fpmatch/pattern"
)

// Cases are type-erased: each one captures the result type of its pattern in a
// closure, so that cases with differently typed patterns may live in one list.

// Case is a case of a match expression: a pattern together with a handler for
// the pattern's result. Create cases with On or OnType.
type Case[In, Out any] struct {
	try         func(In) (Out, bool) // match and, on success, run the handler
	description string
}

// On creates a case for a match expression. If p matches, handler is called with
// the result of p.
func On[In, T, Out any](p pattern.Pattern[In, T], handler func(T) Out) Case[In, Out] {
	fpmatch.AssertArgument(p.IsValid(), "match.On", "pattern")
	fpmatch.AssertArgument(handler != nil, "match.On", "handler")
	return Case[In, Out]{
		try: func(input In) (Out, bool) {
			r := p.Match(input)
			if !r.IsSuccessful() {
				var none Out
				return none, false
			}
			return handler(r.Value()), true
		},
		description: p.Description(),
	}
}

// OnType creates a case for inputs of dynamic type T. Usually only In has to be
// given explicitly:
//
//     match.OnType[Shape](func(c Circle) float64 { return c.Area() })
//
func OnType[In, T, Out any](handler func(T) Out) Case[In, Out] {
	return On(pattern.Type[In, T](), handler)
}

// Action is a case of a match statement: a pattern together with an action to
// perform on the pattern's result. Create actions with Do or DoType.
type Action[In any] struct {
	try         func(In) bool
	description string
}

// Do creates a case for a match statement. If p matches, action is called with
// the result of p.
func Do[In, T any](p pattern.Pattern[In, T], action func(T)) Action[In] {
	fpmatch.AssertArgument(p.IsValid(), "match.Do", "pattern")
	fpmatch.AssertArgument(action != nil, "match.Do", "action")
	return Action[In]{
		try: func(input In) bool {
			r := p.Match(input)
			if !r.IsSuccessful() {
				return false
			}
			action(r.Value())
			return true
		},
		description: p.Description(),
	}
}

// DoType creates a statement case for inputs of dynamic type T.
func DoType[In, T any](action func(T)) Action[In] {
	return Do(pattern.Type[In, T](), action)
}

// --- Asynchronous cases ----------------------------------------------------

// AsyncCase is a case of an asynchronous match expression.
type AsyncCase[In, Out any] struct {
	try         func(context.Context, In) (Out, bool, error)
	description string
}

// OnAsync creates a case for an asynchronous match expression.
func OnAsync[In, T, Out any](p pattern.Async[In, T], handler func(context.Context, T) (Out, error)) AsyncCase[In, Out] {
	fpmatch.AssertArgument(p.IsValid(), "match.OnAsync", "pattern")
	fpmatch.AssertArgument(handler != nil, "match.OnAsync", "handler")
	return AsyncCase[In, Out]{
		try: func(ctx context.Context, input In) (Out, bool, error) {
			var none Out
			r, err := p.Match(ctx, input)
			if err != nil || !r.IsSuccessful() {
				return none, false, err
			}
			out, err := handler(ctx, r.Value())
			return out, true, err
		},
		description: p.Description(),
	}
}

// OnSync creates a case for an asynchronous match expression from a synchronous
// pattern and handler.
func OnSync[In, T, Out any](p pattern.Pattern[In, T], handler func(T) Out) AsyncCase[In, Out] {
	fpmatch.AssertArgument(p.IsValid(), "match.OnSync", "pattern")
	fpmatch.AssertArgument(handler != nil, "match.OnSync", "handler")
	return OnAsync(p.AsAsync(), func(_ context.Context, x T) (Out, error) {
		return handler(x), nil
	})
}

// OnAsyncType creates an asynchronous case for inputs of dynamic type T.
func OnAsyncType[In, T, Out any](handler func(context.Context, T) (Out, error)) AsyncCase[In, Out] {
	return OnAsync(pattern.Type[In, T]().AsAsync(), handler)
}

// AsyncAction is a case of an asynchronous match statement.
type AsyncAction[In any] struct {
	try         func(context.Context, In) (bool, error)
	description string
}

// DoAsync creates a case for an asynchronous match statement.
func DoAsync[In, T any](p pattern.Async[In, T], action func(context.Context, T) error) AsyncAction[In] {
	fpmatch.AssertArgument(p.IsValid(), "match.DoAsync", "pattern")
	fpmatch.AssertArgument(action != nil, "match.DoAsync", "action")
	return AsyncAction[In]{
		try: func(ctx context.Context, input In) (bool, error) {
			r, err := p.Match(ctx, input)
			if err != nil || !r.IsSuccessful() {
				return false, err
			}
			return true, action(ctx, r.Value())
		},
		description: p.Description(),
	}
}

// DoSync creates a case for an asynchronous match statement from a synchronous
// pattern and action.
func DoSync[In, T any](p pattern.Pattern[In, T], action func(T)) AsyncAction[In] {
	fpmatch.AssertArgument(p.IsValid(), "match.DoSync", "pattern")
	fpmatch.AssertArgument(action != nil, "match.DoSync", "action")
	return DoAsync(p.AsAsync(), func(_ context.Context, x T) error {
		action(x)
		return nil
	})
}

// DoAsyncType creates an asynchronous statement case for inputs of dynamic type T.
func DoAsyncType[In, T any](action func(context.Context, T) error) AsyncAction[In] {
	return DoAsync(pattern.Type[In, T]().AsAsync(), action)
}

// --- Registered cases ------------------------------------------------------

// entry is a case as registered with a match, with its fallthrough flag resolved.
type entry[C any] struct {
	c            C
	fallsThrough bool
}

// appended returns a copy of entries with one more entry. entries is never
// written to, as it may be shared with other matches.
func appended[C any](entries []entry[C], c C, fallsThrough bool) []entry[C] {
	cp := make([]entry[C], len(entries), len(entries)+1)
	copy(cp, entries)
	return append(cp, entry[C]{c: c, fallsThrough: fallsThrough})
}
