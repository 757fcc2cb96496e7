package match

import (
	"context"
	"errors"
	"testing"

	"github.com/npillmayer/fpmatch/pattern"
	"github.com/npillmayer/fpmatch/result"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errLookup = errors.New("lookup failed")

// known is an asynchronous pattern looking up a name in a user table.
func known(users map[string]int) pattern.Async[string, int] {
	return pattern.NewAsync(func(ctx context.Context, name string) (result.Result[int], error) {
		if err := ctx.Err(); err != nil {
			return result.Failure[int](), err
		}
		if name == "broken" {
			return result.Failure[int](), errLookup
		}
		id, ok := users[name]
		return result.Of(id, ok), nil
	}).WithDescription("known user")
}

func TestAsyncExpression(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.match")
	defer teardown()
	//
	ctx := context.Background()
	m := CreateAsync[string, string]().
		Case(OnAsync(known(map[string]int{"alice": 1}), func(_ context.Context, id int) (string, error) {
			return "user", nil
		})).
		Case(OnSync(pattern.EqualTo("root"), func(string) string { return "admin" }))
	s, err := m.ExecuteAsync(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "user", s)
	s, err = m.ToFunction()(ctx, "root")
	require.NoError(t, err)
	assert.Equal(t, "admin", s)
	_, err = m.ExecuteAsync(ctx, "bob")
	assert.ErrorIs(t, err, ErrNoMatch)
	r, err := m.ExecuteNonStrictAsync(ctx, "bob")
	require.NoError(t, err)
	assert.False(t, r.IsSuccessful())
	assert.Equal(t, 2, m.Len())
}

func TestAsyncExpressionErrorAborts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.match")
	defer teardown()
	//
	ctx := context.Background()
	tested := false
	m := CreateAsync[string, string]().
		Case(OnAsync(known(nil), func(context.Context, int) (string, error) { return "user", nil })).
		Case(OnSync(pattern.Predicate(func(string) bool { tested = true; return true }),
			func(string) string { return "any" }))
	_, err := m.ExecuteAsync(ctx, "broken")
	assert.ErrorIs(t, err, errLookup)
	assert.False(t, errors.Is(err, ErrNoMatch))
	assert.False(t, tested, "cases after an error must not be tested")
	//
	failing := CreateAsync[int, int]().
		Case(OnAsyncType[int](func(context.Context, int) (int, error) { return 0, errLookup }))
	_, err = failing.ExecuteNonStrictAsync(ctx, 1)
	assert.ErrorIs(t, err, errLookup)
}

func TestAsyncExpressionCancelled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.match")
	defer teardown()
	//
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := CreateAsync[string, int]().
		Case(OnAsync(known(map[string]int{"alice": 1}), func(_ context.Context, id int) (int, error) {
			return id, nil
		}))
	_, err := m.ExecuteAsync(ctx, "alice")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAsyncExpressionFallthrough(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.match")
	defer teardown()
	//
	ctx := context.Background()
	calls := 0
	m := CreateAsync[int, int](FallthroughByDefault(true)).
		Case(OnSync(pattern.GreaterThan(0), func(n int) int { calls++; return n })).
		Case(OnSync(isEven, func(n int) int { calls++; return n / 2 })).
		CaseFallthrough(false, OnSync(pattern.Any[int](), func(n int) int { calls++; return -n })).
		Case(OnSync(pattern.Any[int](), func(n int) int { calls++; return 0 }))
	assert.True(t, m.FallthroughByDefault())
	seq := m.ExecuteWithFallthroughAsync(ctx, 4)
	assert.Equal(t, 0, calls)
	var results []int
	for n, err := range seq {
		require.NoError(t, err)
		results = append(results, n)
	}
	assert.Equal(t, []int{4, 2, -4}, results)
	assert.Equal(t, 3, calls)
}

func TestAsyncExpressionFallthroughError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.match")
	defer teardown()
	//
	ctx := context.Background()
	m := CreateAsync[string, string](FallthroughByDefault(true)).
		Case(OnSync(pattern.Any[string](), func(s string) string { return s })).
		Case(OnAsync(known(nil), func(context.Context, int) (string, error) { return "user", nil })).
		Case(OnSync(pattern.Any[string](), func(s string) string { return "never" }))
	var results []string
	var errs []error
	for s, err := range m.ToFunctionWithFallthrough()(ctx, "broken") {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		results = append(results, s)
	}
	assert.Equal(t, []string{"broken"}, results)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], errLookup)
	//
	none := CreateAsync[string, string]().
		Case(OnSync(pattern.EqualTo("x"), func(s string) string { return s }))
	errs = nil
	for _, err := range none.ExecuteWithFallthroughAsync(ctx, "y") {
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrNoMatch)
	n := 0
	for range none.ToNonStrictFunctionWithFallthrough()(ctx, "y") {
		n++
	}
	assert.Equal(t, 0, n)
}

func TestAsyncStatement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.match")
	defer teardown()
	//
	ctx := context.Background()
	var log []string
	s := CreateAsyncStatement[string]().
		Case(DoAsync(known(map[string]int{"alice": 1}), func(_ context.Context, id int) error {
			log = append(log, "user")
			return nil
		})).
		Case(DoSync(pattern.EqualTo("root"), func(string) { log = append(log, "admin") }))
	require.NoError(t, s.ExecuteAsync(ctx, "alice"))
	require.NoError(t, s.ToFunction()(ctx, "root"))
	assert.Equal(t, []string{"user", "admin"}, log)
	assert.ErrorIs(t, s.ExecuteAsync(ctx, "bob"), ErrNoMatch)
	ok, err := s.ToNonStrictFunction()(ctx, "bob")
	require.NoError(t, err)
	assert.False(t, ok)
	_, err = s.ExecuteNonStrictAsync(ctx, "broken")
	assert.ErrorIs(t, err, errLookup)
}

func TestAsyncStatementFallthrough(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.match")
	defer teardown()
	//
	ctx := context.Background()
	count := 0
	inc := func(context.Context, int) error { count++; return nil }
	fail := func(context.Context, int) error { count++; return errLookup }
	s := CreateAsyncStatement[int]().Fallthrough(true).
		Case(DoAsyncType[int](inc)).
		Case(DoAsyncType[int](inc))
	assert.True(t, s.FallthroughByDefault())
	n, err := s.ExecuteWithFallthroughAsync(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	//
	s = s.Case(DoAsyncType[int](fail)).Case(DoAsyncType[int](inc))
	count = 0
	n, err = s.ToNonStrictFunctionWithFallthrough()(ctx, 1)
	assert.ErrorIs(t, err, errLookup)
	assert.Equal(t, 3, n, "an action returning an error counts as performed")
	assert.Equal(t, 3, count)
	//
	empty := CreateAsyncStatement[int]()
	n, err = empty.ToFunctionWithFallthrough()(ctx, 1)
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestAsyncDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.match")
	defer teardown()
	//
	m := CreateAsync[string, int]().
		Case(OnAsync(known(nil), func(_ context.Context, id int) (int, error) { return id, nil }))
	d := m.Dump()
	t.Logf("\n%s", d)
	assert.Contains(t, d, "AsyncExpression[string, int]")
	assert.Contains(t, d, "case 0: known user")
	s := CreateAsyncStatement[string]().Case(DoSync(pattern.EqualTo("x"), func(string) {}))
	assert.Contains(t, s.Dump(), "case 0: x = x")
}
