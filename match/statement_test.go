package match

import (
	"testing"

	"github.com/npillmayer/fpmatch/pattern"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatementFirstMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.match")
	defer teardown()
	//
	var log []string
	s := CreateStatement[int]().
		Case(Do(pattern.LessThan(0), func(int) { log = append(log, "negative") })).
		Case(Do(isEven, func(int) { log = append(log, "even") })).
		Case(Do(pattern.Any[int](), func(int) { log = append(log, "any") }))
	require.NoError(t, s.ExecuteOn(4))
	assert.Equal(t, []string{"even"}, log)
	log = nil
	assert.True(t, s.ExecuteNonStrict(-3))
	assert.Equal(t, []string{"negative"}, log)
	assert.Equal(t, 3, s.Len())
}

func TestStatementNoMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.match")
	defer teardown()
	//
	performed := false
	s := CreateStatement[string]().
		Case(Do(pattern.EqualTo("yes"), func(string) { performed = true }))
	err := s.ExecuteStrict("no")
	assert.ErrorIs(t, err, ErrNoMatch)
	assert.Equal(t, `match: no case matched input no`, err.Error())
	assert.False(t, s.ToNonStrictFunction()("no"))
	assert.False(t, performed)
	assert.NoError(t, s.ToFunction()("yes"))
	assert.True(t, performed)
}

func TestStatementFallthroughCount(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.match")
	defer teardown()
	//
	var log []string
	s := CreateStatement[int](FallthroughByDefault(true)).
		Case(Do(pattern.GreaterThan(0), func(int) { log = append(log, "positive") })).
		CaseFallthrough(false, Do(isEven, func(int) { log = append(log, "even") })).
		Case(Do(pattern.Any[int](), func(int) { log = append(log, "any") }))
	n, err := s.ExecuteWithFallthrough(4)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"positive", "even"}, log)
	log = nil
	assert.Equal(t, 2, s.ExecuteNonStrictWithFallthrough(3))
	assert.Equal(t, []string{"positive", "any"}, log)
	log = nil
	assert.Equal(t, 1, s.ToNonStrictFunctionWithFallthrough()(-1))
	assert.Equal(t, []string{"any"}, log)
}

func TestStatementFallthroughNoMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.match")
	defer teardown()
	//
	s := CreateStatement[int](FallthroughByDefault(true)).
		Case(Do(pattern.GreaterThan(100), func(int) {}))
	n, err := s.ToFunctionWithFallthrough()(1)
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, ErrNoMatch)
	assert.Equal(t, 0, s.ExecuteNonStrictWithFallthrough(1))
}

func TestStatementFallthroughSwitch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.match")
	defer teardown()
	//
	count := 0
	inc := func(int) { count++ }
	s := CreateStatement[int]().
		Case(Do(pattern.Any[int](), inc)).
		Fallthrough(true).
		Case(Do(pattern.Any[int](), inc)).
		Case(Do(pattern.Any[int](), inc))
	assert.True(t, s.FallthroughByDefault())
	// the first case was registered without fallthrough
	assert.Equal(t, 1, s.ExecuteNonStrictWithFallthrough(0))
	s = CreateStatement[int]().Fallthrough(true).
		Case(Do(pattern.Any[int](), inc)).
		Case(Do(pattern.Any[int](), inc)).
		Fallthrough(false)
	count = 0
	assert.Equal(t, 2, s.ExecuteNonStrictWithFallthrough(0), "changing the default must not affect registered cases")
	assert.Equal(t, 2, count)
}

func TestStatementDoType(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.match")
	defer teardown()
	//
	var total float64
	s := CreateStatement[shape]().
		Case(DoType[shape](func(c circle) { total += c.area() })).
		Case(DoType[shape](func(s square) { total += 10 * s.area() }))
	for _, sh := range []shape{circle{r: 1}, square{a: 1}, circle{r: 2}} {
		require.NoError(t, s.ExecuteOn(sh))
	}
	assert.Equal(t, 3.0+10.0+12.0, total)
}
