package match

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/npillmayer/fpmatch"
	"golang.org/x/sync/singleflight"
)

// CreateStatic returns a match expression built by build, which is called with an
// empty expression created with opts. build is called only once per call site of
// CreateStatic; subsequent calls return the cached expression, until the cache is
// cleared with ClearCache. Concurrent first calls from one call site share a single
// call of build.
func CreateStatic[In, Out any](build func(Expression[In, Out]) Expression[In, Out], opts ...Option) Expression[In, Out] {
	fpmatch.AssertArgument(build != nil, "match.CreateStatic", "build")
	return static(callSiteKey(1), func() Expression[In, Out] {
		return build(Create[In, Out](opts...))
	})
}

// CreateStaticWithKey is like CreateStatic, with an explicit key instead of the
// call site.
func CreateStaticWithKey[In, Out any](key string, build func(Expression[In, Out]) Expression[In, Out], opts ...Option) Expression[In, Out] {
	fpmatch.AssertArgument(build != nil, "match.CreateStaticWithKey", "build")
	return static(explicitKey(key, "match.CreateStaticWithKey"), func() Expression[In, Out] {
		return build(Create[In, Out](opts...))
	})
}

// ClearCache evicts all static match expressions of type Expression[In, Out].
func ClearCache[In, Out any]() {
	clearStatic[Expression[In, Out]]()
}

// CreateStaticStatement is the match statement version of CreateStatic.
func CreateStaticStatement[In any](build func(Statement[In]) Statement[In], opts ...Option) Statement[In] {
	fpmatch.AssertArgument(build != nil, "match.CreateStaticStatement", "build")
	return static(callSiteKey(1), func() Statement[In] {
		return build(CreateStatement[In](opts...))
	})
}

// CreateStaticStatementWithKey is the match statement version of CreateStaticWithKey.
func CreateStaticStatementWithKey[In any](key string, build func(Statement[In]) Statement[In], opts ...Option) Statement[In] {
	fpmatch.AssertArgument(build != nil, "match.CreateStaticStatementWithKey", "build")
	return static(explicitKey(key, "match.CreateStaticStatementWithKey"), func() Statement[In] {
		return build(CreateStatement[In](opts...))
	})
}

// ClearStatementCache evicts all static match statements of type Statement[In].
func ClearStatementCache[In any]() {
	clearStatic[Statement[In]]()
}

// CreateStaticAsync is the asynchronous version of CreateStatic.
func CreateStaticAsync[In, Out any](build func(AsyncExpression[In, Out]) AsyncExpression[In, Out], opts ...Option) AsyncExpression[In, Out] {
	fpmatch.AssertArgument(build != nil, "match.CreateStaticAsync", "build")
	return static(callSiteKey(1), func() AsyncExpression[In, Out] {
		return build(CreateAsync[In, Out](opts...))
	})
}

// CreateStaticAsyncWithKey is the asynchronous version of CreateStaticWithKey.
func CreateStaticAsyncWithKey[In, Out any](key string, build func(AsyncExpression[In, Out]) AsyncExpression[In, Out], opts ...Option) AsyncExpression[In, Out] {
	fpmatch.AssertArgument(build != nil, "match.CreateStaticAsyncWithKey", "build")
	return static(explicitKey(key, "match.CreateStaticAsyncWithKey"), func() AsyncExpression[In, Out] {
		return build(CreateAsync[In, Out](opts...))
	})
}

// ClearAsyncCache evicts all static match expressions of type AsyncExpression[In, Out].
func ClearAsyncCache[In, Out any]() {
	clearStatic[AsyncExpression[In, Out]]()
}

// CreateStaticAsyncStatement is the asynchronous version of CreateStaticStatement.
func CreateStaticAsyncStatement[In any](build func(AsyncStatement[In]) AsyncStatement[In], opts ...Option) AsyncStatement[In] {
	fpmatch.AssertArgument(build != nil, "match.CreateStaticAsyncStatement", "build")
	return static(callSiteKey(1), func() AsyncStatement[In] {
		return build(CreateAsyncStatement[In](opts...))
	})
}

// CreateStaticAsyncStatementWithKey is the asynchronous version of
// CreateStaticStatementWithKey.
func CreateStaticAsyncStatementWithKey[In any](key string, build func(AsyncStatement[In]) AsyncStatement[In], opts ...Option) AsyncStatement[In] {
	fpmatch.AssertArgument(build != nil, "match.CreateStaticAsyncStatementWithKey", "build")
	return static(explicitKey(key, "match.CreateStaticAsyncStatementWithKey"), func() AsyncStatement[In] {
		return build(CreateAsyncStatement[In](opts...))
	})
}

// ClearAsyncStatementCache evicts all static match statements of type AsyncStatement[In].
func ClearAsyncStatementCache[In any]() {
	clearStatic[AsyncStatement[In]]()
}

// --- Keys ------------------------------------------------------------------

// callSiteKey identifies the caller of the function calling callSiteKey, skip
// frames further up the stack.
func callSiteKey(skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		panic(errors.New("match: cannot determine call site of static match; use an explicit key"))
	}
	site := file + ":" + strconv.Itoa(line)
	return "site:" + strconv.FormatUint(xxhash.Sum64String(site), 16)
}

func explicitKey(key, op string) string {
	fpmatch.AssertArgument(key != "", op, "key")
	return "key:" + key
}

// --- Cache -----------------------------------------------------------------

// registry holds the static matches of all type signatures. A signature is the
// type of the cached match, e.g. Expression[int, string].
type registry struct {
	sync.Mutex
	signatures map[reflect.Type]*signature
	flights    singleflight.Group // builds in progress
}

type signature struct {
	id      int // distinguishes signatures in flight keys
	name    string
	entries map[string]any
}

// staticMatches is initialized before first use by package initialization.
var staticMatches = newRegistry()

func newRegistry() *registry {
	return &registry{signatures: make(map[reflect.Type]*signature)}
}

// signatureOf returns the signature of type M, creating it if necessary.
// The caller must hold the lock.
func (reg *registry) signatureOf(t reflect.Type) *signature {
	sig, ok := reg.signatures[t]
	if !ok {
		sig = &signature{
			id:      len(reg.signatures),
			name:    t.String(),
			entries: make(map[string]any),
		}
		reg.signatures[t] = sig
	}
	return sig
}

func (reg *registry) lookup(t reflect.Type, key string) (any, *signature, bool) {
	reg.Lock()
	defer reg.Unlock()
	sig := reg.signatureOf(t)
	m, ok := sig.entries[key]
	return m, sig, ok
}

func (reg *registry) store(t reflect.Type, key string, m any) {
	reg.Lock()
	defer reg.Unlock()
	reg.signatureOf(t).entries[key] = m
}

func (reg *registry) clear(t reflect.Type) int {
	reg.Lock()
	defer reg.Unlock()
	sig := reg.signatureOf(t)
	n := len(sig.entries)
	sig.entries = make(map[string]any)
	return n
}

// static returns the match of type M cached for key, calling build if there is
// none. The registry is not locked while build runs, therefore build may create
// static matches itself.
func static[M any](key string, build func() M) M {
	t := reflect.TypeOf((*M)(nil)).Elem()
	m, sig, ok := staticMatches.lookup(t, key)
	if ok {
		staticHitCounter.WithLabelValues(sig.name).Inc()
		return m.(M)
	}
	flight := fmt.Sprintf("%d/%s", sig.id, key)
	v, _, _ := staticMatches.flights.Do(flight, func() (any, error) {
		// another flight may have completed after our lookup
		if m, _, ok := staticMatches.lookup(t, key); ok {
			staticHitCounter.WithLabelValues(sig.name).Inc()
			return m, nil
		}
		tracer().Debugf("match: building static %s for %s", sig.name, key)
		built := build()
		staticMatches.store(t, key, built)
		staticBuildCounter.WithLabelValues(sig.name).Inc()
		return built, nil
	})
	return v.(M)
}

func clearStatic[M any]() {
	t := reflect.TypeOf((*M)(nil)).Elem()
	n := staticMatches.clear(t)
	tracer().Debugf("match: cleared %d static matches of type %v", n, t)
	staticEvictionCounter.WithLabelValues(t.String()).Add(float64(n))
}
