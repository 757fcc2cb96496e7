package pattern

import (
	"context"
	"errors"
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"github.com/npillmayer/fpmatch"
	"github.com/npillmayer/fpmatch/result"
)

// Cached returns a pattern which memoizes the results of p per (equal) input.
// The matcher of p is invoked at most once per distinct input for the lifetime of
// the returned pattern, even if the same new input is matched by concurrent
// goroutines: late-comers wait for the first evaluation to complete.
// If the matcher panics, the panic propagates and nothing is memoized for the input.
func Cached[In comparable, Out any](p Pattern[In, Out]) Pattern[In, Out] {
	assertValid(p, "pattern.Cached")
	return cached(p, &mapMemo[In, Out]{entries: make(map[In]*memoEntry[Out])})
}

// CachedWithCapacity is like Cached, but remembers the results for at most
// capacity inputs, evicting the least recently used ones. Evicted inputs will be
// evaluated again when they re-occur. capacity must be positive.
func CachedWithCapacity[In comparable, Out any](p Pattern[In, Out], capacity int) Pattern[In, Out] {
	assertValid(p, "pattern.CachedWithCapacity")
	fpmatch.AssertArgument(capacity > 0, "pattern.CachedWithCapacity", "capacity")
	return cached(p, newLRUMemo[In, Out](capacity))
}

func cached[In comparable, Out any](p Pattern[In, Out], store memoStore[In, Out]) Pattern[In, Out] {
	table := &memoTable[In, Out]{store: store}
	return Pattern[In, Out]{
		matcher: func(input In) result.Result[Out] {
			r, _ := table.do(context.Background(), input, func() (result.Result[Out], error) {
				return p.Match(input), nil
			})
			return r
		},
		description: p.description,
	}
}

// CachedAsync memoizes the results of an asynchronous pattern per input, with the
// same guarantees as Cached. Evaluations which return an error are reported to all
// goroutines waiting for them, but are not memoized. An evaluation ended by the
// cancellation of its caller's context is not reported to other callers: they
// evaluate the input again with their own context. A caller waiting for another
// caller's evaluation stops waiting when its own context is done.
func CachedAsync[In comparable, Out any](p Async[In, Out]) Async[In, Out] {
	assertValidAsync(p, "pattern.CachedAsync")
	table := &memoTable[In, Out]{store: &mapMemo[In, Out]{entries: make(map[In]*memoEntry[Out])}}
	return Async[In, Out]{
		matcher: func(ctx context.Context, input In) (result.Result[Out], error) {
			return table.do(ctx, input, func() (result.Result[Out], error) {
				return p.Match(ctx, input)
			})
		},
		description: p.description,
	}
}

// --- Memo tables -----------------------------------------------------------

// memoEntry holds the outcome of a single evaluation. done is closed as soon as
// the evaluation has finished, either normally (completed) or by panicking.
// An evaluation aborted because the evaluating caller's context is done is
// completed but abandoned.
type memoEntry[Out any] struct {
	done      chan struct{}
	res       result.Result[Out]
	err       error
	completed bool
	abandoned bool
}

// memoStore is a map of entries. Implementations are not required to be
// thread-safe; memoTable serializes access.
type memoStore[In comparable, Out any] interface {
	get(In) (*memoEntry[Out], bool)
	put(In, *memoEntry[Out])
	remove(In)
}

type memoTable[In comparable, Out any] struct {
	sync.Mutex
	store memoStore[In, Out]
}

// do returns the memoized outcome for input, calling eval if there is none. eval
// runs with ctx, the context of the caller which started the evaluation.
func (t *memoTable[In, Out]) do(ctx context.Context, input In, eval func() (result.Result[Out], error)) (result.Result[Out], error) {
	for {
		t.Lock()
		e, found := t.store.get(input)
		if !found {
			e = &memoEntry[Out]{done: make(chan struct{})}
			t.store.put(input, e)
			t.Unlock()
			tracer().Debugf("cached pattern: evaluating input %v", input)
			return t.evaluate(ctx, input, e, eval)
		}
		t.Unlock()
		select {
		case <-e.done:
		case <-ctx.Done():
			return result.Failure[Out](), ctx.Err()
		}
		if e.completed && !e.abandoned {
			return e.res, e.err
		}
		// the evaluating goroutine panicked or was cancelled; its entry has been dropped
	}
}

func (t *memoTable[In, Out]) evaluate(ctx context.Context, input In, e *memoEntry[Out],
	eval func() (result.Result[Out], error)) (result.Result[Out], error) {
	//
	defer func() {
		if !e.completed || e.err != nil {
			t.drop(input, e)
		}
		close(e.done)
	}()
	e.res, e.err = eval()
	e.abandoned = e.err != nil && ctx.Err() != nil && errors.Is(e.err, ctx.Err())
	e.completed = true
	return e.res, e.err
}

// drop removes e from the store, unless it has been replaced in the meantime.
func (t *memoTable[In, Out]) drop(input In, e *memoEntry[Out]) {
	t.Lock()
	defer t.Unlock()
	if current, found := t.store.get(input); found && current == e {
		t.store.remove(input)
	}
}

type mapMemo[In comparable, Out any] struct {
	entries map[In]*memoEntry[Out]
}

func (m *mapMemo[In, Out]) get(input In) (*memoEntry[Out], bool) {
	e, ok := m.entries[input]
	return e, ok
}

func (m *mapMemo[In, Out]) put(input In, e *memoEntry[Out]) {
	m.entries[input] = e
}

func (m *mapMemo[In, Out]) remove(input In) {
	delete(m.entries, input)
}

type lruMemo[In comparable, Out any] struct {
	cache    *lru.Cache
	removing bool // set while an entry is dropped explicitly
}

func newLRUMemo[In comparable, Out any](capacity int) *lruMemo[In, Out] {
	m := &lruMemo[In, Out]{}
	cache, err := lru.NewWithEvict(capacity, func(key, _ interface{}) {
		if !m.removing {
			tracer().Debugf("cached pattern: evicted least recently used input %v", key)
		}
	})
	if err != nil { // capacity has been checked
		panic(err)
	}
	m.cache = cache
	return m
}

func (m *lruMemo[In, Out]) get(input In) (*memoEntry[Out], bool) {
	v, ok := m.cache.Get(input)
	if !ok {
		return nil, false
	}
	return v.(*memoEntry[Out]), true
}

func (m *lruMemo[In, Out]) put(input In, e *memoEntry[Out]) {
	m.cache.Add(input, e)
}

func (m *lruMemo[In, Out]) remove(input In) {
	m.removing = true
	defer func() { m.removing = false }()
	m.cache.Remove(input)
}
