package reactive

import (
	"context"
	"reflect"
	"sync"
)

// DepsFunc returns the current dependency values of an effect.
// An effect runs again only when one of them differs from the previous evaluation.
type DepsFunc func() []any

// RunFunc is one invocation of an effect.
type RunFunc func(ctx context.Context) error

// ErrorHandler receives errors returned by effect runs.
type ErrorHandler func(name string, err error)

// Effect re-runs a task whenever its dependencies change.
// Runs are launched in their own goroutine and are never cancelled, so
// two runs may overlap; callers that care must guard their own writes.
type Effect struct {
	name    string
	deps    DepsFunc
	run     RunFunc
	onError ErrorHandler

	mu      sync.Mutex
	last    []any
	primed  bool
	running sync.WaitGroup
}

// EffectOption configures an Effect.
type EffectOption func(*Effect)

// WithErrorHandler sets the handler for errors returned by runs.
func WithErrorHandler(h ErrorHandler) EffectOption {
	return func(e *Effect) { e.onError = h }
}

// NewEffect creates an effect; it does nothing until Trigger or Watch is called.
func NewEffect(name string, deps DepsFunc, run RunFunc, opts ...EffectOption) *Effect {
	e := &Effect{name: name, deps: deps, run: run}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name returns the effect name.
func (e *Effect) Name() string { return e.name }

// Trigger evaluates the dependencies and launches a run if they changed since
// the last evaluation (or if this is the first one). It reports whether a run was launched.
func (e *Effect) Trigger(ctx context.Context) bool {
	current := e.deps()

	e.mu.Lock()
	if e.primed && sameDeps(e.last, current) {
		e.mu.Unlock()
		return false
	}
	e.last = current
	e.primed = true
	e.running.Add(1)
	e.mu.Unlock()

	runCtx := context.WithoutCancel(ctx)
	go func() {
		defer e.running.Done()
		if err := e.run(runCtx); err != nil && e.onError != nil {
			e.onError(e.name, err)
		}
	}()
	return true
}

// Watch subscribes to sources, triggers once, then triggers on every
// notification until ctx is done. It waits for in-flight runs before returning.
func (e *Effect) Watch(ctx context.Context, sources ...Source) error {
	merged := make(chan struct{}, 1)
	var fanIn sync.WaitGroup
	stop := make(chan struct{})

	for _, src := range sources {
		ch, cancel := src.Subscribe()
		defer cancel()

		fanIn.Add(1)
		go func(ch <-chan struct{}) {
			defer fanIn.Done()
			for {
				select {
				case <-stop:
					return
				case <-ch:
					select {
					case merged <- struct{}{}:
					default:
					}
				}
			}
		}(ch)
	}

	e.Trigger(ctx)

	for {
		select {
		case <-ctx.Done():
			close(stop)
			fanIn.Wait()
			e.Wait()
			return ctx.Err()
		case <-merged:
			e.Trigger(ctx)
		}
	}
}

// Wait blocks until every launched run has returned.
func (e *Effect) Wait() {
	e.running.Wait()
}

func sameDeps(prev, next []any) bool {
	if len(prev) != len(next) {
		return false
	}
	for i := range prev {
		if !sameValue(prev[i], next[i]) {
			return false
		}
	}
	return true
}

// sameValue compares by identity for pointers and by value for scalars.
// Values that cannot be compared are always treated as changed. That includes
// structs whose interface fields hold a map or slice at runtime, where == panics.
func sameValue(a, b any) (same bool) {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}
