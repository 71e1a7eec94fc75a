package jsvalue

import (
	"context"
	"errors"
	"sync"
)

// ErrAborted is the terminal error of a Future whose view crashed or was
// destroyed before the worker produced a result.
var ErrAborted = errors.New("jsvalue: evaluation aborted")

// Future is an IOU for a script evaluation result. It resolves exactly once,
// either to a value or to a terminal error; repeated reads return the cached
// terminal outcome.
type Future struct {
	done chan struct{}

	once sync.Once
	val  Value
	err  error
}

// NewFuture returns a pending future plus its resolve and abort functions.
// Whichever of the two is called first wins; later calls are ignored.
func NewFuture() (f *Future, resolve func(Value), abort func(error)) {
	f = &Future{done: make(chan struct{})}
	resolve = func(v Value) {
		f.once.Do(func() {
			f.val = v
			close(f.done)
		})
	}
	abort = func(err error) {
		if err == nil {
			err = ErrAborted
		}
		f.once.Do(func() {
			f.err = err
			close(f.done)
		})
	}
	return f, resolve, abort
}

// Get blocks until the future reaches a terminal state or the context is
// cancelled. A cancelled context does not resolve the future; a later Get
// can still observe the terminal result.
func (f *Future) Get(ctx context.Context) (Value, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		return Undefined(), ctx.Err()
	}
}

// Ready reports whether the future has reached a terminal state.
func (f *Future) Ready() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Result returns the terminal outcome without blocking. The boolean is false
// while the future is still pending.
func (f *Future) Result() (Value, error, bool) {
	select {
	case <-f.done:
		return f.val, f.err, true
	default:
		return Undefined(), nil, false
	}
}
