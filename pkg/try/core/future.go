package core

import (
	"context"
	"runtime/debug"

	"github.com/ib-77/try3/pkg/try"
)

// Future is the pending result of a task started with Go.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Go schedules fn on s and returns its future right away. A panic in fn
// resolves the future with a *try.PanicError instead of crashing the
// worker.
func Go[T any](s Scheduler, fn func() (T, error)) *Future[T] {
	if s == nil {
		s = Goroutines()
	}

	f := &Future[T]{done: make(chan struct{})}
	s.Schedule(func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				f.err = &try.PanicError{Value: r, Stack: debug.Stack()}
			}
		}()
		f.value, f.err = fn()
	})
	return f
}

// Resolved returns a future that is already complete.
func Resolved[T any](value T, err error) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), value: value, err: err}
	close(f.done)
	return f
}

// Done is closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

func (f *Future[T]) Ready() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Await blocks until the result is available or ctx ends. Ending ctx only
// stops the wait; the task keeps running.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Result returns the result without blocking; ok is false while pending.
func (f *Future[T]) Result() (value T, err error, ok bool) {
	if !f.Ready() {
		return value, nil, false
	}
	return f.value, f.err, true
}
