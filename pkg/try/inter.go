package try

import (
	"context"
	"errors"
)

// Operation is the body of a try block that yields a value.
type Operation[T any] func(ctx context.Context) (T, error)

// Action is a try block body, or a cleanup, that yields no value.
type Action func(ctx context.Context) error

// Handler consumes a failure. A non-nil return is a failure of the handler
// itself and propagates to the caller in place of the handled error.
type Handler func(ctx context.Context, err error) error

// Clause binds a set of kinds to one handler
type Clause interface {
	// Kinds returns the kinds this clause handles
	Kinds() []*Kind
	// Handler returns the handler invoked for any of Kinds
	Handler() Handler
}

// OutcomeProvider is the read side of an execution outcome
type OutcomeProvider[T any] interface {
	// Get returns the value and whether there is one
	Get() (T, bool)
	// State returns how the execution ended
	State() State
	// Err returns the handled or propagated failure, nil on success
	Err() error
}

// Consume adapts a handler that cannot fail.
func Consume(fn func(err error)) Handler {
	if fn == nil {
		return nil
	}
	return func(_ context.Context, err error) error {
		fn(err)
		return nil
	}
}

// As adapts a handler that wants a concrete error type. If the failure does
// not unwrap to E, fn is not called and the failure is returned unchanged.
func As[E error](fn func(ctx context.Context, err E) error) Handler {
	if fn == nil {
		return nil
	}
	return func(ctx context.Context, err error) error {
		var target E
		if !errors.As(err, &target) {
			return err
		}
		return fn(ctx, target)
	}
}
