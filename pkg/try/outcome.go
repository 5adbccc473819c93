package try

import (
	"time"

	"github.com/google/uuid"
)

// State is how one execution ended.
type State int

const (
	// Succeeded means the operation returned without error.
	Succeeded State = iota
	// Handled means the operation failed and a clause consumed the failure.
	Handled
	// Unhandled means a failure left the execution: no clause matched, or
	// the matching handler failed itself.
	Unhandled
)

func (s State) String() string {
	switch s {
	case Succeeded:
		return "succeeded"
	case Handled:
		return "handled"
	case Unhandled:
		return "unhandled"
	default:
		return "unknown"
	}
}

// Outcome is the record of one execution. Handlers never produce a value,
// so only a successful execution can carry one.
type Outcome[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	state     State
	hasValue  bool
}

// Success returns a successful outcome holding v. A nil pointer, map, slice,
// func, chan or interface counts as no value.
func Success[T any](v T) Outcome[T] {
	if IsNil(any(v)) {
		return Empty[T]()
	}
	return Outcome[T]{
		value:     v,
		state:     Succeeded,
		hasValue:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Empty returns a successful outcome without a value.
func Empty[T any]() Outcome[T] {
	return Outcome[T]{
		state:     Succeeded,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func HandledFailure[T any](err error) Outcome[T] {
	return Outcome[T]{
		err:       err,
		state:     Handled,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func UnhandledFailure[T any](err error) Outcome[T] {
	return Outcome[T]{
		err:       err,
		state:     Unhandled,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (o Outcome[T]) Value() T {
	return o.value
}

func (o Outcome[T]) HasValue() bool {
	return o.hasValue
}

func (o Outcome[T]) Get() (T, bool) {
	return o.value, o.hasValue
}

// OrElse returns the value, or def when there is none.
func (o Outcome[T]) OrElse(def T) T {
	if o.hasValue {
		return o.value
	}
	return def
}

func (o Outcome[T]) Err() error {
	return o.err
}

// Kind classifies Err, nil on success.
func (o Outcome[T]) Kind() *Kind {
	return KindOf(o.err)
}

func (o Outcome[T]) State() State {
	return o.state
}

func (o Outcome[T]) IsSuccess() bool {
	return o.state == Succeeded
}

func (o Outcome[T]) IsHandled() bool {
	return o.state == Handled
}

func (o Outcome[T]) IsUnhandled() bool {
	return o.state == Unhandled
}

// CreatedAt time creation (UTC)
func (o Outcome[T]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[T]) Id() uuid.UUID {
	return o.id
}
