package try

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Kind identifies a category of failure. Kinds form a single-rooted tree:
// every kind except Root has exactly one parent.
type Kind struct {
	name   string
	parent *Kind
}

// Root is the universal kind. Every failure is a Root.
var Root = &Kind{name: "Error"}

var (
	// Cancellation groups failures caused by a finished context.
	Cancellation = NewKind("Cancellation", nil)
	// Canceled is the kind of context.Canceled.
	Canceled = NewKind("Canceled", Cancellation)
	// DeadlineExceeded is the kind of context.DeadlineExceeded.
	DeadlineExceeded = NewKind("DeadlineExceeded", Cancellation)
	// Panic is the kind of a recovered panic, see PanicError.
	Panic = NewKind("Panic", nil)
)

// NewKind creates a kind below parent. A nil parent means Root.
func NewKind(name string, parent *Kind) *Kind {
	if parent == nil {
		parent = Root
	}
	return &Kind{name: name, parent: parent}
}

func (k *Kind) Name() string {
	return k.name
}

// Parent returns the direct parent, or nil for Root.
func (k *Kind) Parent() *Kind {
	return k.parent
}

// Ancestors returns k followed by its parents, most specific first.
// The last element is always Root.
func (k *Kind) Ancestors() []*Kind {
	chain := make([]*Kind, 0, 4)
	for cur := k; cur != nil; cur = cur.parent {
		chain = append(chain, cur)
	}
	return chain
}

// IsA reports whether other is k or one of k's ancestors.
func (k *Kind) IsA(other *Kind) bool {
	if k == nil || other == nil {
		return false
	}
	for cur := k; cur != nil; cur = cur.parent {
		if cur == other {
			return true
		}
	}
	return false
}

// String renders the full path, e.g. "Error/IO/Timeout".
func (k *Kind) String() string {
	if k == nil {
		return "<nil>"
	}
	chain := k.Ancestors()
	names := make([]string, len(chain))
	for i, a := range chain {
		names[len(chain)-1-i] = a.name
	}
	return strings.Join(names, "/")
}

// New returns an error of this kind.
func (k *Kind) New(msg string) *Error {
	return &Error{kind: k, msg: msg}
}

// Errorf returns an error of this kind with a formatted message. A %w verb
// keeps the wrapped error reachable through Unwrap.
func (k *Kind) Errorf(format string, args ...any) *Error {
	wrapped := fmt.Errorf(format, args...)
	return &Error{kind: k, msg: wrapped.Error(), cause: errors.Unwrap(wrapped)}
}

// Wrap tags err with this kind. Wrap(nil) returns nil.
func (k *Kind) Wrap(err error) error {
	if err == nil {
		return nil
	}
	return &Error{kind: k, msg: err.Error(), cause: err}
}

// Related reports whether one of a and b is an ancestor of the other.
// A kind is related to itself.
func Related(a, b *Kind) bool {
	return a.IsA(b) || b.IsA(a)
}

// Kinded is implemented by errors that know their own kind.
type Kinded interface {
	error
	Kind() *Kind
}

// KindOf classifies err. The outermost error in the chain that implements
// Kinded decides; context errors map to Canceled and DeadlineExceeded;
// everything else is Root. KindOf(nil) is nil.
func KindOf(err error) *Kind {
	if IsNil(err) {
		return nil
	}

	var kinded Kinded
	if errors.As(err, &kinded) {
		if k := kinded.Kind(); k != nil {
			return k
		}
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return DeadlineExceeded
	case errors.Is(err, context.Canceled):
		return Canceled
	}

	return Root
}

// Error is a failure tagged with a Kind.
type Error struct {
	kind  *Kind
	msg   string
	cause error
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Kind() *Kind {
	return e.kind
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches another *Error of the same kind. An empty target message
// matches any message, so Kind.New("") works as a kind sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.kind == e.kind && (t.msg == "" || t.msg == e.msg)
}
