package attempt

import (
	"context"
	"runtime/debug"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/ib-77/try3/pkg/try"
	"github.com/ib-77/try3/pkg/try/clause"
	"github.com/ib-77/try3/pkg/try/core"
	"github.com/ib-77/try3/pkg/try/registry"
)

// Try is a try/catch/finally block: one operation, the clauses that catch its
// failures and an optional cleanup.
//
// Build it fully, then execute it any number of times. Every execution runs
// the operation again. Executions may run concurrently with each other but
// not with registration.
type Try[T any] struct {
	op       try.Operation[T]
	void     bool
	registry *registry.Registry
	cleanup  try.Action
	err      error
	opts     options
}

// Attempt starts a try block around op.
func Attempt[T any](op try.Operation[T], opts ...Option) *Try[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	t := &Try[T]{
		op:       op,
		registry: registry.New(),
		opts:     o,
	}
	if op == nil {
		t.err = try.ErrNilOperation
	}
	return t
}

// AttemptAction starts a try block around an action. Successful executions
// never carry a value.
func AttemptAction(action try.Action, opts ...Option) *Try[struct{}] {
	var op try.Operation[struct{}]
	if action != nil {
		op = func(ctx context.Context) (struct{}, error) {
			return struct{}{}, action(ctx)
		}
	}

	t := Attempt(op, opts...)
	t.void = true
	return t
}

// OnError catches every failure that no more specific clause catches.
func (t *Try[T]) OnError(h try.Handler) *Try[T] {
	return t.OnErrorKind(try.Root, h)
}

// OnErrorKind catches failures of kind and of its descendants.
func (t *Try[T]) OnErrorKind(kind *try.Kind, h try.Handler) *Try[T] {
	if t.err != nil {
		return t
	}
	c, err := clause.Single(kind, h)
	if err != nil {
		t.err = err
		return t
	}
	return t.OnClause(c)
}

// OnErrorKinds catches failures of any of kinds with one handler. The kinds
// must be pairwise unrelated.
func (t *Try[T]) OnErrorKinds(kinds []*try.Kind, h try.Handler) *Try[T] {
	if t.err != nil {
		return t
	}
	c, err := clause.Of(h, kinds...)
	if err != nil {
		t.err = err
		return t
	}
	return t.OnClause(c)
}

// OnClause registers a prebuilt clause.
//
// The first failed registration sticks: later registrations are skipped,
// Err reports it and every execution returns it without running anything.
func (t *Try[T]) OnClause(c try.Clause) *Try[T] {
	if t.err != nil {
		return t
	}
	if err := t.registry.Add(c); err != nil {
		t.err = err
	}
	return t
}

// OnCleanup sets the action run after every execution, whatever the result.
// A later call replaces an earlier one; nil removes it.
func (t *Try[T]) OnCleanup(a try.Action) *Try[T] {
	t.cleanup = a
	return t
}

// Err returns the error that broke the build, if any.
func (t *Try[T]) Err() error {
	return t.err
}

// Clauses returns the registered clauses in registration order.
func (t *Try[T]) Clauses() []try.Clause {
	return t.registry.Clauses()
}

// Run executes the block and drops the value.
func (t *Try[T]) Run(ctx context.Context) error {
	_, err := t.Execute(ctx)
	return err
}

// Execute runs the operation, dispatches a failure to the most specific
// matching clause and then runs the cleanup.
//
// The returned error is nil for a success or a handled failure. An
// unhandled failure, or the error of a failing handler, is returned as is.
// If the cleanup fails too, both are returned combined with
// multierr, the earlier failure first.
func (t *Try[T]) Execute(ctx context.Context) (out try.Outcome[T], err error) {
	if t.err != nil {
		return try.UnhandledFailure[T](t.err), t.err
	}

	if t.cleanup != nil {
		defer func() {
			out, err = t.finally(ctx, out, err)
		}()
	}

	value, opErr := t.invoke(ctx)
	if opErr == nil {
		if t.void {
			return try.Empty[T](), nil
		}
		return try.Success(value), nil
	}

	return t.dispatch(ctx, opErr)
}

// ExecuteAsync schedules Execute and returns at once. The scheduler comes
// from WithScheduler, then from ctx (see core.SchedulerFrom), then one
// goroutine per call.
func (t *Try[T]) ExecuteAsync(ctx context.Context) *core.Future[try.Outcome[T]] {
	if t.err != nil {
		return core.Resolved(try.UnhandledFailure[T](t.err), t.err)
	}

	s := t.opts.scheduler
	if s == nil {
		s = core.SchedulerFrom(ctx, core.Goroutines())
	}

	return core.Go(s, func() (try.Outcome[T], error) {
		return t.Execute(ctx)
	})
}

func (t *Try[T]) invoke(ctx context.Context) (value T, err error) {
	if t.opts.recover {
		defer func() {
			if r := recover(); r != nil {
				err = &try.PanicError{Value: r, Stack: debug.Stack()}
			}
		}()
	}
	return t.op(ctx)
}

func (t *Try[T]) dispatch(ctx context.Context, failure error) (try.Outcome[T], error) {
	kind := try.KindOf(failure)

	c, found := t.registry.Find(kind)
	if !found {
		t.opts.logger.Warn("unhandled failure",
			zap.Stringer("kind", kind),
			zap.Error(failure))
		return try.UnhandledFailure[T](failure), failure
	}

	t.opts.logger.Debug("dispatching failure",
		zap.Stringer("kind", kind),
		zap.String("clause", kindNames(c.Kinds())))

	if herr := c.Handler()(ctx, failure); herr != nil {
		t.opts.logger.Warn("handler failed",
			zap.Stringer("kind", kind),
			zap.Error(herr),
			zap.NamedError("handled", failure))
		return try.UnhandledFailure[T](herr), herr
	}

	return try.HandledFailure[T](failure), nil
}

func (t *Try[T]) finally(ctx context.Context, out try.Outcome[T], err error) (try.Outcome[T], error) {
	cerr := t.cleanup(ctx)
	if cerr == nil {
		return out, err
	}

	if err == nil {
		t.opts.logger.Warn("cleanup failed", zap.Error(cerr))
		return try.UnhandledFailure[T](cerr), cerr
	}

	t.opts.logger.Warn("cleanup failed while a failure was propagating",
		zap.Error(cerr),
		zap.NamedError("primary", err))
	combined := multierr.Combine(err, cerr)
	return try.UnhandledFailure[T](combined), combined
}

func kindNames(kinds []*try.Kind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.Name()
	}
	return strings.Join(names, ",")
}
