// Package attempt provides Try, a builder for structured try/catch/finally
// blocks over Go errors.
//
// A block is declared once and executed later:
//
//	t := attempt.Attempt(func(ctx context.Context) (int, error) {
//	    return load(ctx)
//	}).
//	    OnErrorKind(Timeout, func(ctx context.Context, err error) error {
//	        log.Print("timed out")
//	        return nil
//	    }).
//	    OnErrorKinds([]*try.Kind{Parse, Auth}, try.Consume(report)).
//	    OnError(try.Consume(alert)).
//	    OnCleanup(func(ctx context.Context) error { return conn.Close() })
//
//	out, err := t.Execute(ctx)
//
// Key operations:
// - Attempt/AttemptAction: start a block from an operation or an action
// - OnError/OnErrorKind/OnErrorKinds/OnClause: register clauses
// - OnCleanup: set the finally action
// - Run/Execute: execute synchronously
// - ExecuteAsync: execute on a scheduler and return a core.Future
//
// A failure goes to the clause covering the most specific kind in its
// ancestor chain, so a Timeout handler wins over an IO handler for a Timeout
// failure while the IO handler still catches every other IO failure.
// A failure no clause covers is returned unchanged. Handlers only observe:
// a handled execution never has a value.
package attempt
