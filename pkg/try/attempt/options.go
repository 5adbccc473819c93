package attempt

import (
	"go.uber.org/zap"

	"github.com/ib-77/try3/pkg/try/core"
)

type options struct {
	logger    *zap.Logger
	scheduler core.Scheduler
	recover   bool
}

// Option configures a Try.
type Option func(*options)

func defaultOptions() options {
	return options{
		logger: zap.NewNop(),
	}
}

// WithLogger logs dispatch decisions and suppressed cleanup failures.
// The default logger discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithScheduler sets where ExecuteAsync runs. It takes precedence over a
// scheduler carried by the context.
func WithScheduler(s core.Scheduler) Option {
	return func(o *options) {
		o.scheduler = s
	}
}

// WithRecover turns a panic in the operation into a *try.PanicError of kind
// try.Panic, which is then dispatched like any other failure.
func WithRecover() Option {
	return func(o *options) {
		o.recover = true
	}
}
