package core

import "context"

type OptionKey string

const (
	SchedulerOptionKey OptionKey = "scheduler_options"
	WorkerOptionKey    OptionKey = "worker_options"
)

type MaxLimitOption struct {
	Value int
}
type WorkerOptions struct {
	MaxCount MaxLimitOption
	limited  Scheduler
}

type SchedulerOptions struct {
	Scheduler Scheduler
}

// WithScheduler makes s the scheduler for asynchronous executions started
// with ctx.
func WithScheduler(ctx context.Context, s Scheduler) context.Context {
	return context.WithValue(ctx, SchedulerOptionKey, SchedulerOptions{Scheduler: s})
}

// WithWorkerOptions caps asynchronous executions started with ctx, or any
// context derived from it, at maxWorkers running at once when no scheduler is
// set explicitly. All of them share one limit.
func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	options := WorkerOptions{MaxCount: MaxLimitOption{Value: maxWorkers}}
	if maxWorkers > 0 {
		options.limited = Limited(maxWorkers)
	}
	return context.WithValue(ctx, WorkerOptionKey, options)
}

func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok {
		return options.MaxCount.Value
	}
	return defaultMaxWorkers
}

// SchedulerFrom resolves the scheduler carried by ctx. An explicit scheduler
// wins, then a worker limit, then defaultScheduler.
func SchedulerFrom(ctx context.Context, defaultScheduler Scheduler) Scheduler {
	if options, ok := ctx.Value(SchedulerOptionKey).(SchedulerOptions); ok && options.Scheduler != nil {
		return options.Scheduler
	}
	if options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions); ok && options.limited != nil {
		return options.limited
	}
	return defaultScheduler
}
