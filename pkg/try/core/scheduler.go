package core

// Scheduler runs tasks off the calling goroutine. Schedule must not block
// the caller until the task finishes.
type Scheduler interface {
	Schedule(task func())
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(task func())

func (f SchedulerFunc) Schedule(task func()) {
	f(task)
}

type goroutines struct{}

// Goroutines starts one goroutine per task.
func Goroutines() Scheduler {
	return goroutines{}
}

func (goroutines) Schedule(task func()) {
	go task()
}

type limited struct {
	slots chan struct{}
}

// Limited runs at most lines tasks at once. Extra tasks wait for a free
// line on their own goroutine, so Schedule still returns immediately.
// lines below 1 is treated as 1.
func Limited(lines int) Scheduler {
	if lines < 1 {
		lines = 1
	}
	return &limited{slots: make(chan struct{}, lines)}
}

func (l *limited) Schedule(task func()) {
	go func() {
		l.slots <- struct{}{}
		defer func() { <-l.slots }()
		task()
	}()
}
