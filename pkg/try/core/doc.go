// Package core contains the asynchronous plumbing behind ExecuteAsync:
// schedulers that decide where a task runs, the Future that carries its
// result back, and scheduler configuration via context. It holds no
// dispatch logic of its own.
package core
