package parallel

import (
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
)

// ErrWorkerPanic is wrapped by every PanicError.
var ErrWorkerPanic = errors.New("parallel: worker panicked")

// PanicError records a panic recovered from a worker goroutine.
type PanicError struct {
	// Worker is the index passed to Scope.Go.
	Worker int

	// Value is the value the worker panicked with.
	Value any

	// Stack is the worker's stack trace at the time of the panic.
	Stack []byte
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("parallel: worker %d panicked: %v", e.Worker, e.Value)
}

// Unwrap allows errors.Is(err, ErrWorkerPanic). If the worker panicked with
// an error value, that error is reachable as well.
func (e *PanicError) Unwrap() []error {
	if err, ok := e.Value.(error); ok {
		return []error{ErrWorkerPanic, err}
	}
	return []error{ErrWorkerPanic}
}

// Scope runs a fixed set of short-lived workers, one goroutine each, and
// joins them in Wait.
//
// A Scope is created per render and must not be reused after Wait. Unlike a
// long-lived pool there is no queue: Go starts the goroutine immediately.
//
// Thread safety: Go and Wait must be called from the owning goroutine.
type Scope struct {
	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// mu guards panics.
	mu     sync.Mutex
	panics []error
}

// Go starts fn on a new goroutine. id identifies the worker in a PanicError.
func (s *Scope) Go(id int, fn func()) {
	if fn == nil {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.recoverWorker(id)
		fn()
	}()
}

// recoverWorker converts a worker panic into a PanicError.
func (s *Scope) recoverWorker(id int) {
	v := recover()
	if v == nil {
		return
	}

	perr := &PanicError{Worker: id, Value: v, Stack: debug.Stack()}

	s.mu.Lock()
	s.panics = append(s.panics, perr)
	s.mu.Unlock()
}

// Wait blocks until every worker started with Go has returned.
// It returns nil if no worker panicked, otherwise all PanicErrors joined.
func (s *Scope) Wait() error {
	s.wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	return errors.Join(s.panics...)
}

// ForEachBand runs fn once per band, each on its own goroutine, and waits
// for all of them. It is the parallel-for construct used by the renderer.
func ForEachBand(bands []Band, fn func(b *Band)) error {
	var s Scope
	for i := range bands {
		b := &bands[i]
		s.Go(b.Index, func() { fn(b) })
	}
	return s.Wait()
}
