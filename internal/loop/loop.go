// Package loop runs shelf events one at a time on a single goroutine.
// Timers scheduled through the loop deliver their callbacks back onto it, so
// nothing that touches the page or the session ever runs concurrently.
package loop

import (
	"context"
	"errors"
	"sync/atomic"
	"time"
)

// ErrStopped is returned when work is submitted after Run has returned.
var ErrStopped = errors.New("event loop stopped")

// ErrRunning is returned by a second call to Run.
var ErrRunning = errors.New("event loop already running")

type Loop struct {
	tasks   chan func()
	done    chan struct{}
	running atomic.Bool
}

func New() *Loop {
	return &Loop{
		tasks: make(chan func()),
		done:  make(chan struct{}),
	}
}

// Run processes tasks until ctx is cancelled. It returns nil on cancellation.
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	defer close(l.done)
	for {
		select {
		case <-ctx.Done():
			return nil
		case fn := <-l.tasks:
			fn()
		}
	}
}

// Done is closed once Run has returned.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Do runs fn on the loop and waits for it to finish. A panic inside fn is
// re-raised on the calling goroutine.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	var panicked any
	task := func() {
		defer func() {
			panicked = recover()
			close(finished)
		}()
		fn()
	}

	select {
	case l.tasks <- task:
	case <-l.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	// Once accepted the task always runs to completion.
	<-finished
	if panicked != nil {
		panic(panicked)
	}
	return nil
}

// Post queues fn without waiting for it. It reports false if the loop has
// stopped.
func (l *Loop) Post(fn func()) bool {
	select {
	case l.tasks <- fn:
		return true
	case <-l.done:
		return false
	}
}

// AfterFunc runs fn on the loop after d. Calling cancel from the loop
// guarantees fn will not run, even if the timer already fired.
func (l *Loop) AfterFunc(d time.Duration, fn func()) (cancel func()) {
	var cancelled atomic.Bool
	t := time.AfterFunc(d, func() {
		l.Post(func() {
			if !cancelled.Load() {
				fn()
			}
		})
	})
	return func() {
		cancelled.Store(true)
		t.Stop()
	}
}
