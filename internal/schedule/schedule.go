// Package schedule runs a function on a fixed interval until it is stopped.
package schedule

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrInvalidInterval is returned by Every for a non-positive interval.
var ErrInvalidInterval = errors.New("schedule: interval must be positive")

// Task is a recurring job started by Every.
type Task struct {
	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
}

// Every calls fn every interval, starting one interval from now, until Stop
// is called or ctx is cancelled. Calls never overlap: if fn runs longer than
// the interval, missed ticks are dropped rather than queued.
func Every(ctx context.Context, interval time.Duration, fn func()) (*Task, error) {
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}

	ctx, cancel := context.WithCancel(ctx)
	t := &Task{
		interval: interval,
		cancel:   cancel,
		done:     make(chan struct{}),
	}

	go t.run(ctx, fn)
	return t, nil
}

func (t *Task) run(ctx context.Context, fn func()) {
	defer close(t.done)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Stop may race with a pending tick; prefer stopping.
			if ctx.Err() != nil {
				return
			}
			fn()
		}
	}
}

// Interval returns the configured interval.
func (t *Task) Interval() time.Duration {
	return t.interval
}

// Stop cancels the task and waits for an in-flight call to finish. After Stop
// returns fn is not called again. Stop is safe to call more than once and
// from multiple goroutines, but not from inside fn.
func (t *Task) Stop() {
	t.stopOnce.Do(t.cancel)
	<-t.done
}

// Done is closed once the task has fully stopped.
func (t *Task) Done() <-chan struct{} {
	return t.done
}
