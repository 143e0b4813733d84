package cycle

import (
	"context"
	"sync"
	"time"
)

// Ticker is a periodic callback bound to one active cycle. Acquire it with
// StartTicker when a cycle becomes active and Stop it when the cycle changes
// or the caller shuts down.
type Ticker struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// StartTicker calls fn every interval on its own goroutine until ctx is done
// or Stop is called.
func StartTicker(ctx context.Context, interval time.Duration, fn func(time.Time)) *Ticker {
	ctx, cancel := context.WithCancel(ctx)
	t := &Ticker{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(t.done)
		tk := time.NewTicker(interval)
		defer tk.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-tk.C:
				fn(now)
			}
		}
	}()
	return t
}

// Stop cancels the ticker and waits for its goroutine. Safe to call more than
// once and on a nil Ticker.
func (t *Ticker) Stop() {
	if t == nil {
		return
	}
	t.once.Do(t.cancel)
	<-t.done
}
