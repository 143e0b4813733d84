package cycle

import (
	"context"
	"time"
)

// Run drives the active cycle of m without a UI. Every interval it ticks the
// manager and calls onTick from the calling goroutine, so m has a single
// writer. When ctx is done the cycle is interrupted and returned.
//
// Run returns false when no cycle is active.
func Run(ctx context.Context, m *Manager, interval time.Duration, onTick func(*Manager)) (Cycle, bool) {
	if !m.HasActiveCycle() {
		return Cycle{}, false
	}

	ticks := make(chan struct{}, 1)
	t := StartTicker(ctx, interval, func(time.Time) {
		select {
		case ticks <- struct{}{}:
		default:
		}
	})
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			t.Stop()
			return m.Interrupt()
		case <-ticks:
			m.Tick()
			if onTick != nil {
				onTick(m)
			}
		}
	}
}
