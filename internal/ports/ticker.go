package ports

import (
	"sync"
	"time"
)

// Ticker is the periodic trigger that drives the countdown. The state
// machine itself is synchronous and replayable given a sequence of tick
// calls; the ticker is only the external once-per-second driver.
// This is a driving port.
type Ticker interface {
	// Start begins invoking fn once per interval until Stop is called.
	Start(fn func())

	// Stop cancels future invocations. Safe to call more than once.
	Stop()
}

// IntervalTicker implements Ticker over a time.Ticker.
type IntervalTicker struct {
	interval time.Duration
	mu       sync.Mutex
	done     chan struct{}
}

// NewSecondTicker returns a ticker firing once per second.
func NewSecondTicker() *IntervalTicker {
	return &IntervalTicker{interval: time.Second}
}

// Start begins firing fn on each interval. Calling Start on a running
// ticker restarts it.
func (t *IntervalTicker) Start(fn func()) {
	t.Stop()

	t.mu.Lock()
	done := make(chan struct{})
	t.done = done
	t.mu.Unlock()

	go func() {
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()
}

// Stop cancels the ticker.
func (t *IntervalTicker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done != nil {
		close(t.done)
		t.done = nil
	}
}
