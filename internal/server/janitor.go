package server

import (
	"context"
	"time"

	"github.com/vvka-141/linuxsim/pkg/linuxsim"
)

// Janitor periodically closes sessions that have been idle longer than
// the TTL.
type Janitor struct {
	store    *SessionStore
	ttl      time.Duration
	interval time.Duration
	logger   linuxsim.Logger
	now      func() time.Time
	done     chan struct{}
}

// NewJanitor creates a janitor that sweeps every interval. A zero
// interval sweeps at a quarter of ttl, but at least once a second.
func NewJanitor(store *SessionStore, ttl, interval time.Duration, logger linuxsim.Logger) *Janitor {
	if interval <= 0 {
		interval = ttl / 4
		if interval < time.Second {
			interval = time.Second
		}
	}
	return &Janitor{
		store:    store,
		ttl:      ttl,
		interval: interval,
		logger:   logger,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins the sweep loop in a background goroutine. It stops when
// ctx is cancelled.
func (j *Janitor) Start(ctx context.Context) {
	j.logger.Verbose("session janitor started (ttl=%s, interval=%s)", j.ttl, j.interval)

	go func() {
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				j.Sweep()
			case <-ctx.Done():
				j.logger.Verbose("session janitor stopping")
				close(j.done)
				return
			}
		}
	}()
}

// Wait blocks until the janitor has fully stopped.
func (j *Janitor) Wait() {
	<-j.done
}

// Sweep closes idle sessions once and returns how many it closed.
func (j *Janitor) Sweep() int {
	expired := j.store.Expire(j.now().Add(-j.ttl))
	for _, id := range expired {
		j.logger.Info("session %s expired", id)
	}
	return len(expired)
}
