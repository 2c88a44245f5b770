// Package connectivity tracks whether the sync server is reachable.
// Field devices drop on and off the network constantly; the rest of the
// client asks this package instead of probing the server itself.
package connectivity

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

//go:generate moq -out prober_mock.go . Prober

// Prober checks server availability. api.Client satisfies this.
type Prober interface {
	Health(ctx context.Context) error
}

// Monitor polls the server health endpoint and reports reachability.
// Subscribers are notified on the offline-to-online edge only; staying
// online produces no events.
type Monitor struct {
	prober   Prober
	logger   *slog.Logger
	interval time.Duration

	mu     sync.Mutex
	online bool
	subs   []chan struct{}
}

// probeTimeout bounds a single health probe so a hung connection does
// not stall the monitor loop.
const probeTimeout = 5 * time.Second

// NewMonitor creates a monitor polling at the given interval.
// The monitor starts in the offline state until the first probe succeeds.
func NewMonitor(prober Prober, interval time.Duration, logger *slog.Logger) *Monitor {
	return &Monitor{
		prober:   prober,
		logger:   logger,
		interval: interval,
	}
}

// Online reports the result of the most recent probe
func (m *Monitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// Subscribe returns a channel that receives one value each time the
// monitor observes an offline-to-online transition. The channel is
// buffered; a subscriber that is not ready loses coalesced edges, not
// the fact that one happened.
func (m *Monitor) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	m.mu.Lock()
	m.subs = append(m.subs, ch)
	m.mu.Unlock()
	return ch
}

// Probe checks the server once, immediately. One-shot commands call
// this before acting; long-lived processes use Run instead.
func (m *Monitor) Probe(ctx context.Context) bool {
	m.probe(ctx)
	return m.Online()
}

// Run probes until ctx is cancelled. The first probe fires immediately
// so startup does not wait a full interval to learn the state.
func (m *Monitor) Run(ctx context.Context) {
	m.probe(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.probe(ctx)
		}
	}
}

func (m *Monitor) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	err := m.prober.Health(probeCtx)
	nowOnline := err == nil

	m.mu.Lock()
	wasOnline := m.online
	m.online = nowOnline
	var subs []chan struct{}
	if nowOnline && !wasOnline {
		subs = make([]chan struct{}, len(m.subs))
		copy(subs, m.subs)
	}
	m.mu.Unlock()

	if nowOnline == wasOnline {
		return
	}

	if nowOnline {
		m.logger.Info("Server reachable again")
		for _, ch := range subs {
			select {
			case ch <- struct{}{}:
			default:
			}
		}
	} else {
		m.logger.Warn("Server unreachable, working offline", "error", err)
	}
}
