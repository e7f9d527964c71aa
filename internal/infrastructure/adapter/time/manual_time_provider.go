package time

import (
	"context"
	"sync"
	"time"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/core"
)

// ManualTimeProvider is a clock that only moves when told to
type ManualTimeProvider struct {
	mu      sync.Mutex
	now     time.Time
	waiters []manualWaiter
}

type manualWaiter struct {
	at time.Time
	ch chan time.Time
}

// NewManualTimeProvider creates a clock frozen at start
func NewManualTimeProvider(start time.Time) *ManualTimeProvider {
	return &ManualTimeProvider{now: start}
}

// Now returns the frozen time
func (p *ManualTimeProvider) Now() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.now
}

// Since returns the manual time elapsed since t
func (p *ManualTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(p.Now().Sub(t))
}

// After fires once Advance moves the clock past d
func (p *ManualTimeProvider) After(d core.Duration) <-chan time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch := make(chan time.Time, 1)
	at := p.now.Add(d.Std())
	if d <= 0 {
		ch <- p.now
		return ch
	}
	p.waiters = append(p.waiters, manualWaiter{at: at, ch: ch})
	return ch
}

// WithTimeout only honours cancellation of the parent; manual time never expires a context
func (p *ManualTimeProvider) WithTimeout(ctx context.Context, _ core.Duration) (context.Context, context.CancelFunc) {
	return context.WithCancel(ctx)
}

// Advance moves the clock forward and fires due timers
func (p *ManualTimeProvider) Advance(d core.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.now = p.now.Add(d.Std())
	pending := p.waiters[:0]
	for _, waiter := range p.waiters {
		if waiter.at.After(p.now) {
			pending = append(pending, waiter)
			continue
		}
		waiter.ch <- p.now
	}
	p.waiters = pending
}
