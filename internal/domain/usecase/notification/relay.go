package notification

import (
	"context"
	"sync"

	coreport "github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/core"
)

// DefaultRelayInterval is how often the relay re-drives unsent events
const DefaultRelayInterval = 30 * coreport.Second

// Relay periodically delivers outbox events the webhook path did not send,
// e.g. because the process stopped between commit and dispatch or the dispatcher was down
type Relay struct {
	notifier     *Notifier
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	interval     coreport.Duration

	mu      sync.Mutex
	stop    chan struct{}
	running bool
	wg      sync.WaitGroup
}

// NewRelay creates a new outbox relay
func NewRelay(notifier *Notifier, timeProvider coreport.TimeProvider, logger coreport.Logger, interval coreport.Duration) *Relay {
	if notifier == nil {
		panic("Relay notifier cannot be nil")
	}
	if interval <= 0 {
		interval = DefaultRelayInterval
	}
	return &Relay{
		notifier:     notifier,
		timeProvider: timeProvider,
		logger:       logger,
		interval:     interval,
	}
}

// Start launches the relay worker; calling it twice has no effect
func (r *Relay) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return
	}
	r.running = true
	r.stop = make(chan struct{})

	r.wg.Add(1)
	go r.run(ctx, r.stop)

	r.logger.Info("Notification relay started", map[string]any{
		"interval": r.interval.Std().String(),
	})
}

// RunOnce delivers one batch of pending events
func (r *Relay) RunOnce(ctx context.Context) int {
	sent, err := r.notifier.DispatchPending(ctx)
	if err != nil {
		r.logger.Error("Notification relay pass failed", map[string]any{
			"error": err.Error(),
		})
		return 0
	}
	if sent > 0 {
		r.logger.Info("Notification relay delivered events", map[string]any{
			"sent": sent,
		})
	}
	return sent
}

func (r *Relay) run(ctx context.Context, stop <-chan struct{}) {
	defer r.wg.Done()

	for {
		select {
		case <-stop:
			return
		case <-ctx.Done():
			return
		case <-r.timeProvider.After(r.interval):
			r.RunOnce(ctx)
		}
	}
}

// Shutdown stops the worker and waits for an in-flight pass to finish
func (r *Relay) Shutdown() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	close(r.stop)
	r.mu.Unlock()

	r.logger.Info("Shutting down notification relay", nil)
	r.wg.Wait()
	r.logger.Info("Notification relay shut down successfully", nil)
}
