package queue

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// sweepState tracks sweep metrics (thread-safe).
type sweepState struct {
	mu                sync.Mutex
	lastRecoverySweep time.Time
	messagesRecovered int
}

// runRecoverySweep periodically returns stuck processing messages to
// pending once their visibility timeout has elapsed.
func (p *WorkerPool) runRecoverySweep(ctx context.Context) {
	ticker := time.NewTicker(p.config.RecoveryInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			n, err := p.svc.ResetStuck(ctx, p.config.VisibilityTimeout)
			if err != nil {
				slog.Error("Recovery sweep failed", "error", err)
				continue
			}
			if n > 0 {
				slog.Warn("Recovered stuck messages", "count", n)
			}
			p.sweeps.mu.Lock()
			p.sweeps.lastRecoverySweep = time.Now()
			p.sweeps.messagesRecovered += n
			p.sweeps.mu.Unlock()
		}
	}
}

// runRetentionSweep periodically deletes terminal messages past the
// retention window.
func (p *WorkerPool) runRetentionSweep(ctx context.Context) {
	ticker := time.NewTicker(p.config.RetentionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			n, err := p.svc.PurgeTerminal(ctx, p.config.CompletedRetention)
			if err != nil {
				slog.Error("Retention sweep failed", "error", err)
				continue
			}
			if n > 0 {
				slog.Info("Purged terminal messages", "count", n)
			}
		}
	}
}

// RecoverStartupBacklog runs one recovery pass before workers start, so
// messages stranded by a crashed pod become claimable immediately
// instead of after the first ticker interval.
func RecoverStartupBacklog(ctx context.Context, svc *Service, visibilityTimeout time.Duration) error {
	n, err := svc.ResetStuck(ctx, visibilityTimeout)
	if err != nil {
		return err
	}
	if n > 0 {
		slog.Warn("Recovered stuck messages from previous run", "count", n)
	}
	return nil
}
