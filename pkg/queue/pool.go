package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/docpipe/docpipe/pkg/config"
)

// WorkerPool runs workers for a set of named queues plus the recovery
// and retention sweeps. All pods run the sweeps independently; the
// underlying operations are idempotent.
type WorkerPool struct {
	podID    string
	svc      *Service
	config   *config.QueueConfig
	handlers map[string]Handler // queue -> handler
	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool

	// Sweep metrics
	sweeps sweepState
}

// NewWorkerPool creates a pool over the given queue/handler bindings.
func NewWorkerPool(podID string, svc *Service, cfg *config.QueueConfig, handlers map[string]Handler) *WorkerPool {
	return &WorkerPool{
		podID:    podID,
		svc:      svc,
		config:   cfg,
		handlers: handlers,
		stopCh:   make(chan struct{}),
	}
}

// Start spawns WorkersPerQueue workers for each bound queue and the
// background sweeps. It is safe to call multiple times; subsequent
// calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool",
		"pod_id", p.podID,
		"queues", len(p.handlers),
		"workers_per_queue", p.config.WorkersPerQueue)

	for queue, handler := range p.handlers {
		for i := 0; i < p.config.WorkersPerQueue; i++ {
			workerID := fmt.Sprintf("%s-%s-%d", p.podID, queue, i)
			worker := NewWorker(workerID, p.podID, queue, p.svc, p.config, handler)
			p.workers = append(p.workers, worker)
			worker.Start(ctx)
		}
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runRecoverySweep(ctx)
	}()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runRetentionSweep(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current messages before exiting.
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	p.sweeps.mu.Lock()
	lastSweep := p.sweeps.lastRecoverySweep
	recovered := p.sweeps.messagesRecovered
	p.sweeps.mu.Unlock()

	return &PoolHealth{
		IsHealthy:         len(p.workers) > 0,
		PodID:             p.podID,
		ActiveWorkers:     activeWorkers,
		TotalWorkers:      len(p.workers),
		WorkerStats:       workerStats,
		LastRecoverySweep: lastSweep,
		MessagesRecovered: recovered,
	}
}
