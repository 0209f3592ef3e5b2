package scheduler

import (
	"context"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/people-registry/internal/domain/port/core"
	"github.com/amirhossein-jamali/people-registry/internal/domain/usecase/maintenance"
	"github.com/amirhossein-jamali/people-registry/internal/infrastructure/metrics"
)

// Job is the unit of work the scheduler drives on every tick
type Job interface {
	Run(ctx context.Context) (*maintenance.SweepResult, error)
}

// Scheduler invokes the maintenance job on a fixed interval. Runs happen on
// a single goroutine, so a tick never overlaps the previous run; they do run
// concurrently with HTTP request handling.
type Scheduler struct {
	job      Job
	interval time.Duration
	logger   coreport.Logger

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// New creates a scheduler that runs the job every interval
func New(job Job, interval time.Duration, logger coreport.Logger) *Scheduler {
	return &Scheduler{
		job:      job,
		interval: interval,
		logger:   logger,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start launches the tick loop. It returns immediately; the loop ends when
// Stop is called or the context is canceled.
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting maintenance scheduler", map[string]any{
		"interval": s.interval.String(),
	})

	go func() {
		defer close(s.doneCh)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.runOnce(ctx)
			case <-ctx.Done():
				s.logger.Info("Maintenance scheduler context canceled", nil)
				return
			case <-s.stopCh:
				return
			}
		}
	}()
}

// runOnce executes a single sweep and records its outcome
func (s *Scheduler) runOnce(ctx context.Context) {
	result, err := s.job.Run(ctx)
	if err != nil {
		metrics.SweepsTotal.WithLabelValues("failure").Inc()
		s.logger.Error("Maintenance sweep failed", map[string]any{
			"error": err.Error(),
		})
		return
	}

	metrics.SweepsTotal.WithLabelValues("success").Inc()
	metrics.PointsGrantedTotal.Add(float64(result.PointsGranted))
	metrics.LockedRecords.Set(float64(result.Locked))
}

// Stop ends the tick loop and waits for an in-flight run to finish
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
	<-s.doneCh
	s.logger.Info("Maintenance scheduler stopped", nil)
}
