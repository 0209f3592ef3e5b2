package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/people-registry/internal/domain/usecase/maintenance"
	"github.com/amirhossein-jamali/people-registry/internal/infrastructure/adapter/logger"
)

type countingJob struct {
	runs    atomic.Int64
	block   chan struct{}
	results chan struct{}
}

func (j *countingJob) Run(ctx context.Context) (*maintenance.SweepResult, error) {
	j.runs.Add(1)
	if j.block != nil {
		<-j.block
	}
	if j.results != nil {
		j.results <- struct{}{}
	}
	return &maintenance.SweepResult{}, nil
}

func TestScheduler_RunsJobOnInterval(t *testing.T) {
	job := &countingJob{results: make(chan struct{}, 16)}
	s := New(job, 10*time.Millisecond, logger.NewNoopLogger())

	s.Start(context.Background())

	// Wait for at least two ticks
	for i := 0; i < 2; i++ {
		select {
		case <-job.results:
		case <-time.After(time.Second):
			t.Fatal("timeout waiting for scheduled run")
		}
	}

	s.Stop()
	assert.GreaterOrEqual(t, job.runs.Load(), int64(2))
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	job := &countingJob{}
	s := New(job, time.Hour, logger.NewNoopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after context cancellation")
	}
	assert.Equal(t, int64(0), job.runs.Load())
}

func TestScheduler_RunsDoNotOverlap(t *testing.T) {
	job := &countingJob{block: make(chan struct{})}
	s := New(job, 5*time.Millisecond, logger.NewNoopLogger())

	s.Start(context.Background())

	// Let several ticks elapse while the first run is still blocked
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int64(1), job.runs.Load())

	close(job.block)
	s.Stop()
}
