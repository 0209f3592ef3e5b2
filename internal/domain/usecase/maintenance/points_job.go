package maintenance

import (
	"context"
	"math/rand/v2"

	errs "github.com/amirhossein-jamali/people-registry/internal/domain/error"
	coreport "github.com/amirhossein-jamali/people-registry/internal/domain/port/core"
	lockport "github.com/amirhossein-jamali/people-registry/internal/domain/port/lock"
	"github.com/amirhossein-jamali/people-registry/internal/domain/port/persistence"
)

// SweepResult summarizes a single run of the points sweep
type SweepResult struct {
	Locked        int   // ids returned by the lock registry
	Granted       int   // records that received a bonus
	Skipped       int   // records that disappeared mid-sweep
	Failed        int   // records whose write failed
	PointsGranted int64 // total points handed out
}

// PointsJob grants a random point bonus to every currently-locked record.
// Locked ids are exactly the recently-created ones, so the sweep acts as an
// onboarding bonus for new arrivals while they are otherwise immutable.
type PointsJob struct {
	personRepo   persistence.PersonRepository
	lockRegistry lockport.Registry
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	minIncrement int64
	maxIncrement int64

	// randInt returns a value in [0, n); swappable in tests
	randInt func(n int64) int64
}

// NewPointsJob creates a new points sweep over the given stores. The bonus
// for each record is drawn uniformly from [minIncrement, maxIncrement].
func NewPointsJob(
	personRepo persistence.PersonRepository,
	lockRegistry lockport.Registry,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	minIncrement, maxIncrement int64,
) *PointsJob {
	if minIncrement < 1 {
		minIncrement = 1
	}
	if maxIncrement < minIncrement {
		maxIncrement = minIncrement
	}
	return &PointsJob{
		personRepo:   personRepo,
		lockRegistry: lockRegistry,
		timeProvider: timeProvider,
		logger:       logger,
		minIncrement: minIncrement,
		maxIncrement: maxIncrement,
		randInt:      rand.Int64N,
	}
}

// Run performs one sweep. Each record is read, incremented and written back
// individually, so a failure on one id never aborts the rest of the batch.
// Only a lock registry failure makes the whole run fail: without the locked
// id set there is nothing to sweep.
func (j *PointsJob) Run(ctx context.Context) (*SweepResult, error) {
	started := j.timeProvider.Now()

	ids, err := j.lockRegistry.LockedIDs(ctx)
	if err != nil {
		j.logger.Error("Failed to list locked ids", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	result := &SweepResult{Locked: len(ids)}

	if len(ids) == 0 {
		j.logger.Info("No recently created persons, nothing to sweep", nil)
		return result, nil
	}

	for _, id := range ids {
		increment := j.minIncrement + j.randInt(j.maxIncrement-j.minIncrement+1)

		person, err := j.personRepo.GetByID(ctx, id)
		if err != nil {
			if errs.IsNotFoundError(err) {
				// Deleted between listing and read; skip and move on.
				j.logger.Warn("Locked person no longer exists, skipping", map[string]any{
					"personId": id,
				})
				result.Skipped++
				continue
			}
			j.logger.Error("Failed to read person during sweep", map[string]any{
				"personId": id,
				"error":    err.Error(),
			})
			result.Failed++
			continue
		}

		newPoints := person.Points + increment
		if err := j.personRepo.UpdatePoints(ctx, id, newPoints); err != nil {
			if errs.IsNotFoundError(err) {
				result.Skipped++
				continue
			}
			j.logger.Error("Failed to write points during sweep", map[string]any{
				"personId": id,
				"error":    err.Error(),
			})
			result.Failed++
			continue
		}

		result.Granted++
		result.PointsGranted += increment

		j.logger.Info("Points granted", map[string]any{
			"personId":  id,
			"increment": increment,
			"points":    newPoints,
		})
	}

	j.logger.Info("Points sweep finished", map[string]any{
		"locked":      result.Locked,
		"granted":     result.Granted,
		"skipped":     result.Skipped,
		"failed":      result.Failed,
		"duration_ms": j.timeProvider.Since(started).Milliseconds(),
	})

	return result, nil
}
