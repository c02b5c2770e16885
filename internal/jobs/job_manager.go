package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"lastmile/internal/core/application/usecases/commands"
	"lastmile/internal/core/domain/model/actor"
)

// Intervals carries the polling cadence for the scheduled jobs.
type Intervals struct {
	OrderRefresh time.Duration
	LocationPush time.Duration
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderRefreshJob *OrderRefreshJob
	locationPushJob *LocationPushJob
}

// NewJobManager creates a job manager for the acting identity. Stores get
// the refresh job only; couriers additionally get the location push job.
func NewJobManager(
	refresher *Refresher,
	pushLocationHandler commands.PushLocationCommandHandler,
	identity *actor.Actor,
	intervals Intervals,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{
		orderRefreshJob: NewOrderRefreshJob(refresher, intervals.OrderRefresh, logger),
	}
	if identity.Role() == actor.RoleCourier {
		jm.locationPushJob = NewLocationPushJob(pushLocationHandler, identity, intervals.LocationPush, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start order refresh job: %w", err)
	}

	if jm.locationPushJob != nil {
		if err := jm.locationPushJob.Start(); err != nil {
			// Stop already started jobs if this one fails
			jm.orderRefreshJob.Stop()
			return fmt.Errorf("failed to start location push job: %w", err)
		}
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.locationPushJob != nil {
		jm.locationPushJob.Stop()
	}
	jm.orderRefreshJob.Stop()
}
