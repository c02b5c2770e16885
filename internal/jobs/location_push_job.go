package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"lastmile/internal/core/application/usecases/commands"
	"lastmile/internal/core/domain/model/actor"
	"lastmile/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// LocationPushJob periodically publishes the courier's device position so
// the server can rank available orders by distance. Only couriers carry
// this job.
type LocationPushJob struct {
	handler  commands.PushLocationCommandHandler
	identity *actor.Actor
	interval time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewLocationPushJob creates the location push job for the acting courier.
func NewLocationPushJob(
	handler commands.PushLocationCommandHandler,
	identity *actor.Actor,
	interval time.Duration,
	logger *slog.Logger,
) *LocationPushJob {
	return &LocationPushJob{
		handler:  handler,
		identity: identity,
		interval: interval,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "location_push_job"),
	}
}

// Start schedules the periodic position pushes.
func (j *LocationPushJob) Start() error {
	_, err := j.cron.AddFunc(fmt.Sprintf("@every %s", j.interval), func() {
		ctx := context.Background()

		cmd, err := commands.NewPushLocationCommand(j.identity)
		if err != nil {
			j.logger.ErrorContext(ctx, "Location push skipped", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// A device without a GPS fix is routine; everything else is not.
			if errors.Is(err, errs.ErrNotAuthenticated) {
				j.logger.ErrorContext(ctx, "Location push failed", "error", err)
				return
			}
			j.logger.WarnContext(ctx, "Location push failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Location push job started", "interval", j.interval.String())
	return nil
}

// Stop stops the location push job.
func (j *LocationPushJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Location push job stopped")
}
