package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// OrderRefreshJob keeps the board current by re-fetching the order lists on
// a fixed interval. The first refresh runs immediately on start so screens
// never open on an empty board.
type OrderRefreshJob struct {
	refresher *Refresher
	interval  time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOrderRefreshJob creates the refresh job. The interval is typically a
// minute; anything shorter mostly burns battery on a mobile device.
func NewOrderRefreshJob(refresher *Refresher, interval time.Duration, logger *slog.Logger) *OrderRefreshJob {
	return &OrderRefreshJob{
		refresher: refresher,
		interval:  interval,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "order_refresh_job"),
	}
}

// Start performs one immediate refresh and schedules the periodic ones.
func (j *OrderRefreshJob) Start() error {
	_, err := j.cron.AddFunc(fmt.Sprintf("@every %s", j.interval), func() {
		j.refresher.RefreshNow(context.Background())
	})
	if err != nil {
		return err
	}

	j.refresher.RefreshNow(context.Background())

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order refresh job started", "interval", j.interval.String())
	return nil
}

// Stop stops the order refresh job.
func (j *OrderRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order refresh job stopped")
}
