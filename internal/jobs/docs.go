// Package jobs provides the scheduled background work that keeps the client
// converged with the server.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OrderRefreshJob - Periodically re-fetches the order lists into the board
// 2. LocationPushJob - Periodically publishes the courier's device position
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(refresher, pushLocationHandler, identity, intervals, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The refresh job runs on the order interval (60s by default) and performs
// one immediate refresh on start so screens never open empty. The location
// job runs on the location interval (10s by default) and only exists for
// couriers; a store's manager starts the refresh job alone.
//
// # Error Handling
//
// A failed tick is logged and the board keeps its previous content; the next
// tick retries. Stale responses are discarded by the board's sequence guard,
// not by the jobs.
package jobs
