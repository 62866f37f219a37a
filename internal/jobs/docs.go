// Package jobs provides scheduled background tasks for the shop.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the shop needs.
//
// # Available Jobs
//
// 1. DeliveryProgressJob - Runs every ten seconds to advance each placed
// order's shipment one step along READY -> IN_PROGRESS -> COMPLETE.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(advanceDeliveriesHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Job failures are logged and the next tick retries from the current
// database state; a delivery that failed to advance is picked up again.
package jobs
