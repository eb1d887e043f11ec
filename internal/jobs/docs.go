// Package jobs provides scheduled background tasks for the canteen service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order processing.
//
// # Available Jobs
//
// 1. OrderPromotionJob - Runs every second to move pending orders whose
// checkout window expired into the kitchen queue
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(promoteOrdersHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The promotion job uses the cron expression "* * * * * *" which means it
// runs every second, keeping checkout-window expiry close to real time.
//
// # Error Handling
//
// - An empty promotion pass is a successful no-op and is not logged
// - Failures are logged and retried on the next tick
package jobs
