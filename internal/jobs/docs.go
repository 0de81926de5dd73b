// Package jobs provides scheduled background tasks for the pickup service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for pickup coordination.
//
// # Available Jobs
//
// 1. PickupExpiryJob - Runs hourly to cancel pending pickup requests whose scheduled date has passed unclaimed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireOverduePickupsHandler, logger)
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
// The expiry job uses the cron expression "0 0 * * * *" and runs at the top
// of every hour. Overdue detection is day-granular, so hourly sweeps keep
// the visible backlog clean without hammering the database.
//
// # Error Handling
//
// The expiry sweep treats requests claimed mid-sweep as expected races and
// moves on; only infrastructure failures are logged as errors.
package jobs
