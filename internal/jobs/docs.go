// Package jobs provides scheduled background tasks for the logistics system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the coordination service.
//
// # Available Jobs
//
// 1. ParcelAssignmentJob - Runs every ten seconds to retry shipment assignment
// for accepted parcels still waiting for a free driver or suitable vehicle
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(assignPendingParcelsHandler, logger)
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
// - Assignment job ignores expected business outcomes (nothing waiting, no
//   free resources); anything else is logged as a system issue
// - Failed job starts will stop any already running jobs
package jobs
