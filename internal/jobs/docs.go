// Package jobs provides scheduled background tasks for the ordering backend.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. CartExpiryJob - Runs every ten minutes and drops cart lines older than the configured TTL
// 2. PendingOrdersReportJob - Runs every minute and logs pending orders without a delivery crew
//
// # Usage
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(expireHandler, countHandler, 72*time.Hour, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// Every job also exposes Run, which performs a single iteration synchronously.
//
// # Error Handling
//
// Errors of a scheduled iteration are logged and the next iteration runs as usual.
// Failed job starts will stop any already running jobs.
package jobs
