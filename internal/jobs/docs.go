// Package jobs provides scheduled background tasks for the freight
// marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance operations.
//
// # Available Jobs
//
// 1. QuotationExpirationJob - Runs every minute to expire submitted
// quotations whose validity date has passed.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(expireQuotationsHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Job failures are logged and the next scheduled run retries from scratch;
// expiration is idempotent, so a failed run never leaves partial state
// behind that a later run cannot fix.
package jobs
