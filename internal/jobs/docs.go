// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// OrdersSummaryJob computes the number of stored orders, the units purchased and the value
// purchased, logs the result and refreshes the store gauges in the metrics package.
//
// # Usage
//
//	summaryJob := jobs.NewOrdersSummaryJob(summaryHandler, orderMetrics, "0 */5 * * * *", logger)
//	jobManager := jobs.NewJobManager(summaryJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use six fields with seconds. An empty SUMMARY_JOB_SCHEDULE disables the job; the
// manager then starts nothing. Runs never overlap: a tick is skipped while the previous run
// is still in progress.
package jobs
