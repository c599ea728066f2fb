package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	ordersSummaryJob *OrdersSummaryJob
}

// NewJobManager creates a job manager. A nil job is treated as disabled.
func NewJobManager(ordersSummaryJob *OrdersSummaryJob) *JobManager {
	return &JobManager{
		ordersSummaryJob: ordersSummaryJob,
	}
}

// StartAll starts all enabled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.ordersSummaryJob == nil {
		return nil
	}

	if err := jm.ordersSummaryJob.Start(); err != nil {
		return fmt.Errorf("failed to start orders summary job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.ordersSummaryJob != nil {
		jm.ordersSummaryJob.Stop()
	}
}
