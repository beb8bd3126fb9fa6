package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	geocodeRetryJob *GeocodeRetryJob
	autoDispatchJob *AutoDispatchJob
}

// NewJobManager takes the jobs to run. A nil job is disabled.
func NewJobManager(geocodeRetryJob *GeocodeRetryJob, autoDispatchJob *AutoDispatchJob) *JobManager {
	return &JobManager{
		geocodeRetryJob: geocodeRetryJob,
		autoDispatchJob: autoDispatchJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.geocodeRetryJob != nil {
		if err := jm.geocodeRetryJob.Start(); err != nil {
			return fmt.Errorf("failed to start geocode retry job: %w", err)
		}
	}

	if jm.autoDispatchJob != nil {
		if err := jm.autoDispatchJob.Start(); err != nil {
			// Stop already started jobs if this one fails
			if jm.geocodeRetryJob != nil {
				jm.geocodeRetryJob.Stop()
			}
			return fmt.Errorf("failed to start auto dispatch job: %w", err)
		}
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.autoDispatchJob != nil {
		jm.autoDispatchJob.Stop()
	}
	if jm.geocodeRetryJob != nil {
		jm.geocodeRetryJob.Stop()
	}
}
