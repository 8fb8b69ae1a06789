package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	deliveryProgressJob *DeliveryProgressJob
}

func NewJobManager(
	recentOrdersHandler RecentOrdersHandler,
	logger *slog.Logger,
) (*JobManager, error) {
	deliveryProgressJob, err := NewDeliveryProgressJob(recentOrdersHandler, DefaultLookback, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create delivery progress job: %w", err)
	}

	return &JobManager{
		deliveryProgressJob: deliveryProgressJob,
	}, nil
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.deliveryProgressJob.Start(); err != nil {
		return fmt.Errorf("failed to start delivery progress job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.deliveryProgressJob.Stop()
}
