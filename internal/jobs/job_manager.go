package jobs

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderProcessingJob *OrderProcessingJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	processOrdersHandler commands.ProcessOrdersCommandHandler,
	orderStore ports.OrderStore,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderProcessingJob: NewOrderProcessingJob(processOrdersHandler, orderStore, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderProcessingJob.Start(); err != nil {
		return fmt.Errorf("failed to start order processing job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderProcessingJob.Stop()
}
