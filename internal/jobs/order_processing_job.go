package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// OrderProcessingJob runs the type-dispatch engine on a schedule. Every run it
// asks the store which owners still hold unprocessed orders and hands each
// owner's batch to the command handler.
type OrderProcessingJob struct {
	handler    commands.ProcessOrdersCommandHandler
	orderStore ports.OrderStore
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewOrderProcessingJob creates a job that processes pending order batches
// every ten seconds.
func NewOrderProcessingJob(
	handler commands.ProcessOrdersCommandHandler,
	orderStore ports.OrderStore,
	logger *slog.Logger,
) *OrderProcessingJob {
	return &OrderProcessingJob{
		handler:    handler,
		orderStore: orderStore,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "order_processing_job"),
	}
}

// Start begins the order processing job.
func (j *OrderProcessingJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()

		owners, err := j.orderStore.OwnersWithUnprocessed(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Listing owners with unprocessed orders failed", "error", err)
			return
		}

		for _, ownerID := range owners {
			cmd, err := commands.NewProcessOrdersCommand(ownerID)
			if err != nil {
				j.logger.ErrorContext(ctx, "Building process orders command failed", "owner_id", ownerID, "error", err)
				continue
			}

			processed, err := j.handler.Handle(ctx, cmd)
			if err != nil {
				j.logger.ErrorContext(ctx, "Order processing batch failed", "owner_id", ownerID, "error", err)
				continue
			}
			if processed {
				j.logger.InfoContext(ctx, "Order processing batch completed", "owner_id", ownerID)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order processing job started (running every ten seconds)")
	return nil
}

// Stop stops the order processing job.
func (j *OrderProcessingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order processing job stopped")
}
