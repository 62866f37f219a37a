package jobs

import (
	"context"
	"log/slog"

	"shop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeliveryProgressJob manages the scheduled progression of shipments.
// Each tick advances every placed order's delivery one status step until it
// reaches Complete.
type DeliveryProgressJob struct {
	handler commands.AdvanceDeliveriesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryProgressJob creates a new job for advancing deliveries.
// Uses AdvanceDeliveriesCommandHandler to progress shipments every ten seconds.
func NewDeliveryProgressJob(handler commands.AdvanceDeliveriesCommandHandler, logger *slog.Logger) *DeliveryProgressJob {
	return &DeliveryProgressJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivery_progress_job"),
	}
}

// Start begins the delivery progression job to run every ten seconds.
func (j *DeliveryProgressJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAdvanceDeliveriesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Delivery progress job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery progress job started (running every ten seconds)")
	return nil
}

// Stop stops the delivery progression job.
func (j *DeliveryProgressJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery progress job stopped")
}
