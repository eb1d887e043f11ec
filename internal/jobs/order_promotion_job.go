package jobs

import (
	"context"
	"log/slog"

	"canteen/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderPromotionJob closes expired checkout windows on a schedule.
// Runs every second so pending orders whose window lapsed move into the
// kitchen queue without a client having to come back.
type OrderPromotionJob struct {
	handler commands.PromotePendingOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderPromotionJob creates a new job for promoting expired pending orders.
// Uses PromotePendingOrdersCommandHandler to advance abandoned checkouts every second.
func NewOrderPromotionJob(handler commands.PromotePendingOrdersCommandHandler, logger *slog.Logger) *OrderPromotionJob {
	return &OrderPromotionJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_promotion_job"),
	}
}

// Start begins the order promotion job to run every second.
func (j *OrderPromotionJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewPromotePendingOrdersCommand()

		promoted, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order promotion job failed", "error", err)
			return
		}

		if promoted > 0 {
			j.logger.InfoContext(ctx, "Promoted expired pending orders", "count", promoted)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order promotion job started (running every second)")
	return nil
}

// Stop stops the order promotion job.
func (j *OrderPromotionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order promotion job stopped")
}
