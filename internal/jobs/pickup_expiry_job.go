package jobs

import (
	"context"
	"log/slog"

	"ewaste/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PickupExpiryJob cancels pending pickup requests whose scheduled date has
// passed without any agent claiming them. Overdue detection works at day
// granularity, so an hourly sweep is more than frequent enough.
type PickupExpiryJob struct {
	handler commands.ExpireOverduePickupsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPickupExpiryJob creates the expiry sweep job.
func NewPickupExpiryJob(handler commands.ExpireOverduePickupsCommandHandler, logger *slog.Logger) *PickupExpiryJob {
	return &PickupExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "pickup_expiry_job"),
	}
}

// Start begins the expiry sweep, running at the top of every hour.
func (j *PickupExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewExpireOverduePickupsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Pickup expiry sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pickup expiry job started (running hourly)")
	return nil
}

// Stop stops the expiry sweep.
func (j *PickupExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pickup expiry job stopped")
}
