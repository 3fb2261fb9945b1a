package jobs

import (
	"context"
	"errors"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ParcelAssignmentJob manages the scheduled retry of shipment assignment for
// accepted parcels that are still waiting for a driver or vehicle. Runs every
// ten seconds so freed resources get picked up without staff action.
type ParcelAssignmentJob struct {
	handler commands.AssignPendingParcelsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewParcelAssignmentJob creates a new job for retrying parcel assignment.
func NewParcelAssignmentJob(handler commands.AssignPendingParcelsCommandHandler, logger *slog.Logger) *ParcelAssignmentJob {
	return &ParcelAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "parcel_assignment_job"),
	}
}

// Start begins the parcel assignment job to run every ten seconds.
func (j *ParcelAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAssignPendingParcelsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoParcelsWaiting) && !errors.Is(err, commands.ErrNoResourcesAvailable) {
				j.logger.ErrorContext(ctx, "Parcel assignment job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Parcel assignment job started (running every ten seconds)")
	return nil
}

// Stop stops the parcel assignment job.
func (j *ParcelAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Parcel assignment job stopped")
}
