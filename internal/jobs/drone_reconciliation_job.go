package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"meddrone/internal/core/application/usecases/commands"
)

// DroneReconciliationJob periodically releases drones that are marked
// delivering but are no longer referenced by any active delivery. Such
// strays appear when a process dies between updating the delivery and
// updating the drone.
type DroneReconciliationJob struct {
	handler commands.ReconcileDronesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDroneReconciliationJob creates a job that reconciles the drone pool
// once a minute.
func NewDroneReconciliationJob(handler commands.ReconcileDronesCommandHandler, logger *slog.Logger) *DroneReconciliationJob {
	return &DroneReconciliationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "drone_reconciliation_job"),
	}
}

// Start begins the reconciliation job, running at the top of every minute.
func (j *DroneReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewReconcileDronesCommand()

		released, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Drone reconciliation job failed", "error", err)
			return
		}

		if released > 0 {
			j.logger.InfoContext(ctx, "Released stray drones", "count", released)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Drone reconciliation job started (running every minute)")
	return nil
}

// Stop stops the reconciliation job.
func (j *DroneReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Drone reconciliation job stopped")
}
