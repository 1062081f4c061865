package jobs

import (
	"fmt"
	"log/slog"

	"meddrone/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	droneReconciliationJob *DroneReconciliationJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	reconcileDronesHandler commands.ReconcileDronesCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		droneReconciliationJob: NewDroneReconciliationJob(reconcileDronesHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.droneReconciliationJob.Start(); err != nil {
		return fmt.Errorf("failed to start drone reconciliation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.droneReconciliationJob.Stop()
}
