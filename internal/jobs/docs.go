// Package jobs provides scheduled background tasks for the drone
// logistics service, built on github.com/robfig/cron/v3.
//
// DroneReconciliationJob runs once a minute and releases drones stuck
// in the delivering status without a matching active delivery. Jobs are
// managed through JobManager:
//
//	jobManager := jobs.NewJobManager(reconcileDronesHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
