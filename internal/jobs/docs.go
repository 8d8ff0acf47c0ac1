// Package jobs provides the scheduled polling tasks behind the
// change-detection pipeline.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to refresh the order and measurement collections from the backend.
//
// # Available Jobs
//
// 1. OrderPollJob - Runs every ten seconds to refresh the active order
// collection, diff it against the persisted snapshots, and raise alerts.
// 2. MeasurementPollJob - Runs every ten seconds to refresh the TKW
// measurement feed. Only scheduled when the company runs the laboratory
// workflow and the session user holds the Laboratory role.
//
// # Usage
//
// Jobs are managed through JobManager which ties their lifetime to the
// session:
//
//	jobManager := jobs.NewJobManager(refreshOrdersHandler, measurementJobSpec, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// On logout:
//	jobManager.StopAll()
//
// # Scheduling
//
// Both jobs use the cron expression "*/10 * * * * *": one tick every ten
// seconds. The two jobs are independent; no lock spans their ticks, and
// last-writer-wins on the shared snapshot store is accepted.
//
// # Error Handling
//
// Tick failures are logged and the schedule continues: a failed poll must
// never stop polling. Failed job starts stop any already running jobs.
package jobs
