// Package jobs provides scheduled background tasks for the prep center.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. NotificationRelayJob - forwards new inbox notifications to Kafka, resuming from a stored cursor
// 2. StationLoadAuditJob - compares recorded station load with the tasks holding a slot, reports drift
// 3. StaleTaskReportJob - logs tasks that have stayed IN_PROGRESS longer than a threshold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(logger,
//		jobs.Schedule{Spec: "*/5 * * * * *", Job: relayJob},
//		jobs.Schedule{Spec: "0 */10 * * * *", Job: auditJob},
//	)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Expressions carry a seconds field. A run that is still in progress when its next tick
// arrives causes that tick to be skipped, so a slow broker never stacks relay runs.
//
// # Error Handling
//
// Failed runs are logged with the job name; the next tick retries. The audit and the
// stale report never modify tasks or stations.
package jobs
