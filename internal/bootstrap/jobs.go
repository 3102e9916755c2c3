package bootstrap

import (
	"log/slog"

	"github.com/osse101/NeuroFarm_Go/internal/config"
	"github.com/osse101/NeuroFarm_Go/internal/eventlog"
	"github.com/osse101/NeuroFarm_Go/internal/scheduler"
	"github.com/osse101/NeuroFarm_Go/internal/worker"
)

// StartBackgroundJobs starts the worker pool and schedules event-log
// retention. A non-positive retention disables cleanup.
func StartBackgroundJobs(cfg *config.Config, eventLogSvc eventlog.Service) (*worker.Pool, *scheduler.Scheduler) {
	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize, WorkerJobTimeout)
	pool.Start()

	sched := scheduler.New(pool)
	if cfg.EventLogRetentionDays > 0 && cfg.EventLogCleanupEvery > 0 {
		job := eventlog.NewCleanupJob(eventLogSvc, cfg.EventLogRetentionDays)
		sched.RunNow(job)
		sched.Schedule(cfg.EventLogCleanupEvery, job)
	}

	slog.Info(LogMsgBackgroundJobsStarted,
		"workers", cfg.WorkerCount,
		"retention_days", cfg.EventLogRetentionDays,
		"cleanup_every", cfg.EventLogCleanupEvery)
	return pool, sched
}
