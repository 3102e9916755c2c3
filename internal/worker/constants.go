package worker

import "time"

// DefaultJobTimeout bounds a single job run
const DefaultJobTimeout = 5 * time.Minute

// Log messages
const (
	LogMsgWorkerJobFailed    = "Worker job failed"
	LogMsgWorkerJobCompleted = "Worker job completed"
	LogMsgWorkerPanic        = "Worker job panicked"
)
