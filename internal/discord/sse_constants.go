package discord

import "time"

// SSE client configuration
const (
	sseInitialBackoff    = time.Second
	sseMaxBackoff        = 30 * time.Second
	sseBackoffMultiplier = 2.0
	sseBufferSize        = 64 * 1024
)

// SSE log messages
const (
	sseLogMsgClientConnected  = "SSE client connected"
	sseLogMsgClientStopped    = "SSE client stopped"
	sseLogMsgConnectionFailed = "SSE connection failed, will retry"
	sseLogMsgParseError       = "Failed to parse SSE event"
	sseLogMsgHandlerError     = "SSE event handler failed"
)
