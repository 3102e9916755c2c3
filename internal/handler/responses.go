package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/osse101/NeuroFarm_Go/internal/domain"
)

// HeaderRetryAfter is set on cooldown rejections
const HeaderRetryAfter = "Retry-After"

// ErrorResponse is the body of every error response
type ErrorResponse struct {
	Error             string `json:"error"`
	Code              string `json:"code"`
	Suggestion        string `json:"suggestion,omitempty"`
	RetryAfterSeconds int64  `json:"retry_after_seconds,omitempty"`
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields"`
}

// encodeBuffers holds response buffers between requests; buffers that grew
// past maxPooledBuffer are left to the GC.
var encodeBuffers = sync.Pool{
	New: func() any { return bytes.NewBuffer(make([]byte, 0, 512)) },
}

const maxPooledBuffer = 64 << 10

// respondJSON encodes payload before touching the response so an encoding
// failure can still become a 500
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := encodeBuffers.Get().(*bytes.Buffer)
	defer func() {
		if buf.Cap() <= maxPooledBuffer {
			buf.Reset()
			encodeBuffers.Put(buf)
		}
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(ErrorResponse{Error: ErrMsgGenericServerError, Code: domain.CodeInternalError})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Debug("Failed to write response", "error", err)
	}
}

// respondError sends a JSON error response with an explicit code
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{Error: message, Code: code})
}

func formatInt(n int64) string {
	return strconv.FormatInt(n, 10)
}
