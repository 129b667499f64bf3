package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/ColonyPlanner_Go/internal/catalog"
	"github.com/osse101/ColonyPlanner_Go/internal/domain"
	"github.com/osse101/ColonyPlanner_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error       string   `json:"error"`
	Code        string   `json:"code,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

// bufferPool reuses encode buffers across responses
var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode before writing headers so a failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError maps a service error to a status and user-facing body.
// Internal failures are logged with full detail and answered generically.
func respondServiceError(w http.ResponseWriter, r *http.Request, action string, err error) {
	status, body := mapServiceError(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "action", action, "status", status, "error", err)
	} else {
		log.Debug(LogMsgServiceError, "action", action, "status", status, "error", err)
	}
	respondJSON(w, status, body)
}

// mapServiceError converts domain and catalog errors into HTTP responses
func mapServiceError(err error) (int, ErrorResponse) {
	var unknown *domain.UnknownItemError
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrorResponse{Error: ErrMsgGenericServerError, Code: CodeInternal}
	case errors.As(err, &unknown):
		return http.StatusNotFound, ErrorResponse{Error: unknown.Error(), Code: CodeUnknownItem, Suggestions: unknown.Suggestions}
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: CodeInvalidInput}
	case errors.Is(err, domain.ErrMultipleOverride):
		return http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: CodeMultipleOverride}
	case errors.Is(err, domain.ErrToolLevel):
		return http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Code: CodeToolLevel}
	case errors.Is(err, domain.ErrMachineToolsRequired):
		return http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Code: CodeMachineToolsRequired}
	case errors.Is(err, domain.ErrEyeglassesRequired):
		return http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Code: CodeEyeglassesRequired}
	case errors.Is(err, domain.ErrNotCreatableWithOverrides):
		return http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Code: CodeNotCreatableOverrides}
	case errors.Is(err, catalog.ErrNotLoaded):
		return http.StatusServiceUnavailable, ErrorResponse{Error: ErrMsgUnavailableError, Code: CodeCatalogUnavailable}
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, ErrorResponse{Error: ErrMsgTimeoutError, Code: CodeTimeout}
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, ErrorResponse{Error: ErrMsgCanceledError, Code: CodeTimeout}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: ErrMsgGenericServerError, Code: CodeInternal}
	}
}
