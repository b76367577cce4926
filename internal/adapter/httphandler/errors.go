package httphandler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/niksmo/storefront/internal/core/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response body", "err", err)
	}
}

func writeMessage(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, status, ErrorResponse{
		Error:     msg,
		RequestID: RequestIDFromContext(r.Context()),
	})
}

// writeError maps a facade failure to a response: backend rejections are
// 502, unreachable backends 503.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	res := ErrorResponse{RequestID: RequestIDFromContext(r.Context())}

	var (
		upstreamErr  *domain.UpstreamRequestError
		transportErr *domain.TransportError
		status       int
	)
	switch {
	case errors.As(err, &upstreamErr):
		status = http.StatusBadGateway
		res.Error = upstreamErr.Message
		res.UpstreamStatus = upstreamErr.Status
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
		res.Error = "backend timed out"
	case errors.As(err, &transportErr), errors.Is(err, context.Canceled):
		status = http.StatusServiceUnavailable
		res.Error = "backend unavailable"
	case errors.Is(err, domain.ErrNoPublisher):
		status = http.StatusNotImplemented
		res.Error = domain.ErrNoPublisher.Error()
	default:
		status = http.StatusInternalServerError
		res.Error = "internal error"
	}

	log.Error("request failed", "status", status, "err", err)
	writeJSON(w, status, res)
}
