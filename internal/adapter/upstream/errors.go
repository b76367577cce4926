package upstream

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/niksmo/storefront/internal/core/domain"
)

const defaultErrorStatus = http.StatusInternalServerError

type (
	errorsPayload struct {
		Errors []errorEntry `json:"errors"`
	}

	errorEntry struct {
		Status  json.RawMessage `json:"status"`
		Message string          `json:"message"`
	}

	problemPayload struct {
		Title string `json:"title"`
	}
)

// upstreamError reports the first entry of an errors payload in body.
func upstreamError(body []byte, request string) (*domain.UpstreamRequestError, bool) {
	var p errorsPayload
	if err := json.Unmarshal(body, &p); err != nil || len(p.Errors) == 0 {
		return nil, false
	}
	e := p.Errors[0]
	return &domain.UpstreamRequestError{
		Status:  parseStatus(e.Status),
		Message: e.Message,
		Request: request,
	}, true
}

func parseStatus(raw json.RawMessage) int {
	s := string(bytes.Trim(raw, `"`))
	n, err := strconv.Atoi(s)
	if err != nil || n == 0 {
		return defaultErrorStatus
	}
	return n
}

func problemTitle(body []byte, status int) string {
	var p problemPayload
	if err := json.Unmarshal(body, &p); err == nil && p.Title != "" {
		return p.Title
	}
	return http.StatusText(status)
}
