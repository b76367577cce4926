package httphandler

import "github.com/niksmo/storefront/internal/core/domain"

type (
	AddLinesRequest struct {
		Lines []domain.CartLineInput `json:"lines"`
	}

	UpdateLinesRequest struct {
		Lines []domain.CartLineUpdate `json:"lines"`
	}

	RemoveLinesRequest struct {
		LineIDs []string `json:"lineIds"`
	}
)

type (
	PublishRequest struct {
		Query   string `json:"query"`
		SortKey string `json:"sortKey"`
		Reverse bool   `json:"reverse"`
	}

	PublishResponse struct {
		Published int `json:"published"`
	}
)

type ErrorResponse struct {
	Error          string `json:"error"`
	UpstreamStatus int    `json:"upstreamStatus,omitempty"`
	RequestID      string `json:"requestId,omitempty"`
}
