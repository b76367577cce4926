package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyStatus(t *testing.T) {
	tests := map[int]string{
		0:   "none",
		200: "2xx",
		302: "3xx",
		404: "4xx",
		503: "5xx",
		999: "unknown",
	}
	for code, want := range tests {
		assert.Equal(t, want, classifyStatus(code), "code %d", code)
	}
}

func TestRecordUpstream(t *testing.T) {
	before := testutil.ToFloat64(upstreamRequestsTotal.WithLabelValues("graphql", "4xx"))
	RecordUpstream("graphql", 404, 10*time.Millisecond)
	after := testutil.ToFloat64(upstreamRequestsTotal.WithLabelValues("graphql", "4xx"))
	assert.Equal(t, before+1, after)
}

func TestHandler(t *testing.T) {
	RecordRequest(http.MethodGet, "/v1/products", 200, time.Millisecond)

	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "http_requests_total")
}
