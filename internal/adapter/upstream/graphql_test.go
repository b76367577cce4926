package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testQuery = `query getThing($handle: String!) { thing(handle: $handle) { id } }`

type graphQLBody struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type thingData struct {
	Thing *struct {
		ID string `json:"id"`
	} `json:"thing"`
}

func newGraphQLServer(
	t *testing.T, status int, resp string, inspect func(*http.Request, graphQLBody),
) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body graphQLBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if inspect != nil {
			inspect(r, body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(resp))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGraphQLClientFetch(t *testing.T) {
	t.Run("Data", func(t *testing.T) {
		srv := newGraphQLServer(t, http.StatusOK,
			`{"data":{"thing":{"id":"gid://1"}}}`,
			func(r *http.Request, body graphQLBody) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
				assert.Equal(t, "max-age=900", r.Header.Get("Cache-Control"))
				assert.Equal(t, "yes", r.Header.Get("X-Extra"))
				assert.Equal(t, testQuery, body.Query)
				assert.Equal(t, "shirt", body.Variables["handle"])
			},
		)

		cl, err := NewGraphQLClient(srv.URL, AuthHeaderOpt("Authorization", "Bearer secret"))
		require.NoError(t, err)

		var data thingData
		status, err := cl.Fetch(t.Context(), GraphQLRequest{
			Query:     testQuery,
			Variables: map[string]any{"handle": "shirt"},
			Headers:   http.Header{"X-Extra": {"yes"}},
		}, &data)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, status)
		require.NotNil(t, data.Thing)
		assert.Equal(t, "gid://1", data.Thing.ID)
	})

	t.Run("NoStore", func(t *testing.T) {
		srv := newGraphQLServer(t, http.StatusOK, `{"data":{}}`,
			func(r *http.Request, _ graphQLBody) {
				assert.Equal(t, "no-store", r.Header.Get("Cache-Control"))
			},
		)
		cl, err := NewGraphQLClient(srv.URL, RevalidateOpt(time.Minute))
		require.NoError(t, err)

		_, err = cl.Fetch(t.Context(), GraphQLRequest{Query: testQuery, Cache: CacheNoStore}, &thingData{})
		require.NoError(t, err)
	})

	t.Run("UpstreamErrorWithStatus", func(t *testing.T) {
		srv := newGraphQLServer(t, http.StatusOK,
			`{"errors":[{"status":404,"message":"not found"},{"message":"second"}]}`, nil)
		cl, err := NewGraphQLClient(srv.URL)
		require.NoError(t, err)

		_, err = cl.Fetch(t.Context(), GraphQLRequest{Query: testQuery}, &thingData{})
		var ue *domain.UpstreamRequestError
		require.ErrorAs(t, err, &ue)
		assert.Equal(t, 404, ue.Status)
		assert.Equal(t, "not found", ue.Message)
		assert.Equal(t, testQuery, ue.Request)
	})

	t.Run("UpstreamErrorDefaultStatus", func(t *testing.T) {
		srv := newGraphQLServer(t, http.StatusOK, `{"errors":[{"message":"boom"}]}`, nil)
		cl, err := NewGraphQLClient(srv.URL)
		require.NoError(t, err)

		_, err = cl.Fetch(t.Context(), GraphQLRequest{Query: testQuery}, &thingData{})
		var ue *domain.UpstreamRequestError
		require.ErrorAs(t, err, &ue)
		assert.Equal(t, http.StatusInternalServerError, ue.Status)
		assert.Equal(t, "boom", ue.Message)
	})

	t.Run("HTTPStatusWithoutErrors", func(t *testing.T) {
		srv := newGraphQLServer(t, http.StatusUnauthorized, `{"title":"invalid token"}`, nil)
		cl, err := NewGraphQLClient(srv.URL)
		require.NoError(t, err)

		_, err = cl.Fetch(t.Context(), GraphQLRequest{Query: testQuery}, &thingData{})
		var ue *domain.UpstreamRequestError
		require.ErrorAs(t, err, &ue)
		assert.Equal(t, http.StatusUnauthorized, ue.Status)
		assert.Equal(t, "invalid token", ue.Message)
	})

	t.Run("NonJSONErrorStatus", func(t *testing.T) {
		srv := newGraphQLServer(t, http.StatusServiceUnavailable, `<html>maintenance</html>`, nil)
		cl, err := NewGraphQLClient(srv.URL)
		require.NoError(t, err)

		status, err := cl.Fetch(t.Context(), GraphQLRequest{Query: testQuery}, &thingData{})
		assert.Equal(t, http.StatusServiceUnavailable, status)
		var ue *domain.UpstreamRequestError
		require.ErrorAs(t, err, &ue)
		assert.Equal(t, http.StatusServiceUnavailable, ue.Status)
		assert.Equal(t, "Service Unavailable", ue.Message)
		assert.Equal(t, testQuery, ue.Request)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		srv := newGraphQLServer(t, http.StatusOK, `<html>oops</html>`, nil)
		cl, err := NewGraphQLClient(srv.URL)
		require.NoError(t, err)

		_, err = cl.Fetch(t.Context(), GraphQLRequest{Query: testQuery}, &thingData{})
		var te *domain.TransportError
		require.ErrorAs(t, err, &te)
		assert.Equal(t, testQuery, te.Request)
		assert.Error(t, te.Cause)
	})

	t.Run("Unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		cl, err := NewGraphQLClient(url, TimeoutOpt(time.Second))
		require.NoError(t, err)

		_, err = cl.Fetch(t.Context(), GraphQLRequest{Query: testQuery}, &thingData{})
		var te *domain.TransportError
		require.ErrorAs(t, err, &te)
	})

	t.Run("Canceled", func(t *testing.T) {
		srv := newGraphQLServer(t, http.StatusOK, `{"data":{}}`, nil)
		cl, err := NewGraphQLClient(srv.URL)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		_, err = cl.Fetch(ctx, GraphQLRequest{Query: testQuery}, &thingData{})
		var te *domain.TransportError
		require.ErrorAs(t, err, &te)
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestNewGraphQLClient(t *testing.T) {
	_, err := NewGraphQLClient("")
	assert.ErrorIs(t, err, ErrNoEndpoint)

	_, err = NewGraphQLClient("http://localhost", TimeoutOpt(0))
	assert.Error(t, err)

	_, err = NewGraphQLClient("http://localhost", AuthHeaderOpt("", "x"))
	assert.Error(t, err)
}
