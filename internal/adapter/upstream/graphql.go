package upstream

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/machinebox/graphql"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/metrics"
)

const kindGraphQL = "graphql"

type GraphQLRequest struct {
	Query     string
	Variables map[string]any
	Headers   http.Header
	Cache     Cache
}

// A GraphQLClient posts documents to a GraphQL endpoint.
//
// It is safe for concurrent use.
type GraphQLClient struct {
	cl   *graphql.Client
	opts clientOpts
}

func NewGraphQLClient(endpoint string, opts ...Opt) (GraphQLClient, error) {
	const op = "NewGraphQLClient"

	if endpoint == "" {
		return GraphQLClient{}, fmt.Errorf("%s: %w", op, ErrNoEndpoint)
	}

	options, err := newClientOpts(opts)
	if err != nil {
		return GraphQLClient{}, fmt.Errorf("%s: %w", op, err)
	}

	httpClient := &http.Client{
		Timeout:   options.timeout,
		Transport: recordingTransport{next: options.transport},
	}
	cl := graphql.NewClient(endpoint, graphql.WithHTTPClient(httpClient))
	cl.Log = func(s string) {
		slog.Debug(s, "op", "GraphQLClient")
	}

	return GraphQLClient{cl: cl, opts: options}, nil
}

// Fetch sends req and decodes the data payload into out.
//
// Failures are [*domain.UpstreamRequestError] when the backend returned an
// errors payload and [*domain.TransportError] otherwise.
func (c GraphQLClient) Fetch(
	ctx context.Context, req GraphQLRequest, out any,
) (int, error) {
	gr := graphql.NewRequest(req.Query)
	for k, v := range req.Variables {
		gr.Var(k, v)
	}
	c.opts.applyHeaders(gr.Header, req.Headers, req.Cache)

	var ex exchange
	start := time.Now()
	err := c.cl.Run(withExchange(ctx, &ex), gr, out)
	metrics.RecordUpstream(kindGraphQL, ex.status, time.Since(start))

	if err != nil {
		if ue, ok := upstreamError(ex.body, req.Query); ok {
			return ex.status, ue
		}
	}

	// a rejected request keeps its status whatever the body looks like
	if ex.status >= http.StatusBadRequest {
		return ex.status, &domain.UpstreamRequestError{
			Status:  ex.status,
			Message: problemTitle(ex.body, ex.status),
			Request: req.Query,
		}
	}

	if err != nil {
		return ex.status, &domain.TransportError{Cause: err, Request: req.Query}
	}
	return ex.status, nil
}

// An exchange keeps the raw response of one call. The GraphQL client only
// surfaces the message of the first error, so the status and the errors
// payload are read from here.
type exchange struct {
	status int
	body   []byte
}

type exchangeKey struct{}

func withExchange(ctx context.Context, ex *exchange) context.Context {
	return context.WithValue(ctx, exchangeKey{}, ex)
}

type recordingTransport struct {
	next http.RoundTripper
}

func (t recordingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	res, err := t.next.RoundTrip(r)
	if err != nil {
		return nil, err
	}

	ex, ok := r.Context().Value(exchangeKey{}).(*exchange)
	if !ok {
		return res, nil
	}

	body, err := io.ReadAll(res.Body)
	_ = res.Body.Close()
	if err != nil {
		return nil, err
	}

	ex.status = res.StatusCode
	ex.body = body
	res.Body = io.NopCloser(bytes.NewReader(body))
	return res, nil
}
