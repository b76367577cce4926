package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/metrics"
)

const kindREST = "rest"

type RESTRequest struct {
	Path    string
	Method  string
	Body    any
	Headers http.Header
	Cache   Cache
}

// A RESTClient calls JSON endpoints relative to a base URL.
//
// It is safe for concurrent use.
type RESTClient struct {
	baseURL string
	client  *http.Client
	opts    clientOpts
}

func NewRESTClient(baseURL string, opts ...Opt) (RESTClient, error) {
	const op = "NewRESTClient"

	if baseURL == "" {
		return RESTClient{}, fmt.Errorf("%s: %w", op, ErrNoEndpoint)
	}

	options, err := newClientOpts(opts)
	if err != nil {
		return RESTClient{}, fmt.Errorf("%s: %w", op, err)
	}

	return RESTClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout:   options.timeout,
			Transport: options.transport,
		},
		opts: options,
	}, nil
}

// Fetch sends req and decodes the JSON response into out, which may be nil.
//
// Failures are [*domain.UpstreamRequestError] when the backend rejected the
// request and [*domain.TransportError] otherwise.
func (c RESTClient) Fetch(
	ctx context.Context, req RESTRequest, out any,
) (int, error) {
	start := time.Now()
	status, body, err := c.do(ctx, req)
	metrics.RecordUpstream(kindREST, status, time.Since(start))
	if err != nil {
		return status, &domain.TransportError{Cause: err, Request: req.Path}
	}

	if ue, ok := upstreamError(body, req.Path); ok {
		return status, ue
	}

	if status >= http.StatusBadRequest {
		return status, &domain.UpstreamRequestError{
			Status:  status,
			Message: problemTitle(body, status),
			Request: req.Path,
		}
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return status, nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		err = fmt.Errorf("decoding response: %w", err)
		return status, &domain.TransportError{Cause: err, Request: req.Path}
	}
	return status, nil
}

func (c RESTClient) do(
	ctx context.Context, req RESTRequest,
) (int, []byte, error) {
	var reqBody io.Reader
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return 0, nil, fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	r, err := http.NewRequestWithContext(ctx, method, c.baseURL+req.Path, reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("creating request: %w", err)
	}
	c.opts.applyHeaders(r.Header, req.Headers, req.Cache)
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("Accept", "application/json")

	res, err := c.client.Do(r)
	if err != nil {
		return 0, nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return res.StatusCode, nil, fmt.Errorf("reading response body: %w", err)
	}
	return res.StatusCode, body, nil
}
