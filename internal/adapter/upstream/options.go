package upstream

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultRevalidate = 15 * time.Minute
)

var ErrNoEndpoint = errors.New("endpoint is empty")

// A Cache is the caching directive sent along with a request.
type Cache int

const (
	// CacheForce allows intermediaries to serve a response up to the
	// revalidation period old.
	CacheForce Cache = iota
	// CacheNoStore asks for the freshest state.
	CacheNoStore
)

func (c Cache) header(revalidate time.Duration) string {
	if c == CacheNoStore {
		return "no-store"
	}
	return fmt.Sprintf("max-age=%d", int(revalidate.Seconds()))
}

type Opt func(*clientOpts) error

type clientOpts struct {
	header     http.Header
	timeout    time.Duration
	revalidate time.Duration
	transport  http.RoundTripper
}

func defaultClientOpts() clientOpts {
	return clientOpts{
		header:     make(http.Header),
		timeout:    defaultTimeout,
		revalidate: defaultRevalidate,
		transport:  http.DefaultTransport,
	}
}

func newClientOpts(opts []Opt) (clientOpts, error) {
	options := defaultClientOpts()
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return clientOpts{}, err
		}
	}
	return options, nil
}

// AuthHeaderOpt attaches the credential header to every request.
func AuthHeaderOpt(name, value string) Opt {
	return func(o *clientOpts) error {
		if name == "" {
			return errors.New("auth header name is empty")
		}
		o.header.Set(name, value)
		return nil
	}
}

func TimeoutOpt(d time.Duration) Opt {
	return func(o *clientOpts) error {
		if d <= 0 {
			return errors.New("timeout must be positive")
		}
		o.timeout = d
		return nil
	}
}

// RevalidateOpt sets the max age sent with [CacheForce] requests.
func RevalidateOpt(d time.Duration) Opt {
	return func(o *clientOpts) error {
		if d < 0 {
			return errors.New("revalidate period is negative")
		}
		o.revalidate = d
		return nil
	}
}

func TransportOpt(rt http.RoundTripper) Opt {
	return func(o *clientOpts) error {
		if rt == nil {
			return errors.New("transport is nil")
		}
		o.transport = rt
		return nil
	}
}

func (o clientOpts) applyHeaders(dst, extra http.Header, cache Cache) {
	for k, vs := range o.header {
		dst[k] = append([]string(nil), vs...)
	}
	for k, vs := range extra {
		dst[k] = append([]string(nil), vs...)
	}
	dst.Set("Cache-Control", cache.header(o.revalidate))
}
