package transport

import (
	"net/http"
	"time"
)

// DefaultUserAgent is sent on every request. tmpfiles.org answers
// inconsistently to non-browser agents.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/129.0.0.0 Safari/537.36"

// userAgentTransport stamps a fixed User-Agent on outgoing requests.
type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrip must not modify the caller's request
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(r)
}

// New returns an HTTP client that sets userAgent on every request. A zero
// timeout leaves the client without an overall deadline.
func New(userAgent string, timeout time.Duration) *http.Client {
	return Wrap(http.DefaultTransport, userAgent, timeout)
}

// Wrap is like New but sends requests through base.
func Wrap(base http.RoundTripper, userAgent string, timeout time.Duration) *http.Client {
	if base == nil {
		base = http.DefaultTransport
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &http.Client{
		Transport: &userAgentTransport{base: base, userAgent: userAgent},
		Timeout:   timeout,
	}
}
