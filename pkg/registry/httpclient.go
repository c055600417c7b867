package registry

import "net/http"

// userAgentRoundTripper adds a User-Agent header to every request.
// The GitHub API rejects requests without one.
type userAgentRoundTripper struct {
	wrapped   http.RoundTripper
	userAgent string
}

func (rt *userAgentRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	// clone request to avoid mutating the original
	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", rt.userAgent)
	return rt.wrapped.RoundTrip(clone)
}

// NewHTTPClient returns an *http.Client that stamps the given User-Agent
// on every request. Default transport timeouts apply; there is no retry.
func NewHTTPClient(userAgent string) *http.Client {
	return &http.Client{
		Transport: &userAgentRoundTripper{
			wrapped:   http.DefaultTransport,
			userAgent: userAgent,
		},
	}
}
