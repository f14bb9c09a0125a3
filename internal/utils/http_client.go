package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client and stamps every request with a trace id.
//
// The trace id is taken from the request context (see WithTraceID) or
// generated when absent, and sent in the X-Trace-ID header.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client rooted at baseURL. A zero timeout leaves the
// transport default in place.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().SetBaseURL(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if req.Header.Get(TraceIDHeader) != "" {
			return nil
		}
		traceID, ok := GetTraceIDFromContext(req.Context())
		if !ok {
			traceID = NewTraceID()
		}
		req.SetHeader(TraceIDHeader, traceID)
		return nil
	})

	return &HTTPClient{Client: client}
}
