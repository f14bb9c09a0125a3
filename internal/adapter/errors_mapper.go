package adapter

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return NewHTTPError(resp.StatusCode(), string(resp.Body()))
}

// NewHTTPError classifies a non-2xx answer by its status code.
func NewHTTPError(statusCode int, body string) *HTTPError {
	httpErr := &HTTPError{
		StatusCode: statusCode,
		Body:       strings.TrimSpace(body),
	}

	switch statusCode {
	case http.StatusBadRequest:
		httpErr.kind = ErrBadRequest
	case http.StatusNotFound:
		httpErr.kind = ErrNotFound
	case http.StatusInternalServerError:
		httpErr.kind = ErrInternalServerError
	case http.StatusServiceUnavailable:
		httpErr.kind = ErrServiceUnavailable
	default:
		httpErr.kind = ErrUnexpectedStatus
		if httpErr.Body == "" {
			httpErr.Body = http.StatusText(statusCode)
		}
	}

	return httpErr
}
