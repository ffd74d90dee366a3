package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// httpStatusErrors maps the statuses RPC providers answer with when they
// refuse a call before it reaches the node.
var httpStatusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

// mapHTTPError returns nil for 2xx responses. JSON-RPC errors arrive with
// status 200 and are decoded by the caller.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if sentinel, ok := httpStatusErrors[status]; ok {
		return fmt.Errorf("%w: %s", sentinel, body)
	}
	if body == "" {
		body = http.StatusText(status)
	}
	return fmt.Errorf("http %d: %s", status, body)
}
