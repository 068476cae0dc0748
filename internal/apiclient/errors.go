package apiclient

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Error is the single failure kind returned by Client. Network failures,
// 4xx and 5xx responses all surface as *Error; StatusCode is zero when no
// response was received.
type Error struct {
	Op         string
	StatusCode int
	StatusText string
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.StatusText)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// UpstreamStatus returns the backend HTTP status, or zero.
func (e *Error) UpstreamStatus() int {
	return e.StatusCode
}

// statusText extracts the reason phrase of the response status line,
// falling back to the canonical text for the code.
func statusText(resp *resty.Response) string {
	if resp == nil {
		return ""
	}
	code := resp.StatusCode()
	if reason := strings.TrimSpace(strings.TrimPrefix(resp.Status(), strconv.Itoa(code))); reason != "" {
		return reason
	}
	return http.StatusText(code)
}
