package rest

import "fmt"

// Response holds the outcome of one z/OSMF HTTP request.
type Response struct {
	// Body is the raw response body.
	Body string

	// StatusCode is the HTTP status code.
	StatusCode int

	// StatusText is the HTTP status line text.
	StatusText string
}

func (r Response) String() string {
	return fmt.Sprintf("Response{statusCode=%d, statusText=%s}", r.StatusCode, r.StatusText)
}

// IsHTTPError reports whether code is outside the 1xx-2xx success range.
func IsHTTPError(code int) bool {
	return code >= 300 || code < 100
}
