package transcript

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

// NotFoundError means the video or its captions are confirmed absent, as
// opposed to a dependency misbehaving. Handlers map it to HTTP 404 so clients
// can show "no transcript" instead of a generic failure.
type NotFoundError struct {
	Reason string
}

func (e *NotFoundError) Error() string {
	return e.Reason
}

// UpstreamError is a non-success response from a platform dependency. Body
// holds a best-effort excerpt of the upstream error payload for diagnosis.
type UpstreamError struct {
	Operation string
	Status    int
	Body      string
}

func (e *UpstreamError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: upstream status %d", e.Operation, e.Status)
	}
	return fmt.Sprintf("%s: upstream status %d: %s", e.Operation, e.Status, e.Body)
}

// upstreamError drains a bounded excerpt of the response body into an
// UpstreamError. The caller keeps ownership of resp.Body.
func upstreamError(op string, resp *http.Response) error {
	excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return &UpstreamError{
		Operation: op,
		Status:    resp.StatusCode,
		Body:      strings.TrimSpace(string(excerpt)),
	}
}
