package utils

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
)

// ctxKey is unexported to prevent collisions.
type ctxKey string

// CtxKeyRequestID holds the per-request id set by the request logger.
const CtxKeyRequestID ctxKey = "requestID"

// RequestIDFromContext returns the id set by the request logger, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(CtxKeyRequestID).(string)
	return id
}

// requestFields starts a log entry's fields with the request id, when the
// request carries one.
func requestFields(r *http.Request) logrus.Fields {
	fields := logrus.Fields{}
	if r == nil {
		return fields
	}
	if id := RequestIDFromContext(r.Context()); id != "" {
		fields["request_id"] = id
	}
	return fields
}
