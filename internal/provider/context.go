package provider

import "context"

type contextKey string

const requestIDKey contextKey = "provider_request_id"

// RequestIDHeader carries the request id to the provider.
const RequestIDHeader = "X-Request-ID"

// WithRequestID attaches a request id to the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFrom extracts the request id from the context.
func RequestIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}
