package log

import "context"

type requestIDKey struct{}

// WithRequestID returns a copy of ctx whose log lines carry request_id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}
