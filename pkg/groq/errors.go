package groq

import "errors"

var (
	// ErrRateLimited is returned when the endpoint answers 429.
	ErrRateLimited = errors.New("rate limited")

	// ErrTimeout is returned when the request exceeds its deadline.
	ErrTimeout = errors.New("request timed out")
)
