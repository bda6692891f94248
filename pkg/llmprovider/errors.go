package llmprovider

import (
	"context"
	"errors"
	"fmt"

	"daily-planner/pkg/groq"
)

var (
	ErrAllProvidersFailed    = errors.New("all providers failed")
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrInvalidRequest is returned before any provider is called.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProviderTimeout and ErrProviderRateLimited classify a single provider failure.
	// A rate-limited provider is not retried; the manager moves on to the next one.
	ErrProviderTimeout     = errors.New("provider timeout")
	ErrProviderRateLimited = errors.New("provider rate limited")
)

// ProviderError names the provider behind the last failure of a fallback chain.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// classify tags client errors with the matching provider sentinel, keeping the cause.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, groq.ErrRateLimited):
		return fmt.Errorf("%w: %w", ErrProviderRateLimited, err)
	case errors.Is(err, groq.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrProviderTimeout, err)
	default:
		return err
	}
}
