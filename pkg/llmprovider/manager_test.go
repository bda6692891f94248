package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	mu         sync.Mutex
	name       string
	model      string
	shouldFail bool
	failWith   error
	delay      time.Duration
	response   *Response
	callCount  int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()

	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.failWith != nil {
		return nil, m.failWith
	}
	if m.shouldFail {
		return nil, errors.New("mock provider error")
	}
	return m.response, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

func (m *mockProvider) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.infoMessages = append(m.infoMessages, msg)
		}
	}
}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {
	m.infoMessages = append(m.infoMessages, fmt.Sprintf(template, arg...))
}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.warnMessages = append(m.warnMessages, msg)
		}
	}
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.warnMessages = append(m.warnMessages, fmt.Sprintf(template, arg...))
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func okResponse(provider string) *Response {
	return &Response{
		Text:         "9:00 am - 9:30 am: Hello from " + provider,
		ProviderName: provider,
		ModelName:    provider + "-model",
		Usage:        &Usage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
	}
}

func TestGenerateContent_SuccessWithPrimaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", response: okResponse("primary")}
	logger := &mockLogger{}

	manager := NewManager([]Provider{primary}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      100 * time.Millisecond,
	}, logger)

	resp, err := manager.GenerateContent(context.Background(), UserPrompt("Hello"))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "primary" {
		t.Errorf("Expected provider name 'primary', got: %s", resp.ProviderName)
	}
	if primary.calls() != 1 {
		t.Errorf("Expected primary provider to be called once, got: %d", primary.calls())
	}
	if len(logger.infoMessages) != 1 || len(logger.warnMessages) != 0 {
		t.Fatalf("Expected 1 info and 0 warn logs, got %d and %d", len(logger.infoMessages), len(logger.warnMessages))
	}
	want := "provider=primary model=primary-model input_tokens=100 output_tokens=50"
	if !strings.Contains(logger.infoMessages[0], want) {
		t.Errorf("success log %q should contain %q", logger.infoMessages[0], want)
	}
}

func TestGenerateContent_FallbackToSecondaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", shouldFail: true}
	secondary := &mockProvider{name: "secondary", model: "secondary-model", response: okResponse("secondary")}
	logger := &mockLogger{}

	manager := NewManager([]Provider{primary, secondary}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      10 * time.Millisecond,
	}, logger)

	resp, err := manager.GenerateContent(context.Background(), UserPrompt("Hello"))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "secondary" {
		t.Errorf("Expected provider name 'secondary', got: %s", resp.ProviderName)
	}
	if primary.calls() != 2 {
		t.Errorf("Expected primary provider to be called 2 times, got: %d", primary.calls())
	}
	if secondary.calls() != 1 {
		t.Errorf("Expected secondary provider to be called once, got: %d", secondary.calls())
	}
	if len(logger.infoMessages) != 1 || len(logger.warnMessages) != 1 {
		t.Errorf("Expected 1 info and 1 warn logs, got %d and %d", len(logger.infoMessages), len(logger.warnMessages))
	}
}

func TestGenerateContent_AllProvidersFail(t *testing.T) {
	primary := &mockProvider{name: "primary", shouldFail: true}
	secondary := &mockProvider{name: "secondary", shouldFail: true}
	logger := &mockLogger{}

	manager := NewManager([]Provider{primary, secondary}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      10 * time.Millisecond,
	}, logger)

	resp, err := manager.GenerateContent(context.Background(), UserPrompt("Hello"))
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("Expected ErrAllProvidersFailed, got: %v", err)
	}
	if resp != nil {
		t.Errorf("Expected nil response, got: %v", resp)
	}
	if primary.calls() != 2 || secondary.calls() != 2 {
		t.Errorf("Expected 2 calls each, got %d and %d", primary.calls(), secondary.calls())
	}
	if len(logger.warnMessages) != 2 {
		t.Errorf("Expected 2 warn log messages, got: %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_NoFallbackWhenDisabled(t *testing.T) {
	primary := &mockProvider{name: "primary", shouldFail: true}
	secondary := &mockProvider{name: "secondary", response: okResponse("secondary")}

	manager := NewManager([]Provider{primary, secondary}, &Config{
		FallbackEnabled: false,
		RetryAttempts:   2,
		RetryDelay:      10 * time.Millisecond,
	}, &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), UserPrompt("Hello"))
	if err == nil {
		t.Fatal("Expected error when primary fails and fallback is disabled, got nil")
	}
	if resp != nil {
		t.Errorf("Expected nil response, got: %v", resp)
	}

	var perr *ProviderError
	if !errors.As(err, &perr) || perr.Provider != "primary" {
		t.Errorf("Expected ProviderError for primary, got: %v", err)
	}
	if secondary.calls() != 0 {
		t.Errorf("Expected secondary provider to NOT be called, got: %d calls", secondary.calls())
	}
}

func TestGenerateContent_NoProvidersConfigured(t *testing.T) {
	manager := NewManager([]Provider{}, DefaultConfig(), &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), UserPrompt("Hello"))
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got: %v", err)
	}
	if resp != nil {
		t.Errorf("Expected nil response, got: %v", resp)
	}
}

func TestGenerateContent_GlobalTimeout(t *testing.T) {
	slow := &mockProvider{name: "slow", delay: time.Second, response: okResponse("slow")}
	next := &mockProvider{name: "next", response: okResponse("next")}

	manager := NewManager([]Provider{slow, next}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   1,
		MaxTotalTimeout: 20 * time.Millisecond,
	}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), UserPrompt("Hello"))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Expected deadline exceeded, got: %v", err)
	}
	if next.calls() != 0 {
		t.Errorf("Expected next provider to be skipped after timeout, got %d calls", next.calls())
	}
}

func TestNewManager_Defaults(t *testing.T) {
	m := NewManager(nil, nil, &mockLogger{})
	if m.config.RetryAttempts != 1 || m.config.MaxTotalTimeout != 60*time.Second {
		t.Errorf("unexpected default config %+v", m.config)
	}

	m = NewManager(nil, &Config{RetryAttempts: 0}, &mockLogger{})
	if m.config.RetryAttempts != 1 {
		t.Errorf("RetryAttempts should be clamped to 1, got %d", m.config.RetryAttempts)
	}
}

func TestGenerateContent_InvalidRequest(t *testing.T) {
	primary := &mockProvider{name: "primary", response: okResponse("primary")}
	manager := NewManager([]Provider{primary}, DefaultConfig(), &mockLogger{})

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "nil request", req: nil},
		{name: "no messages", req: &Request{SystemInstruction: "be brief"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := manager.GenerateContent(context.Background(), tt.req); !errors.Is(err, ErrInvalidRequest) {
				t.Errorf("Expected ErrInvalidRequest, got: %v", err)
			}
		})
	}
	if primary.calls() != 0 {
		t.Errorf("Expected no provider calls, got %d", primary.calls())
	}
}

func TestGenerateContent_RateLimitedSkipsRetries(t *testing.T) {
	limited := &mockProvider{name: "limited", failWith: fmt.Errorf("%w: slow down", ErrProviderRateLimited)}
	next := &mockProvider{name: "next", response: okResponse("next")}
	logger := &mockLogger{}

	manager := NewManager([]Provider{limited, next}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      10 * time.Millisecond,
	}, logger)

	resp, err := manager.GenerateContent(context.Background(), UserPrompt("Hello"))
	if err != nil {
		t.Fatalf("Expected fallback to succeed, got: %v", err)
	}
	if resp.ProviderName != "next" {
		t.Errorf("Expected provider 'next', got %s", resp.ProviderName)
	}
	if limited.calls() != 1 {
		t.Errorf("Expected rate-limited provider to be called once, got %d", limited.calls())
	}
	if len(logger.warnMessages) != 1 || !strings.Contains(logger.warnMessages[0], "provider=limited") {
		t.Errorf("unexpected warn logs %v", logger.warnMessages)
	}
}

type closingProvider struct {
	mockProvider
	closed bool
	err    error
}

func (c *closingProvider) Close() error {
	c.closed = true
	return c.err
}

func TestManagerClose(t *testing.T) {
	plain := &mockProvider{name: "plain"}
	sdk := &closingProvider{mockProvider: mockProvider{name: "sdk"}}
	broken := &closingProvider{mockProvider: mockProvider{name: "broken"}, err: errors.New("boom")}

	err := NewManager([]Provider{plain, sdk, broken}, nil, &mockLogger{}).Close()
	if !sdk.closed || !broken.closed {
		t.Error("Expected closable providers to be closed")
	}
	if err == nil || !strings.Contains(err.Error(), "close broken") {
		t.Errorf("Expected close error naming the provider, got %v", err)
	}
}
