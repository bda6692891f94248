package gemini

import (
	"fmt"

	"github.com/google/generative-ai-go/genai"
)

// Config holds Gemini client configuration
type Config struct {
	APIKey string
	Model  string
	// Endpoint overrides the API host, mainly for proxies.
	Endpoint string
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("gemini: APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	return nil
}

type geminiImpl struct {
	client *genai.Client
	model  string
}

// Request is a single-turn generation request.
type Request struct {
	SystemInstruction string
	Prompt            string
	Temperature       float32
	MaxTokens         int32
}

// Response is the text of the first candidate.
type Response struct {
	Text         string
	FinishReason string
	Usage        Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
