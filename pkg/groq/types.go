package groq

import (
	"fmt"
	"net/http"
)

// Config holds client configuration for Groq or any OpenAI-compatible endpoint.
type Config struct {
	APIKey             string
	Model              string
	TranscriptionModel string
	BaseURL            string
	// Name prefixes errors so OpenAI, DeepSeek and Qwen endpoints stay distinguishable in logs.
	Name       string
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults.
func (c *Config) Validate() error {
	if c.Name == "" {
		c.Name = "groq"
	}
	if c.APIKey == "" {
		return fmt.Errorf("%s: APIKey is required", c.Name)
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.TranscriptionModel == "" {
		c.TranscriptionModel = DefaultTranscriptionModel
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

type groqImpl struct {
	name               string
	apiKey             string
	baseURL            string
	model              string
	transcriptionModel string
	httpClient         *http.Client
}

// Message is one chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is a chat completion request. Model falls back to the client default.
type ChatRequest struct {
	Model       string
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// ChatResponse carries the first choice of a chat completion.
type ChatResponse struct {
	Content      string
	FinishReason string
	Usage        Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// TranscriptionRequest describes an audio file to transcribe.
type TranscriptionRequest struct {
	FilePath string
	Model    string
	Language string
	Prompt   string
}

// TranscriptionResponse is the recognised text.
type TranscriptionResponse struct {
	Text     string
	Language string
	Duration float64
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	ID      string       `json:"id"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
	Usage   chatUsage    `json:"usage"`
}

type chatChoice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type transcriptionResponse struct {
	Text     string  `json:"text"`
	Language string  `json:"language"`
	Duration float64 `json:"duration"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
