package llmprovider

import (
	"context"

	"daily-planner/pkg/gemini"
	"daily-planner/pkg/groq"
)

// ChatAdapter adapts pkg/groq to the Provider interface. It serves every
// OpenAI-compatible endpoint, so name distinguishes Groq, OpenAI, DeepSeek and Qwen.
type ChatAdapter struct {
	name   string
	client groq.IGroq
}

// NewChatAdapter creates a new OpenAI-compatible adapter
func NewChatAdapter(name string, client groq.IGroq) *ChatAdapter {
	return &ChatAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *ChatAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.Chat(ctx, toChatRequest(req))
	if err != nil {
		return nil, classify(err)
	}

	return &Response{
		Text:         resp.Content,
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *ChatAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *ChatAdapter) Model() string {
	return a.client.Model()
}

func toChatRequest(req *Request) groq.ChatRequest {
	out := groq.ChatRequest{
		Messages:    make([]groq.Message, 0, len(req.Messages)+1),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != "" {
		out.Messages = append(out.Messages, groq.Message{Role: RoleSystem, Content: req.SystemInstruction})
	}
	for _, m := range req.Messages {
		out.Messages = append(out.Messages, groq.Message{Role: m.Role, Content: m.Text})
	}
	return out
}

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface. Gemini is called single-turn,
// so conversation messages are joined into one prompt.
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, toGeminiRequest(req))
	if err != nil {
		return nil, classify(err)
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: ProviderGemini,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return ProviderGemini
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// Close releases the underlying SDK client.
func (a *GeminiAdapter) Close() error {
	return a.client.Close()
}

func toGeminiRequest(req *Request) *gemini.Request {
	prompt := ""
	for i, m := range req.Messages {
		if i > 0 {
			prompt += "\n\n"
		}
		prompt += m.Text
	}
	return &gemini.Request{
		SystemInstruction: req.SystemInstruction,
		Prompt:            prompt,
		Temperature:       float32(req.Temperature),
		MaxTokens:         int32(req.MaxTokens),
	}
}
