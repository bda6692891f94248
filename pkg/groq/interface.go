package groq

import "context"

// IGroq defines the interface for an OpenAI-compatible chat and transcription client.
// Implementations are safe for concurrent use.
type IGroq interface {
	// Chat sends a chat completion request and returns the first choice.
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)

	// Transcribe uploads an audio file to /audio/transcriptions.
	Transcribe(ctx context.Context, req TranscriptionRequest) (*TranscriptionResponse, error)

	// Model returns the chat model being used
	Model() string
}

// New creates a new client with the given configuration
func New(cfg Config) (IGroq, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGroqImpl(cfg), nil
}
