package groq

import "time"

const (
	// DefaultModel is the chat model used for schedule generation.
	DefaultModel = "llama-3.1-8b-instant"

	// DefaultTranscriptionModel is the speech-to-text model.
	DefaultTranscriptionModel = "whisper-large-v3"

	// DefaultBaseURL is the Groq OpenAI-compatible endpoint.
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second
)
