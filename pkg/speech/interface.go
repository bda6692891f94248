package speech

import "context"

// Transcriber turns a recorded audio file into text.
// Implementations are safe for concurrent use.
type Transcriber interface {
	// TranscribeFile recognises speech in the audio file at path.
	TranscribeFile(ctx context.Context, path string) (Result, error)

	// Name returns the provider name (e.g., "groq", "google")
	Name() string

	// Close releases provider resources.
	Close() error
}
