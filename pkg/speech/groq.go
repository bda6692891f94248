package speech

import (
	"context"
	"fmt"
	"strings"

	"daily-planner/pkg/groq"
)

type groqTranscriber struct {
	client   groq.IGroq
	language string
}

// NewGroq creates a Transcriber backed by the Groq whisper endpoint.
func NewGroq(client groq.IGroq, language string) Transcriber {
	return &groqTranscriber{client: client, language: language}
}

func (t *groqTranscriber) TranscribeFile(ctx context.Context, path string) (Result, error) {
	if path == "" {
		return Result{}, ErrEmptyPath
	}

	resp, err := t.client.Transcribe(ctx, groq.TranscriptionRequest{
		FilePath: path,
		Language: t.language,
	})
	if err != nil {
		return Result{}, fmt.Errorf("speech.groq: %w", err)
	}

	return Result{Text: strings.TrimSpace(resp.Text), Language: resp.Language}, nil
}

func (t *groqTranscriber) Name() string {
	return ProviderGroq
}

func (t *groqTranscriber) Close() error {
	return nil
}
