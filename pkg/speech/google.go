package speech

import (
	"context"
	"fmt"
	"os"
	"strings"

	gspeech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"google.golang.org/api/option"
)

type recognizeFunc func(ctx context.Context, req *speechpb.RecognizeRequest) (*speechpb.RecognizeResponse, error)

type googleTranscriber struct {
	cfg       GoogleConfig
	recognize recognizeFunc
	close     func() error
}

// NewGoogle creates a Transcriber backed by Google Cloud Speech-to-Text.
func NewGoogle(ctx context.Context, cfg GoogleConfig) (Transcriber, error) {
	cfg.applyDefaults()

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	client, err := gspeech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("speech.google: failed to create client: %w", err)
	}

	return &googleTranscriber{
		cfg: cfg,
		recognize: func(ctx context.Context, req *speechpb.RecognizeRequest) (*speechpb.RecognizeResponse, error) {
			return client.Recognize(ctx, req)
		},
		close: client.Close,
	}, nil
}

func (t *googleTranscriber) TranscribeFile(ctx context.Context, path string) (Result, error) {
	if path == "" {
		return Result{}, ErrEmptyPath
	}

	audio, err := t.loadLinear16(ctx, path)
	if err != nil {
		return Result{}, err
	}

	resp, err := t.recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:          speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz:   googleSampleRate,
			LanguageCode:      t.cfg.LanguageCode,
			AudioChannelCount: 1,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	})
	if err != nil {
		return Result{}, fmt.Errorf("speech.google: recognition failed: %w", err)
	}

	return Result{Text: joinTranscript(resp), Language: t.cfg.LanguageCode}, nil
}

func (t *googleTranscriber) Name() string {
	return ProviderGoogle
}

func (t *googleTranscriber) Close() error {
	if t.close == nil {
		return nil
	}
	return t.close()
}

// loadLinear16 returns 16 kHz mono PCM wav bytes, converting with ffmpeg when needed.
func (t *googleTranscriber) loadLinear16(ctx context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("speech.google: failed to read audio: %w", err)
	}

	if h, err := parseWaveHeader(data); err == nil && h.isLinear16Mono(googleSampleRate) {
		return data, nil
	}

	converted, err := convertToLinear16(ctx, t.cfg.FFmpegPath, path)
	if err != nil {
		return nil, err
	}
	return converted, nil
}

// joinTranscript keeps the top alternative of every result segment.
func joinTranscript(resp *speechpb.RecognizeResponse) string {
	if resp == nil {
		return ""
	}
	parts := make([]string, 0, len(resp.Results))
	for _, r := range resp.Results {
		if len(r.Alternatives) == 0 {
			continue
		}
		if text := strings.TrimSpace(r.Alternatives[0].Transcript); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}
