package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"os"
	"path/filepath"
)

func newGroqImpl(cfg Config) *groqImpl {
	return &groqImpl{
		name:               cfg.Name,
		apiKey:             cfg.APIKey,
		baseURL:            cfg.BaseURL,
		model:              cfg.Model,
		transcriptionModel: cfg.TranscriptionModel,
		httpClient:         cfg.HTTPClient,
	}
}

// Chat sends a chat completion request
func (g *groqImpl) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	model := req.Model
	if model == "" {
		model = g.model
	}

	body, err := json.Marshal(chatRequest{
		Model:       model,
		Messages:    req.Messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to marshal request: %w", g.name, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create request: %w", g.name, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	var resp chatResponse
	if err := g.do(httpReq, &resp); err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%s: response has no choices", g.name)
	}

	choice := resp.Choices[0]
	return &ChatResponse{
		Content:      choice.Message.Content,
		FinishReason: choice.FinishReason,
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Transcribe uploads the audio file as multipart form data
func (g *groqImpl) Transcribe(ctx context.Context, req TranscriptionRequest) (*TranscriptionResponse, error) {
	f, err := os.Open(req.FilePath)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open audio: %w", g.name, err)
	}
	defer f.Close()

	model := req.Model
	if model == "" {
		model = g.transcriptionModel
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filepath.Base(req.FilePath))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create form file: %w", g.name, err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("%s: failed to read audio: %w", g.name, err)
	}

	fields := map[string]string{
		"model":           model,
		"response_format": "json",
		"language":        req.Language,
		"prompt":          req.Prompt,
	}
	for k, v := range fields {
		if v == "" {
			continue
		}
		if err := w.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("%s: failed to write field %s: %w", g.name, k, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%s: failed to close form: %w", g.name, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/audio/transcriptions", &buf)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create request: %w", g.name, err)
	}
	httpReq.Header.Set("Content-Type", w.FormDataContentType())

	var resp transcriptionResponse
	if err := g.do(httpReq, &resp); err != nil {
		return nil, err
	}

	return &TranscriptionResponse{
		Text:     resp.Text,
		Language: resp.Language,
		Duration: resp.Duration,
	}, nil
}

// Model returns the chat model being used
func (g *groqImpl) Model() string {
	return g.model
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func (g *groqImpl) do(httpReq *http.Request, out interface{}) error {
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			return fmt.Errorf("%s: %w: %v", g.name, ErrTimeout, err)
		}
		return fmt.Errorf("%s: API call failed: %w", g.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		msg := string(bodyBytes)
		var apiErr apiError
		if json.Unmarshal(bodyBytes, &apiErr) == nil && apiErr.Error.Message != "" {
			msg = apiErr.Error.Message
		}
		if resp.StatusCode == http.StatusTooManyRequests {
			return fmt.Errorf("%s: %w: %s", g.name, ErrRateLimited, msg)
		}
		return fmt.Errorf("%s: API error %d: %s", g.name, resp.StatusCode, msg)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", g.name, err)
	}
	return nil
}
