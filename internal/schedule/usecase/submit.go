package usecase

import (
	"context"
	"fmt"
	"strings"

	"daily-planner/internal/schedule"
	"daily-planner/pkg/llmprovider"
)

// Submit turns audio or text into a schedule and stores it under the edit-lock rules.
// A locked schedule is rejected before any external call is made.
func (uc *implUseCase) Submit(ctx context.Context, input schedule.SubmitInput) (schedule.SubmitOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	state, err := uc.repo.GetState(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Submit GetState: %v", err)
		return schedule.SubmitOutput{}, err
	}
	if state.Locked() {
		return schedule.SubmitOutput{}, schedule.ErrScheduleLocked
	}

	audioPath := strings.TrimSpace(input.AudioPath)
	text := strings.TrimSpace(input.Text)
	if audioPath == "" && text == "" {
		return schedule.SubmitOutput{}, schedule.ErrNoInput
	}

	var transcription string
	if audioPath != "" {
		res, err := uc.transcriber.TranscribeFile(ctx, audioPath)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Submit TranscribeFile: %v", err)
			return schedule.SubmitOutput{}, fmt.Errorf("%w: %v", schedule.ErrExternalService, err)
		}
		transcription = res.Text
		text = res.Text
	}

	scheduleText, err := uc.complete(ctx, text)
	if err != nil {
		return schedule.SubmitOutput{}, err
	}

	overall := uc.parser.ExtractOverallRange(scheduleText)

	_, status, err := uc.repo.Submit(ctx, scheduleText)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Submit repo.Submit: %v", err)
		return schedule.SubmitOutput{}, err
	}

	out := schedule.SubmitOutput{
		ID:            uc.newID(),
		Transcription: transcription,
		Schedule:      scheduleText,
		Status:        status,
		Range:         overall,
		Rows:          uc.parser.ParseToRows(scheduleText),
	}
	switch status {
	case schedule.StatusFinalEdit:
		out.Message = schedule.MessageFinalEdit
	default:
		out.Message = schedule.MessageStored
	}

	uc.l.Infof(ctx, "uc.Submit: id=%s status=%s rows=%d", out.ID, out.Status, len(out.Rows))
	return out, nil
}

// complete asks the LLM for a schedule and returns the trimmed reply.
func (uc *implUseCase) complete(ctx context.Context, description string) (string, error) {
	resp, err := uc.llm.GenerateContent(ctx, llmprovider.UserPrompt(schedule.BuildPrompt(description)))
	if err != nil {
		uc.l.Errorf(ctx, "uc.complete GenerateContent: %v", err)
		return "", fmt.Errorf("%w: %v", schedule.ErrExternalService, err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", fmt.Errorf("%w: %w", schedule.ErrExternalService, schedule.ErrEmptyCompletion)
	}
	return text, nil
}
