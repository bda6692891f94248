package http

import (
	"daily-planner/internal/schedule"
	"daily-planner/pkg/response"
	"daily-planner/pkg/timerange"
)

const notAvailable = timerange.NotAvailable

// --- Request DTOs ---

type submitReq struct {
	Text      string `json:"text" form:"text"`
	AudioPath string `json:"-" form:"-"`
}

func (r submitReq) toInput() schedule.SubmitInput {
	return schedule.SubmitInput{
		AudioPath: r.AudioPath,
		Text:      r.Text,
	}
}

type resetReq struct {
	Password string `json:"password"`
}

type chartReq struct {
	Format string `form:"format"`
}

func (r chartReq) validate() error {
	switch r.Format {
	case "", formatSVG, formatJSON:
		return nil
	default:
		return errInvalidFormat
	}
}

// --- Response DTOs ---

type rowResp struct {
	Task  string            `json:"task"`
	Start response.DateTime `json:"start"`
	End   response.DateTime `json:"end"`
}

func newRowsResp(lines []timerange.Line) []rowResp {
	rows := make([]rowResp, len(lines))
	for i, l := range lines {
		rows[i] = rowResp{Task: l.Task, Start: response.DateTime(l.Start), End: response.DateTime(l.End)}
	}
	return rows
}

type submitResp struct {
	ID            string    `json:"id"`
	Transcription string    `json:"transcription"`
	Schedule      string    `json:"schedule"`
	Status        string    `json:"status"`
	Message       string    `json:"message"`
	TimeRange     string    `json:"time_range"`
	Rows          []rowResp `json:"rows"`
}

func (h *handler) newSubmitResp(out schedule.SubmitOutput) submitResp {
	return submitResp{
		ID:            out.ID,
		Transcription: out.Transcription,
		Schedule:      out.Schedule,
		Status:        string(out.Status),
		Message:       out.Message,
		TimeRange:     timerange.FormatRange(out.Range),
		Rows:          newRowsResp(out.Rows),
	}
}

type currentResp struct {
	Phase     string    `json:"phase"`
	Schedule  string    `json:"schedule"`
	HasEdited bool      `json:"has_edited"`
	TimeRange string    `json:"time_range"`
	Rows      []rowResp `json:"rows"`
}

func (h *handler) newCurrentResp(out schedule.CurrentOutput) currentResp {
	return currentResp{
		Phase:     string(out.Phase),
		Schedule:  out.State.FinalSchedule,
		HasEdited: out.State.HasEdited,
		TimeRange: timerange.FormatRange(out.Range),
		Rows:      newRowsResp(out.Rows),
	}
}
