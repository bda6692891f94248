package schedule

import "daily-planner/pkg/timerange"

// Phase is the edit-lock phase of a stored schedule.
type Phase string

const (
	PhaseEmpty  Phase = "empty"
	PhaseSet    Phase = "set"
	PhaseLocked Phase = "locked"
)

// SubmitStatus tells the caller what an accepted submission did.
type SubmitStatus string

const (
	// StatusStored means the first schedule was stored; one edit remains.
	StatusStored SubmitStatus = "stored"
	// StatusFinalEdit means the schedule was overwritten and is now locked.
	StatusFinalEdit SubmitStatus = "final_edit"
)

// State is the single stored schedule plus its edit-lock flag.
type State struct {
	FinalSchedule string `json:"final_schedule"`
	HasSchedule   bool   `json:"has_schedule"`
	HasEdited     bool   `json:"has_edited"`
}

// Phase derives the lock phase from the flags.
func (s State) Phase() Phase {
	switch {
	case !s.HasSchedule:
		return PhaseEmpty
	case s.HasEdited:
		return PhaseLocked
	default:
		return PhaseSet
	}
}

// Locked reports whether further submissions are rejected.
func (s State) Locked() bool {
	return s.Phase() == PhaseLocked
}

// Submit applies one submission to s and returns the next state.
// EMPTY -> SET stores the text, SET -> LOCKED overwrites it, LOCKED rejects
// with ErrScheduleLocked and leaves s unchanged.
func (s State) Submit(candidate string) (State, SubmitStatus, error) {
	switch s.Phase() {
	case PhaseEmpty:
		return State{FinalSchedule: candidate, HasSchedule: true}, StatusStored, nil
	case PhaseSet:
		return State{FinalSchedule: candidate, HasSchedule: true, HasEdited: true}, StatusFinalEdit, nil
	default:
		return s, "", ErrScheduleLocked
	}
}

// --- UseCase Inputs ---

// SubmitInput carries either an audio file path or free text. Audio wins when both are set.
type SubmitInput struct {
	AudioPath string
	Text      string
}

// --- UseCase Outputs ---

// SubmitOutput is the result of an accepted submission.
type SubmitOutput struct {
	ID            string
	Transcription string
	Schedule      string
	Status        SubmitStatus
	Message       string
	Range         timerange.Range
	Rows          []timerange.Line
}

// CurrentOutput describes the stored schedule.
type CurrentOutput struct {
	State State
	Phase Phase
	Range timerange.Range
	Rows  []timerange.Line
}
