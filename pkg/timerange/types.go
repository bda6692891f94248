package timerange

import "time"

// Line is one "H:MM am - H:MM am: Task" row parsed from schedule text.
// Start is not guaranteed to precede End; rows are passed through as written.
type Line struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Task  string    `json:"task"`
}

// Range is the display range of a schedule. OK is false when no range was found.
type Range struct {
	Start time.Time
	End   time.Time
	OK    bool
}
