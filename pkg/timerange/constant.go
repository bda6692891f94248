package timerange

import "regexp"

const (
	// DisplayLayout formats range endpoints for humans.
	DisplayLayout = "2006-01-02 15:04:05"

	// NotAvailable is shown when a schedule has no parsable range.
	NotAvailable = "N/A"
)

var (
	rangePattern = regexp.MustCompile(`(?i)(\d{1,2}:\d{2} [ap]m)\s*-\s*(\d{1,2}:\d{2} [ap]m)`)
	linePattern  = regexp.MustCompile(`(?i)(\d{1,2}:\d{2} [ap]m)\s*-\s*(\d{1,2}:\d{2} [ap]m):\s*(.+)`)
)
