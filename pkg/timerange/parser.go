package timerange

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Parser extracts time ranges and schedule lines from model-generated text.
// All parsed clocks are anchored to "today" in the parser's location.
type Parser struct {
	location *time.Location
	now      func() time.Time
}

// NewParser creates a parser for the given IANA timezone ("Local" uses the process zone).
func NewParser(timezone string) (*Parser, error) {
	if timezone == "" {
		timezone = "Local"
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc, now: time.Now}, nil
}

// SetNow overrides the clock used to determine "today".
func (p *Parser) SetNow(now func() time.Time) {
	p.now = now
}

// ExtractOverallRange returns the FIRST "H:MM am - H:MM pm" range in text.
// Later ranges are ignored, so for a full schedule this is the first task's slot.
func (p *Parser) ExtractOverallRange(text string) Range {
	m := rangePattern.FindStringSubmatch(text)
	if m == nil {
		return Range{}
	}

	today := p.today()
	start, err := combine(today, m[1])
	if err != nil {
		return Range{}
	}
	end, err := combine(today, m[2])
	if err != nil {
		return Range{}
	}
	return Range{Start: start, End: end, OK: true}
}

// ParseToRows returns every "H:MM am - H:MM am: Task" match in order.
// Malformed lines are skipped, never reported.
func (p *Parser) ParseToRows(text string) []Line {
	matches := linePattern.FindAllStringSubmatch(text, -1)
	lines := make([]Line, 0, len(matches))

	today := p.today()
	for _, m := range matches {
		start, err := combine(today, m[1])
		if err != nil {
			continue
		}
		end, err := combine(today, m[2])
		if err != nil {
			continue
		}
		lines = append(lines, Line{
			Start: start,
			End:   end,
			Task:  strings.TrimSuffix(m[3], "\r"),
		})
	}
	return lines
}

// FormatRange renders r as "start → end", or NotAvailable.
func FormatRange(r Range) string {
	if !r.OK {
		return NotAvailable
	}
	return r.Start.Format(DisplayLayout) + " → " + r.End.Format(DisplayLayout)
}

func (p *Parser) today() time.Time {
	t := p.now().In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// combine parses a "H:MM am" clock and places it on day.
func combine(day time.Time, clock string) (time.Time, error) {
	hour, minute, err := parseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location()), nil
}

// parseClock converts "H:MM am|pm" into a 24-hour hour and minute.
// Hours must be 1-12 and minutes 00-59.
func parseClock(clock string) (int, int, error) {
	clock = strings.ToLower(strings.TrimSpace(clock))

	hm, marker, ok := strings.Cut(clock, " ")
	if !ok {
		return 0, 0, fmt.Errorf("invalid clock %q", clock)
	}
	hs, ms, ok := strings.Cut(hm, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid clock %q", clock)
	}

	hour, err := strconv.Atoi(hs)
	if err != nil || hour < 1 || hour > 12 {
		return 0, 0, fmt.Errorf("invalid hour in %q", clock)
	}
	minute, err := strconv.Atoi(ms)
	if err != nil || len(ms) != 2 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", clock)
	}

	switch marker {
	case "am":
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour != 12 {
			hour += 12
		}
	default:
		return 0, 0, fmt.Errorf("invalid marker in %q", clock)
	}
	return hour, minute, nil
}
