package datemath

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// dueDateLayouts are the formats the document-ingestion pipeline is
// known to emit for assignment/exam due dates, tried in order.
var dueDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"01/02/2006",
	"1/2/2006",
	"2006/01/02",
}

// Parser resolves free-text due-date strings into absolute times and
// provides the calendar arithmetic used by the deadline engine.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "America/Toronto"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// ParseDue converts a due-date string into an absolute time in the
// parser's timezone. The literal string "null" and the empty string are
// treated as absent. Returns false when the string cannot be resolved.
func (p *Parser) ParseDue(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "null") {
		return time.Time{}, false
	}

	for _, layout := range dueDateLayouts {
		t, err := time.ParseInLocation(layout, raw, p.location)
		if err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// WeekAnchor returns local midnight of the preceding (or same) Sunday.
// It is the grouping key for calendar-week bucketing.
func (p *Parser) WeekAnchor(t time.Time) time.Time {
	day := p.StartOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// TomorrowWindow returns the 24-hour window starting at tomorrow 00:00
// local. The end bound runs a literal 24 hours from that midnight, so
// around DST transitions it can reach into the day after tomorrow;
// callers depend on this exact window.
func (p *Parser) TomorrowWindow(now time.Time) (time.Time, time.Time) {
	start := p.StartOfDay(now).AddDate(0, 0, 1)
	return start, start.Add(24 * time.Hour)
}

// WholeDaysUntil returns the number of whole days between now and t,
// rounding partial days up: a deadline 30 hours out is 2 days away.
// Past times yield negative values.
func (p *Parser) WholeDaysUntil(now, t time.Time) int {
	hours := t.Sub(now).Hours()
	if hours < 0 {
		return -int(math.Ceil(-hours / 24))
	}
	return int(math.Ceil(hours / 24))
}
