package models

import "time"

// DrawWeek is one ISO week of the schedule.
// Days only ever holds the draw weekdays, keyed by weekday name
// ("Sunday", "Tuesday") with reference-timezone wall-clock timestamps.
// Label and Week carry the ISO week number after rolling into the next ISO
// year, so a lookahead from week 52 reads "Week 52", "Week 1", "Week 2".
type DrawWeek struct {
	Label string            `json:"label"`
	Week  int               `json:"week"`
	Days  map[string]string `json:"days"`
}

// DrawSchedule is the three-week lookahead computed from a reference instant.
type DrawSchedule struct {
	Lottery           string     `json:"lottery"`
	ReferenceTimezone string     `json:"referenceTimezone"`
	Year              int        `json:"year"`
	Week              int        `json:"week"`
	Offset            int        `json:"offset"` // reference instant's GMT offset in seconds
	Weeks             []DrawWeek `json:"weeks"`

	// Next is the earliest draw strictly after the reference instant,
	// expressed in the reference timezone.
	Next       time.Time `json:"next"`
	NextOffset int       `json:"nextOffset"`
}

// NextDraw is the answer to a single query, converted to the caller's timezone.
type NextDraw struct {
	Lottery   string `json:"lottery"`
	Timezone  string `json:"timezone"`
	Reference string `json:"reference"`
	DrawTime  string `json:"drawTime"`
	Line      string `json:"line"`
}
