// Package dispatch decides whether an order placed now ships today.
package dispatch

import "time"

const (
	TextSameDay = "오늘 출고 가능(정산완료 기준)"
	TextNextDay = "익일 출고(정산완료 기준)"
)

// Cutoff is the daily dispatch deadline in the warehouse's time zone. Orders
// settled up to hh:00 exactly ship the same day.
type Cutoff struct {
	hour int
	loc  *time.Location
	now  func() time.Time
}

// NewCutoff creates a cutoff at hour in loc. A nil now uses time.Now.
func NewCutoff(hour int, loc *time.Location, now func() time.Time) *Cutoff {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &Cutoff{hour: hour, loc: loc, now: now}
}

// SameDay reports whether t is before the cutoff.
func (c *Cutoff) SameDay(t time.Time) bool {
	t = t.In(c.loc)
	h, m := t.Hour(), t.Minute()
	return h < c.hour || (h == c.hour && m == 0)
}

// Text returns the dispatch notice for the current time.
func (c *Cutoff) Text() string {
	if c.SameDay(c.now()) {
		return TextSameDay
	}
	return TextNextDay
}
