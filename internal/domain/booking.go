package domain

import (
	"fmt"
	"time"
)

// Booking is a single reservation of a court by a member. The same record is
// referenced from both the court's and the member's booking lists, so there
// is exactly one copy of every booking in memory.
type Booking struct {
	ID       int64     `json:"id"`
	MemberID int64     `json:"member_id"`
	CourtID  int64     `json:"court_id"`
	Date     time.Time `json:"date"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

func (b *Booking) Range() TimeRange {
	return TimeRange{Date: b.Date, Start: b.Start, End: b.End}
}

func (b *Booking) String() string {
	return fmt.Sprintf("| %3d | %5d | %s | %s | %s |",
		b.MemberID, b.CourtID,
		b.Date.Format("2006-01-02"),
		b.Start.Format("15:04"),
		b.End.Format("15:04"))
}

// TimeRange is a date plus a start and end instant on that date. Immutable
// once constructed.
type TimeRange struct {
	Date  time.Time
	Start time.Time
	End   time.Time
}

func NewTimeRange(date, start, end time.Time) TimeRange {
	return TimeRange{Date: Day(date), Start: start, End: end}
}

// Overlaps reports whether two ranges on the same date intersect, treating
// ranges as half-open intervals [start, end). Equal boundary instants do not
// overlap, so back-to-back bookings are allowed.
func (r TimeRange) Overlaps(o TimeRange) bool {
	if !SameDay(r.Date, o.Date) {
		return false
	}
	return r.Start.Before(o.End) && o.Start.Before(r.End)
}

// Day truncates t to midnight UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
