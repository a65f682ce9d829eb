package domain

import "time"

// Operating window for all courts: bookings run between 09:00 and 22:00,
// with the last permitted start at 21:00.
const (
	OpenHour      = 9
	CloseHour     = 22
	LastStartHour = 21
)

// Court is one physical court with its ordered list of bookings. No two
// bookings on a court may overlap on the same date.
type Court struct {
	ID       int64
	bookings []*Booking
}

func NewCourt(id int64) *Court {
	return &Court{ID: id}
}

// IsAvailable reports whether no existing booking on date overlaps
// [start, end). An empty booking list is trivially available.
func (c *Court) IsAvailable(date, start, end time.Time) bool {
	want := NewTimeRange(date, start, end)
	for _, b := range c.bookings {
		if b.Range().Overlaps(want) {
			return false
		}
	}
	return true
}

// TryReserve re-checks availability and appends a new booking in one step.
// It returns the booking record, or nil if the slot is taken.
func (c *Court) TryReserve(memberID int64, date, start, end time.Time) *Booking {
	if !c.IsAvailable(date, start, end) {
		return nil
	}
	b := &Booking{
		MemberID: memberID,
		CourtID:  c.ID,
		Date:     Day(date),
		Start:    start,
		End:      end,
	}
	c.bookings = append(c.bookings, b)
	return b
}

// Attach appends an existing booking record without an availability check.
// Used when reloading bookings whose court is already known.
func (c *Court) Attach(b *Booking) {
	b.CourtID = c.ID
	c.bookings = append(c.bookings, b)
}

// FindBooking returns the booking matching the (memberID, date, start)
// identity tuple, or nil.
func (c *Court) FindBooking(memberID int64, date, start time.Time) *Booking {
	for _, b := range c.bookings {
		if b.MemberID == memberID && SameDay(b.Date, date) && b.Start.Equal(start) {
			return b
		}
	}
	return nil
}

// RemoveBooking removes the first booking matching the identity tuple and
// reports whether a removal occurred.
func (c *Court) RemoveBooking(memberID int64, date, start time.Time) bool {
	for i, b := range c.bookings {
		if b.MemberID == memberID && SameDay(b.Date, date) && b.Start.Equal(start) {
			c.bookings = append(c.bookings[:i], c.bookings[i+1:]...)
			return true
		}
	}
	return false
}

// Bookings returns the court's bookings in stored order.
func (c *Court) Bookings() []*Booking {
	out := make([]*Booking, len(c.bookings))
	copy(out, c.bookings)
	return out
}

// UpcomingBookings returns bookings dated today or later.
func (c *Court) UpcomingBookings(now time.Time) []*Booking {
	today := Day(now)
	out := make([]*Booking, 0, len(c.bookings))
	for _, b := range c.bookings {
		if !b.Date.Before(today) {
			out = append(out, b)
		}
	}
	return out
}

// AvailabilityGrid reports, for each one-hour bucket of the operating
// window on date, whether the court is free for that whole hour. This is a
// display aid; bookings themselves may straddle bucket boundaries.
func (c *Court) AvailabilityGrid(date time.Time) []bool {
	day := Day(date)
	grid := make([]bool, 0, CloseHour-OpenHour)
	for h := OpenHour; h < CloseHour; h++ {
		start := day.Add(time.Duration(h) * time.Hour)
		grid = append(grid, c.IsAvailable(day, start, start.Add(time.Hour)))
	}
	return grid
}
