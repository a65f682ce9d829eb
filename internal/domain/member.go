package domain

import "time"

// Member is one club member: identity, financial standing, the sports they
// are registered for and the bookings they currently hold.
type Member struct {
	ID        int64
	Name      string
	Financial bool

	sportsPlayed []string
	bookings     []*Booking
}

func NewMember(id int64, name string, financial bool, sportsPlayed []string) *Member {
	return &Member{
		ID:           id,
		Name:         name,
		Financial:    financial,
		sportsPlayed: sportsPlayed,
	}
}

// HasBookingOnDate reports whether the member already holds a booking on
// the given calendar date. The registry uses this to enforce the
// one-booking-per-day rule.
func (m *Member) HasBookingOnDate(date time.Time) bool {
	return m.BookingOn(date) != nil
}

// BookingOn returns the member's booking on date, or nil.
func (m *Member) BookingOn(date time.Time) *Booking {
	for _, b := range m.bookings {
		if SameDay(b.Date, date) {
			return b
		}
	}
	return nil
}

// FindBooking returns the booking matching (date, start), or nil.
func (m *Member) FindBooking(date, start time.Time) *Booking {
	for _, b := range m.bookings {
		if SameDay(b.Date, date) && b.Start.Equal(start) {
			return b
		}
	}
	return nil
}

// Attach records an existing booking against the member. The record is
// shared with the court that allocated it, never copied.
func (m *Member) Attach(b *Booking) {
	m.bookings = append(m.bookings, b)
}

// RemoveBooking removes the first booking matching (date, start) and
// reports whether a removal occurred. The court id is not part of the
// member-side match key.
func (m *Member) RemoveBooking(date, start time.Time) bool {
	for i, b := range m.bookings {
		if SameDay(b.Date, date) && b.Start.Equal(start) {
			m.bookings = append(m.bookings[:i], m.bookings[i+1:]...)
			return true
		}
	}
	return false
}

func (m *Member) PlaysSport(name string) bool {
	for _, s := range m.sportsPlayed {
		if s == name {
			return true
		}
	}
	return false
}

// SportsPlayed returns the sports the member is registered for.
func (m *Member) SportsPlayed() []string {
	out := make([]string, len(m.sportsPlayed))
	copy(out, m.sportsPlayed)
	return out
}

// Bookings returns the member's bookings in stored order.
func (m *Member) Bookings() []*Booking {
	out := make([]*Booking, len(m.bookings))
	copy(out, m.bookings)
	return out
}

// UpcomingBookings returns bookings dated today or later.
func (m *Member) UpcomingBookings(now time.Time) []*Booking {
	today := Day(now)
	out := make([]*Booking, 0, len(m.bookings))
	for _, b := range m.bookings {
		if !b.Date.Before(today) {
			out = append(out, b)
		}
	}
	return out
}
