package domain

import "time"

// Sport is one activity offered by the club and the set of courts it is
// played on. Court IDs within a sport are unique; the court list is fixed
// at construction.
type Sport struct {
	Name         string
	UsageFee     float64
	InsuranceFee float64

	// MaxDuration caps a single booking's length; zero means unbounded.
	MaxDuration time.Duration

	// Sport-specific extras, nil when not applicable.
	NetHeight       *float64
	RacketsProvided *bool

	courts []*Court
}

func NewSport(name string, usageFee, insuranceFee float64, maxDuration time.Duration, courtIDs []int64) *Sport {
	s := &Sport{
		Name:         name,
		UsageFee:     usageFee,
		InsuranceFee: insuranceFee,
		MaxDuration:  maxDuration,
	}
	for _, id := range courtIDs {
		s.courts = append(s.courts, NewCourt(id))
	}
	return s
}

// Allocate reserves the first court in stored order that is free in the
// window and returns the committed booking, or nil when every court is
// taken. First-fit by list position, no load balancing.
func (s *Sport) Allocate(memberID int64, date, start, end time.Time) *Booking {
	for _, c := range s.courts {
		if b := c.TryReserve(memberID, date, start, end); b != nil {
			return b
		}
	}
	return nil
}

// AttachKnown writes a booking straight onto the named court, bypassing the
// availability check. Used when reloading from storage.
func (s *Sport) AttachKnown(courtID int64, b *Booking) bool {
	c := s.CourtByID(courtID)
	if c == nil {
		return false
	}
	c.Attach(b)
	return true
}

// Release removes the booking matching the identity tuple from the named
// court and reports whether a removal occurred.
func (s *Sport) Release(memberID, courtID int64, date, start time.Time) bool {
	c := s.CourtByID(courtID)
	if c == nil {
		return false
	}
	return c.RemoveBooking(memberID, date, start)
}

func (s *Sport) HasCourt(courtID int64) bool {
	return s.CourtByID(courtID) != nil
}

func (s *Sport) CourtByID(courtID int64) *Court {
	for _, c := range s.courts {
		if c.ID == courtID {
			return c
		}
	}
	return nil
}

// AnyCourtAvailable reports whether at least one court is free in the
// window, without committing anything.
func (s *Sport) AnyCourtAvailable(date, start, end time.Time) bool {
	for _, c := range s.courts {
		if c.IsAvailable(date, start, end) {
			return true
		}
	}
	return false
}

// Courts returns the sport's courts in stored order.
func (s *Sport) Courts() []*Court {
	out := make([]*Court, len(s.courts))
	copy(out, s.courts)
	return out
}
