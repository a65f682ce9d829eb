package club

import (
	"context"
	"fmt"
	"sync"
	"time"

	"clubcourt/internal/domain"
)

// Bookings may be made at most this many days ahead of today.
const maxDaysAhead = 7

// Service is the club's booking registry: it owns the members and sports,
// enforces the business rules, and keeps the court-side and member-side
// views of every booking consistent. A single mutex guards the
// check-then-write sequences because the service is shared across HTTP
// handlers.
type Service struct {
	mu      sync.Mutex
	members []*domain.Member
	sports  []*domain.Sport
	store   BookingStore
	now     func() time.Time
}

func NewService(members []*domain.Member, sports []*domain.Sport, store BookingStore) *Service {
	return &Service{
		members: members,
		sports:  sports,
		store:   store,
		now:     time.Now,
	}
}

// Load populates a registry from the three bulk sources: members with their
// played sports, sports with their courts, and the stored bookings linked
// back into the right court and member.
func Load(ctx context.Context, members MemberSource, sports SportSource, bookings BookingSource, store BookingStore) (*Service, error) {
	ms, err := members.GetAllMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load members: %w", err)
	}
	sps, err := sports.GetAllSports(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sports: %w", err)
	}
	svc := NewService(ms, sps, store)

	bs, err := bookings.GetAllBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}
	for _, b := range bs {
		sport := svc.sportForCourt(b.CourtID)
		if sport == nil {
			return nil, fmt.Errorf("booking %d: %w (court %d)", b.ID, ErrCourtNotFound, b.CourtID)
		}
		member := svc.memberByID(b.MemberID)
		if member == nil {
			return nil, fmt.Errorf("booking %d: %w (member %d)", b.ID, ErrMemberNotFound, b.MemberID)
		}
		sport.AttachKnown(b.CourtID, b)
		member.Attach(b)
	}
	return svc, nil
}

// CreateBooking validates the request against the club's business rules,
// allocates the first free court for the sport, and records the booking on
// both the court and the member. The in-memory mutation is rolled back if
// the store insert fails.
func (s *Service) CreateBooking(ctx context.Context, memberID int64, sportName string, date, start, end time.Time) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	member := s.memberByID(memberID)
	if member == nil {
		return nil, ErrMemberNotFound
	}
	sport := s.sportByName(sportName)
	if sport == nil {
		return nil, ErrSportNotFound
	}

	if !member.Financial {
		return nil, ErrNotFinancial
	}
	if !member.PlaysSport(sport.Name) {
		return nil, ErrNotRegisteredForSport
	}
	if err := s.validDate(date, member); err != nil {
		return nil, err
	}
	if err := validStart(start); err != nil {
		return nil, err
	}
	if err := validEnd(start, end, sport); err != nil {
		return nil, err
	}

	b := sport.Allocate(memberID, date, start, end)
	if b == nil {
		return nil, ErrNoCourtAvailable
	}
	// The exact record the court materialized, not a copy.
	member.Attach(b)

	if err := s.store.Insert(ctx, b); err != nil {
		sport.Release(memberID, b.CourtID, date, start)
		member.RemoveBooking(date, start)
		return nil, fmt.Errorf("persist booking: %w", err)
	}
	return b, nil
}

// CancelBooking removes the booking from the court first and then from the
// member. Success is judged by the member-side removal alone; a court-side
// copy missing out of band does not change the outcome. The store delete is
// rolled back into memory on failure.
func (s *Service) CancelBooking(ctx context.Context, memberID, courtID int64, sportName string, date, start, end time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	member := s.memberByID(memberID)
	if member == nil {
		return ErrMemberNotFound
	}
	sport := s.sportByName(sportName)
	if sport == nil {
		return ErrSportNotFound
	}

	removed := sport.Release(memberID, courtID, date, start)
	b := member.FindBooking(date, start)
	if b == nil || !member.RemoveBooking(date, start) {
		return ErrBookingNotFound
	}

	if err := s.store.Delete(ctx, b); err != nil {
		member.Attach(b)
		if removed {
			sport.AttachKnown(courtID, b)
		}
		return fmt.Errorf("delete booking: %w", err)
	}
	return nil
}

// CheckAvailability reports whether any court for the sport is free in the
// window, without committing anything.
func (s *Service) CheckAvailability(sportName string, date, start, end time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sport := s.sportByName(sportName)
	if sport == nil {
		return false, ErrSportNotFound
	}
	return sport.AnyCourtAvailable(date, start, end), nil
}

// AvailabilityGrid returns the hourly availability of every court for the
// sport on the given date.
func (s *Service) AvailabilityGrid(sportName string, date time.Time) ([]CourtGrid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sport := s.sportByName(sportName)
	if sport == nil {
		return nil, ErrSportNotFound
	}
	grids := make([]CourtGrid, 0)
	for _, c := range sport.Courts() {
		grids = append(grids, CourtGrid{CourtID: c.ID, Hours: c.AvailabilityGrid(date)})
	}
	return grids, nil
}

// MemberBookings lists a member's bookings, optionally only those dated
// today or later. A member with no bookings yields an empty list.
func (s *Service) MemberBookings(memberID int64, upcomingOnly bool) ([]*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	member := s.memberByID(memberID)
	if member == nil {
		return nil, ErrMemberNotFound
	}
	if upcomingOnly {
		return member.UpcomingBookings(s.now()), nil
	}
	return member.Bookings(), nil
}

// CourtBookings lists a court's bookings, optionally only upcoming ones.
func (s *Service) CourtBookings(courtID int64, upcomingOnly bool) ([]*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sport := s.sportForCourt(courtID)
	if sport == nil {
		return nil, ErrCourtNotFound
	}
	court := sport.CourtByID(courtID)
	if upcomingOnly {
		return court.UpcomingBookings(s.now()), nil
	}
	return court.Bookings(), nil
}

// SportForCourt returns the name of the sport played on the given court.
func (s *Service) SportForCourt(courtID int64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sport := s.sportForCourt(courtID)
	if sport == nil {
		return "", ErrCourtNotFound
	}
	return sport.Name, nil
}

// Members returns the club's members in stored order.
func (s *Service) Members() []*domain.Member {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Member, len(s.members))
	copy(out, s.members)
	return out
}

// Sports returns the club's sports in stored order.
func (s *Service) Sports() []*domain.Sport {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Sport, len(s.sports))
	copy(out, s.sports)
	return out
}

func (s *Service) memberByID(id int64) *domain.Member {
	for _, m := range s.members {
		if m.ID == id {
			return m
		}
	}
	return nil
}

func (s *Service) sportByName(name string) *domain.Sport {
	for _, sp := range s.sports {
		if sp.Name == name {
			return sp
		}
	}
	return nil
}

func (s *Service) sportForCourt(courtID int64) *domain.Sport {
	for _, sp := range s.sports {
		if sp.HasCourt(courtID) {
			return sp
		}
	}
	return nil
}

func (s *Service) validDate(date time.Time, member *domain.Member) error {
	today := domain.Day(s.now())
	day := domain.Day(date)
	if day.After(today.AddDate(0, 0, maxDaysAhead)) {
		return ErrTooFarAhead
	}
	if day.Before(today) {
		return ErrPastDate
	}
	if member.HasBookingOnDate(day) {
		return ErrOneBookingPerDay
	}
	return nil
}

func validStart(start time.Time) error {
	open := domain.Day(start).Add(domain.OpenHour * time.Hour)
	latest := domain.Day(start).Add(domain.LastStartHour * time.Hour)
	if start.Before(open) {
		return ErrStartBeforeOpen
	}
	if start.After(latest) {
		return ErrStartAfterLatest
	}
	return nil
}

func validEnd(start, end time.Time, sport *domain.Sport) error {
	if !end.After(start) {
		return ErrEndNotAfterStart
	}
	close := domain.Day(end).Add(domain.CloseHour * time.Hour)
	if end.After(close) {
		return ErrEndAfterClose
	}
	if sport.MaxDuration > 0 && end.Sub(start) > sport.MaxDuration {
		return ErrDurationCap
	}
	return nil
}
