package club

import (
	"context"

	"clubcourt/internal/domain"
)

// BookingStore persists booking mutations. Every write carries the full
// (memberId, courtId, date, startTime, endTime) tuple.
type BookingStore interface {
	Insert(ctx context.Context, b *domain.Booking) error
	Delete(ctx context.Context, b *domain.Booking) error
}

// MemberSource supplies the club's members at startup.
type MemberSource interface {
	GetAllMembers(ctx context.Context) ([]*domain.Member, error)
}

// SportSource supplies the club's sports, with their court numbers, at
// startup.
type SportSource interface {
	GetAllSports(ctx context.Context) ([]*domain.Sport, error)
}

// BookingSource supplies the stored bookings at startup.
type BookingSource interface {
	GetAllBookings(ctx context.Context) ([]*domain.Booking, error)
}
