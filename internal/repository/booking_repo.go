package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"clubcourt/internal/domain"
)

// ErrDuplicateBooking is returned when the database rejects an insert on
// the one-booking-per-member-per-day index.
var ErrDuplicateBooking = errors.New("member already has a booking on that date")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	MemberID  int64     `gorm:"column:member_id;uniqueIndex:idx_one_per_day"`
	CourtID   int64     `gorm:"column:court_id"`
	Date      time.Time `gorm:"column:date;uniqueIndex:idx_one_per_day"`
	StartTime time.Time `gorm:"column:start_time"`
	EndTime   time.Time `gorm:"column:end_time"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:       m.ID,
		MemberID: m.MemberID,
		CourtID:  m.CourtID,
		Date:     domain.Day(m.Date),
		Start:    m.StartTime,
		End:      m.EndTime,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:        b.ID,
		MemberID:  b.MemberID,
		CourtID:   b.CourtID,
		Date:      domain.Day(b.Date),
		StartTime: b.Start,
		EndTime:   b.End,
	}
}

func (r *BookingRepository) GetAllBookings(ctx context.Context) ([]*domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).Order("id").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]*domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainBooking(m))
	}
	return out, nil
}

// Insert persists the full booking tuple and writes the generated id back
// into the record.
func (r *BookingRepository) Insert(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(tx.Error, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateBooking
		}
		return tx.Error
	}
	b.ID = m.ID
	return nil
}

// Delete removes the booking matching the full tuple.
func (r *BookingRepository) Delete(ctx context.Context, b *domain.Booking) error {
	tx := r.db.WithContext(ctx).
		Where("member_id = ? AND court_id = ? AND date = ? AND start_time = ? AND end_time = ?",
			b.MemberID, b.CourtID, domain.Day(b.Date), b.Start, b.End).
		Delete(&bookingModel{})
	return tx.Error
}
