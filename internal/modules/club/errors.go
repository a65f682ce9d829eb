package club

import "errors"

var (
	ErrMemberNotFound  = errors.New("member does not exist")
	ErrSportNotFound   = errors.New("that sport is not offered by the club")
	ErrCourtNotFound   = errors.New("that court does not exist")
	ErrBookingNotFound = errors.New("booking could not be found")

	ErrTooFarAhead      = errors.New("bookings can only be made 7 days in advance")
	ErrPastDate         = errors.New("bookings can only be made for future dates")
	ErrOneBookingPerDay = errors.New("only one booking can be made per day per member")
	ErrStartBeforeOpen  = errors.New("bookings can only be made after 09:00")
	ErrStartAfterLatest = errors.New("bookings cannot be made after 21:00")
	ErrEndNotAfterStart = errors.New("the end time has to be after the start time")
	ErrEndAfterClose    = errors.New("bookings have to end on or before 22:00")
	ErrDurationCap      = errors.New("booking is longer than the maximum allowed for this sport")

	ErrNotFinancial          = errors.New("that member is not a financial member and therefore cannot make a booking")
	ErrNotRegisteredForSport = errors.New("that member is not registered to play this sport")

	ErrNoCourtAvailable = errors.New("all courts are booked for the requested time")
)
