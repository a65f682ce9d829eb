package domain

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDay = time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

func hour(h int) time.Time { return testDay.Add(time.Duration(h) * time.Hour) }

func TestCourt_IsAvailable(t *testing.T) {
	c := NewCourt(1)
	assert.True(t, c.IsAvailable(testDay, hour(9), hour(22)), "empty court is trivially available")

	require.NotNil(t, c.TryReserve(7, testDay, hour(10), hour(12)))

	assert.False(t, c.IsAvailable(testDay, hour(10), hour(12)))
	assert.False(t, c.IsAvailable(testDay, hour(11), hour(13)))
	assert.True(t, c.IsAvailable(testDay, hour(12), hour(14)), "back-to-back slot is free")
	assert.True(t, c.IsAvailable(testDay, hour(9), hour(10)), "slot ending at booking start is free")

	nextDay := testDay.AddDate(0, 0, 1)
	assert.True(t, c.IsAvailable(nextDay, nextDay.Add(10*time.Hour), nextDay.Add(12*time.Hour)),
		"same times on another date are free")
}

func TestCourt_TryReserve_RejectsConflict(t *testing.T) {
	c := NewCourt(1)
	require.NotNil(t, c.TryReserve(7, testDay, hour(10), hour(12)))
	assert.Nil(t, c.TryReserve(8, testDay, hour(11), hour(13)))
	assert.Len(t, c.Bookings(), 1)
}

// Random interval pairs: after any sequence of TryReserve calls, no two
// bookings on the court may overlap.
func TestCourt_NoDoubleBooking(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c := NewCourt(1)

	for i := 0; i < 200; i++ {
		start := OpenHour + rng.Intn(CloseHour-OpenHour-1)
		length := 1 + rng.Intn(3)
		end := start + length
		if end > CloseHour {
			end = CloseHour
		}
		c.TryReserve(int64(i), testDay, hour(start), hour(end))
	}

	bookings := c.Bookings()
	require.NotEmpty(t, bookings)
	for i := 0; i < len(bookings); i++ {
		for j := i + 1; j < len(bookings); j++ {
			assert.False(t, bookings[i].Range().Overlaps(bookings[j].Range()),
				"bookings %s and %s overlap", bookings[i], bookings[j])
		}
	}
}

func TestCourt_RemoveBooking_RoundTrip(t *testing.T) {
	c := NewCourt(1)
	require.NotNil(t, c.TryReserve(7, testDay, hour(10), hour(12)))
	require.NotNil(t, c.TryReserve(8, testDay, hour(12), hour(14)))

	assert.True(t, c.RemoveBooking(7, testDay, hour(10)))
	assert.Len(t, c.Bookings(), 1)
	assert.Equal(t, int64(8), c.Bookings()[0].MemberID)

	// Slot is free again after removal.
	assert.True(t, c.IsAvailable(testDay, hour(10), hour(12)))

	// Removing again fails silently.
	assert.False(t, c.RemoveBooking(7, testDay, hour(10)))
}

func TestCourt_FindBooking_IdentityTuple(t *testing.T) {
	c := NewCourt(1)
	b := c.TryReserve(7, testDay, hour(10), hour(12))
	require.NotNil(t, b)

	assert.Same(t, b, c.FindBooking(7, testDay, hour(10)))
	assert.Nil(t, c.FindBooking(8, testDay, hour(10)), "wrong member")
	assert.Nil(t, c.FindBooking(7, testDay, hour(11)), "wrong start")
	assert.Nil(t, c.FindBooking(7, testDay.AddDate(0, 0, 1), hour(10)), "wrong date")
}

func TestCourt_UpcomingBookings(t *testing.T) {
	c := NewCourt(1)
	yesterday := testDay.AddDate(0, 0, -1)
	c.Attach(&Booking{MemberID: 1, Date: yesterday, Start: yesterday.Add(10 * time.Hour), End: yesterday.Add(11 * time.Hour)})
	require.NotNil(t, c.TryReserve(2, testDay, hour(10), hour(11)))

	upcoming := c.UpcomingBookings(testDay)
	require.Len(t, upcoming, 1)
	assert.Equal(t, int64(2), upcoming[0].MemberID)
	assert.Len(t, c.Bookings(), 2)
}

func TestCourt_AvailabilityGrid(t *testing.T) {
	c := NewCourt(1)
	grid := c.AvailabilityGrid(testDay)
	require.Len(t, grid, CloseHour-OpenHour)
	for i, free := range grid {
		assert.True(t, free, "bucket %d of an empty court", i)
	}

	// 10:30-12:30 straddles three hourly buckets.
	require.NotNil(t, c.TryReserve(7, testDay, hour(10).Add(30*time.Minute), hour(12).Add(30*time.Minute)))
	grid = c.AvailabilityGrid(testDay)
	assert.True(t, grid[0], "09:00-10:00")
	assert.False(t, grid[1], "10:00-11:00")
	assert.False(t, grid[2], "11:00-12:00")
	assert.False(t, grid[3], "12:00-13:00")
	assert.True(t, grid[4], "13:00-14:00")
}
