package club

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"clubcourt/internal/domain"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.DELETE("/bookings", h.CancelBooking)
	rg.GET("/members", h.ListMembers)
	rg.GET("/members/:id/bookings", h.MemberBookings)
	rg.GET("/sports", h.ListSports)
	rg.GET("/sports/:name/availability", h.AvailabilityGrid)
	rg.GET("/sports/:name/availability/check", h.CheckAvailability)
	rg.GET("/courts/:id/bookings", h.CourtBookings)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	date, start, end, ok := parseWindow(c, req.Date, req.Start, req.End)
	if !ok {
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), req.MemberID, req.Sport, date, start, end)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    gin.H{"booking": toBookingView(b)},
	})
}

func (h *Handler) CancelBooking(c *gin.Context) {
	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	date, start, end, ok := parseWindow(c, req.Date, req.Start, req.End)
	if !ok {
		return
	}

	if err := h.service.CancelBooking(c.Request.Context(), req.MemberID, req.CourtID, req.Sport, date, start, end); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"message": "Booking deleted successfully"},
	})
}

func (h *Handler) ListMembers(c *gin.Context) {
	members := h.service.Members()
	out := make([]MemberView, 0, len(members))
	for _, m := range members {
		out = append(out, MemberView{
			ID:           m.ID,
			Name:         m.Name,
			Financial:    m.Financial,
			SportsPlayed: m.SportsPlayed(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"members": out}})
}

func (h *Handler) ListSports(c *gin.Context) {
	sports := h.service.Sports()
	out := make([]SportView, 0, len(sports))
	for _, sp := range sports {
		courts := sp.Courts()
		ids := make([]int64, 0, len(courts))
		for _, ct := range courts {
			ids = append(ids, ct.ID)
		}
		out = append(out, SportView{
			Name:            sp.Name,
			UsageFee:        sp.UsageFee,
			InsuranceFee:    sp.InsuranceFee,
			MaxHours:        int(sp.MaxDuration.Hours()),
			NetHeight:       sp.NetHeight,
			RacketsProvided: sp.RacketsProvided,
			CourtIDs:        ids,
		})
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"sports": out}})
}

func (h *Handler) MemberBookings(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "Invalid member id")
		return
	}
	bookings, err := h.service.MemberBookings(id, c.Query("scope") == "upcoming")
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"bookings": toBookingViews(bookings)}})
}

func (h *Handler) CourtBookings(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "Invalid court id")
		return
	}
	bookings, err := h.service.CourtBookings(id, c.Query("scope") == "upcoming")
	if err != nil {
		writeError(c, err)
		return
	}
	sport, _ := h.service.SportForCourt(id)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
		"sport":    sport,
		"bookings": toBookingViews(bookings),
	}})
}

func (h *Handler) AvailabilityGrid(c *gin.Context) {
	date, err := time.Parse(dateLayout, c.Query("date"))
	if err != nil {
		badRequest(c, "Invalid or missing date")
		return
	}
	grids, err := h.service.AvailabilityGrid(c.Param("name"), date)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
		"date":   c.Query("date"),
		"courts": grids,
	}})
}

func (h *Handler) CheckAvailability(c *gin.Context) {
	date, start, end, ok := parseWindow(c, c.Query("date"), c.Query("start"), c.Query("end"))
	if !ok {
		return
	}
	available, err := h.service.CheckAvailability(c.Param("name"), date, start, end)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"available": available}})
}

// parseWindow parses a date plus start/end clock times into instants on
// that date. It writes the error response itself on failure.
func parseWindow(c *gin.Context, dateStr, startStr, endStr string) (date, start, end time.Time, ok bool) {
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		badRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}
	date = domain.Day(date)

	startClock, err := time.Parse(timeLayout, startStr)
	if err != nil {
		badRequest(c, "Invalid start time, expected HH:MM")
		return
	}
	endClock, err := time.Parse(timeLayout, endStr)
	if err != nil {
		badRequest(c, "Invalid end time, expected HH:MM")
		return
	}

	start = date.Add(time.Duration(startClock.Hour())*time.Hour + time.Duration(startClock.Minute())*time.Minute)
	end = date.Add(time.Duration(endClock.Hour())*time.Hour + time.Duration(endClock.Minute())*time.Minute)
	return date, start, end, true
}

func toBookingView(b *domain.Booking) BookingView {
	return BookingView{
		ID:       b.ID,
		MemberID: b.MemberID,
		CourtID:  b.CourtID,
		Date:     b.Date.Format(dateLayout),
		Start:    b.Start.Format(timeLayout),
		End:      b.End.Format(timeLayout),
	}
}

func toBookingViews(bs []*domain.Booking) []BookingView {
	out := make([]BookingView, 0, len(bs))
	for _, b := range bs {
		out = append(out, toBookingView(b))
	}
	return out
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   gin.H{"code": "VALIDATION_ERROR", "message": message},
	})
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMemberNotFound),
		errors.Is(err, ErrSportNotFound),
		errors.Is(err, ErrCourtNotFound),
		errors.Is(err, ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   gin.H{"code": "NOT_FOUND", "message": err.Error()},
		})

	case errors.Is(err, ErrNoCourtAvailable):
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error":   gin.H{"code": "FULLY_BOOKED", "message": err.Error()},
		})

	case errors.Is(err, ErrTooFarAhead),
		errors.Is(err, ErrPastDate),
		errors.Is(err, ErrOneBookingPerDay),
		errors.Is(err, ErrStartBeforeOpen),
		errors.Is(err, ErrStartAfterLatest),
		errors.Is(err, ErrEndNotAfterStart),
		errors.Is(err, ErrEndAfterClose),
		errors.Is(err, ErrDurationCap),
		errors.Is(err, ErrNotFinancial),
		errors.Is(err, ErrNotRegisteredForSport):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   gin.H{"code": "RULE_VIOLATION", "message": err.Error()},
		})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   gin.H{"code": "STORE_ERROR", "message": "Failed to apply booking change"},
		})
	}
}
