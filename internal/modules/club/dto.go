package club

type CreateBookingRequest struct {
	MemberID int64  `json:"member_id" binding:"required"`
	Sport    string `json:"sport" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Start    string `json:"start" binding:"required"`
	End      string `json:"end" binding:"required"`
}

type CancelBookingRequest struct {
	MemberID int64  `json:"member_id" binding:"required"`
	CourtID  int64  `json:"court_id" binding:"required"`
	Sport    string `json:"sport" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Start    string `json:"start" binding:"required"`
	End      string `json:"end" binding:"required"`
}

type BookingView struct {
	ID       int64  `json:"id"`
	MemberID int64  `json:"member_id"`
	CourtID  int64  `json:"court_id"`
	Date     string `json:"date"`
	Start    string `json:"start"`
	End      string `json:"end"`
}

type MemberView struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Financial    bool     `json:"financial"`
	SportsPlayed []string `json:"sports_played"`
}

type SportView struct {
	Name            string   `json:"name"`
	UsageFee        float64  `json:"usage_fee"`
	InsuranceFee    float64  `json:"insurance_fee"`
	MaxHours        int      `json:"max_hours,omitempty"`
	NetHeight       *float64 `json:"net_height,omitempty"`
	RacketsProvided *bool    `json:"rackets_provided,omitempty"`
	CourtIDs        []int64  `json:"court_ids"`
}

// CourtGrid is one court's hourly availability for a date, one flag per
// one-hour bucket of the operating window.
type CourtGrid struct {
	CourtID int64  `json:"court_id"`
	Hours   []bool `json:"hours"`
}
