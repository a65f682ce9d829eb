package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubcourt/internal/database"
	"clubcourt/internal/domain"
	"clubcourt/internal/modules/club"
	"clubcourt/internal/repository"
)

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// setupRouter seeds an in-memory SQLite database with a small club and
// serves the API from it.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, repository.Migrate(db))

	ctx := t.Context()
	sportRepo := repository.NewSportRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	basketball := domain.NewSport("Basketball", 25, 10, 3*time.Hour, []int64{1, 2})
	badminton := domain.NewSport("Badminton", 15, 5, 2*time.Hour, []int64{4})
	require.NoError(t, sportRepo.Create(ctx, basketball))
	require.NoError(t, sportRepo.Create(ctx, badminton))

	_, err = memberRepo.Create(ctx, "Alice Chan", true, []string{"Basketball"})
	require.NoError(t, err)
	_, err = memberRepo.Create(ctx, "Bruno Costa", false, []string{"Badminton"})
	require.NoError(t, err)

	registry, err := club.Load(ctx, memberRepo, sportRepo, bookingRepo, bookingRepo)
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	club.NewHandler(registry).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, TestResponse) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp TestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	return w, resp
}

func TestBookingLifecycle(t *testing.T) {
	r := setupRouter(t)
	date := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")

	// Create a valid booking.
	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/bookings", gin.H{
		"member_id": 1, "sport": "Basketball", "date": date, "start": "10:00", "end": "12:00",
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %v", resp)
	require.True(t, resp.Success)
	booking := resp.Data["booking"].(map[string]interface{})
	assert.Equal(t, float64(1), booking["court_id"], "first-fit court")

	// The member now holds it.
	w, resp = doJSON(t, r, http.MethodGet, "/api/v1/members/1/bookings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp.Data["bookings"], 1)

	// Second booking on the same day is rejected.
	w, resp = doJSON(t, r, http.MethodPost, "/api/v1/bookings", gin.H{
		"member_id": 1, "sport": "Basketball", "date": date, "start": "14:00", "end": "15:00",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "RULE_VIOLATION", resp.Error.Code)
	assert.Equal(t, "only one booking can be made per day per member", resp.Error.Message)

	// The grid shows the taken hours on court 1.
	w, resp = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/sports/Basketball/availability?date=%s", date), nil)
	require.Equal(t, http.StatusOK, w.Code)
	courts := resp.Data["courts"].([]interface{})
	require.Len(t, courts, 2)
	hours := courts[0].(map[string]interface{})["hours"].([]interface{})
	assert.Equal(t, false, hours[1], "10:00 bucket taken")
	assert.Equal(t, true, hours[3], "12:00 bucket free")

	// Cancel and verify the slot frees up.
	w, _ = doJSON(t, r, http.MethodDelete, "/api/v1/bookings", gin.H{
		"member_id": 1, "court_id": 1, "sport": "Basketball", "date": date, "start": "10:00", "end": "12:00",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, resp = doJSON(t, r, http.MethodGet,
		fmt.Sprintf("/api/v1/sports/Basketball/availability/check?date=%s&start=10:00&end=12:00", date), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp.Data["available"])
}

func TestBookingRejections(t *testing.T) {
	r := setupRouter(t)
	date := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")

	tests := []struct {
		name       string
		body       gin.H
		wantStatus int
		wantCode   string
	}{
		{
			name:       "non-financial member",
			body:       gin.H{"member_id": 2, "sport": "Badminton", "date": date, "start": "10:00", "end": "11:00"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "RULE_VIOLATION",
		},
		{
			name:       "not registered for sport",
			body:       gin.H{"member_id": 1, "sport": "Badminton", "date": date, "start": "10:00", "end": "11:00"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "RULE_VIOLATION",
		},
		{
			name:       "unknown member",
			body:       gin.H{"member_id": 42, "sport": "Basketball", "date": date, "start": "10:00", "end": "11:00"},
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "unknown sport",
			body:       gin.H{"member_id": 1, "sport": "Squash", "date": date, "start": "10:00", "end": "11:00"},
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "start before opening",
			body:       gin.H{"member_id": 1, "sport": "Basketball", "date": date, "start": "08:30", "end": "10:00"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "RULE_VIOLATION",
		},
		{
			name:       "over the duration cap",
			body:       gin.H{"member_id": 1, "sport": "Basketball", "date": date, "start": "09:00", "end": "13:00"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "RULE_VIOLATION",
		},
		{
			name:       "garbage date",
			body:       gin.H{"member_id": 1, "sport": "Basketball", "date": "not-a-date", "start": "09:00", "end": "10:00"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := doJSON(t, r, http.MethodPost, "/api/v1/bookings", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestListingEndpoints(t *testing.T) {
	r := setupRouter(t)

	w, resp := doJSON(t, r, http.MethodGet, "/api/v1/sports", nil)
	require.Equal(t, http.StatusOK, w.Code)
	sports := resp.Data["sports"].([]interface{})
	require.Len(t, sports, 2)
	first := sports[0].(map[string]interface{})
	assert.Equal(t, "Basketball", first["name"])
	assert.Equal(t, float64(3), first["max_hours"])

	w, resp = doJSON(t, r, http.MethodGet, "/api/v1/members", nil)
	require.Equal(t, http.StatusOK, w.Code)
	members := resp.Data["members"].([]interface{})
	require.Len(t, members, 2)

	// A court with no bookings lists as empty, not as an error.
	w, resp = doJSON(t, r, http.MethodGet, "/api/v1/courts/4/bookings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Badminton", resp.Data["sport"])
	assert.Len(t, resp.Data["bookings"], 0)

	w, resp = doJSON(t, r, http.MethodGet, "/api/v1/courts/99/bookings", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}
