package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saarthi/database"
	"saarthi/handlers"
	"saarthi/session"
	"saarthi/trip"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ---- doubles ---------------------------------------------------------------

type mockPlanner struct {
	generate func(ctx context.Context, destination string, days int) ([]trip.DayPlan, error)
}

func (m *mockPlanner) GenerateItinerary(ctx context.Context, destination string, days int) ([]trip.DayPlan, error) {
	return m.generate(ctx, destination, days)
}

type mockHotels struct {
	lookup func(ctx context.Context, destination string) (trip.HotelListing, error)
}

func (m *mockHotels) LookupHotel(ctx context.Context, destination string) (trip.HotelListing, error) {
	return m.lookup(ctx, destination)
}

// mockRepo stores records in memory; unset hooks succeed.
type mockRepo struct {
	trips       map[string]*database.TripRequestRecord
	itineraries map[string]*database.ItineraryRecord
	pingErr     error
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		trips:       make(map[string]*database.TripRequestRecord),
		itineraries: make(map[string]*database.ItineraryRecord),
	}
}

func (m *mockRepo) SaveTripRequest(r *database.TripRequestRecord) error {
	m.trips[r.ID] = r
	return nil
}

func (m *mockRepo) SaveItinerary(i *database.ItineraryRecord) error {
	m.itineraries[i.ID] = i
	return nil
}

func (m *mockRepo) GetItinerary(id string) (*database.ItineraryRecord, error) {
	i, ok := m.itineraries[id]
	if !ok {
		return nil, fmt.Errorf("no rows")
	}
	return i, nil
}

func (m *mockRepo) Ping() error { return m.pingErr }

var _ handlers.Repository = (*mockRepo)(nil)

// ---- helpers ---------------------------------------------------------------

func okPlanner() *mockPlanner {
	return &mockPlanner{generate: func(_ context.Context, _ string, days int) ([]trip.DayPlan, error) {
		plans := make([]trip.DayPlan, days)
		for i := range plans {
			plans[i] = trip.DayPlan{Day: i + 1, Title: fmt.Sprintf("Day %d", i+1), Activities: []trip.Activity{
				{Time: "9:00 AM", Title: "Breakfast", Icon: trip.IconFood, Duration: "1h"},
			}}
		}
		return plans, nil
	}}
}

func okHotels() *mockHotels {
	return &mockHotels{lookup: func(_ context.Context, destination string) (trip.HotelListing, error) {
		return trip.HotelListing{ID: 1, Name: "Taj Exotica", Location: destination}, nil
	}}
}

func newRouter(planner session.Planner, hotels session.HotelLookup, repo handlers.Repository) *gin.Engine {
	r := gin.New()
	handlers.New(session.NewStore(), planner, hotels, repo).Register(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func createTrip(t *testing.T, r *gin.Engine, destination string) string {
	t.Helper()
	w := doJSON(t, r, "POST", "/api/trips", gin.H{
		"destination": destination,
		"start_date":  "2025-01-01",
		"end_date":    "2025-01-04",
		"travelers":   "2",
		"budget":      "medium",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode(t, w)["session_id"].(string)
}

// ---- trips -----------------------------------------------------------------

func TestCreateTrip(t *testing.T) {
	repo := newMockRepo()
	r := newRouter(okPlanner(), okHotels(), repo)

	w := doJSON(t, r, "POST", "/api/trips", gin.H{
		"destination": "Goa",
		"start_date":  "2025-01-01",
		"end_date":    "2025-01-04",
		"travelers":   "2",
		"budget":      "medium",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.NotEmpty(t, body["session_id"])
	assert.Equal(t, float64(3), body["day_count"])

	// The submitted search is persisted under the session id.
	record, ok := repo.trips[body["session_id"].(string)]
	require.True(t, ok)
	assert.Equal(t, "Goa", record.Destination)
	assert.Equal(t, "medium", record.Budget)
}

func TestCreateTrip_BadInput(t *testing.T) {
	r := newRouter(okPlanner(), okHotels(), newMockRepo())

	tests := []struct {
		name string
		body gin.H
	}{
		{"missing destination", gin.H{"start_date": "2025-01-01", "end_date": "2025-01-04"}},
		{"bad start date", gin.H{"destination": "Goa", "start_date": "01/01/2025", "end_date": "2025-01-04"}},
		{"bad end date", gin.H{"destination": "Goa", "start_date": "2025-01-01", "end_date": "soon"}},
		{"end before start", gin.H{"destination": "Goa", "start_date": "2025-01-04", "end_date": "2025-01-01"}},
		{"bad travelers", gin.H{"destination": "Goa", "start_date": "2025-01-01", "end_date": "2025-01-04", "travelers": "9"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, "POST", "/api/trips", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestGetTrip_NotFound(t *testing.T) {
	r := newRouter(okPlanner(), okHotels(), newMockRepo())

	w := doJSON(t, r, "GET", "/api/trips/nope", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateTrip_BudgetChange(t *testing.T) {
	r := newRouter(okPlanner(), okHotels(), newMockRepo())
	id := createTrip(t, r, "Goa")

	w := doJSON(t, r, "PATCH", "/api/trips/"+id, gin.H{"budget": "luxury"})

	require.Equal(t, http.StatusOK, w.Code)
	req := decode(t, w)["request"].(map[string]any)
	assert.Equal(t, "luxury", req["budget"])
	assert.Equal(t, "Goa", req["destination"])
}

func TestDeleteTrip(t *testing.T) {
	r := newRouter(okPlanner(), okHotels(), newMockRepo())
	id := createTrip(t, r, "Goa")

	w := doJSON(t, r, "DELETE", "/api/trips/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, "GET", "/api/trips/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// ---- itinerary -------------------------------------------------------------

func TestGenerateItinerary(t *testing.T) {
	r := newRouter(okPlanner(), okHotels(), newMockRepo())
	id := createTrip(t, r, "Goa")

	w := doJSON(t, r, "POST", "/api/trips/"+id+"/itinerary", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(1), body["active_day"])

	days := body["days"].([]any)
	require.Len(t, days, 3)

	// Activities carry their display metadata.
	first := days[0].(map[string]any)
	activity := first["activities"].([]any)[0].(map[string]any)
	assert.Equal(t, "utensils", activity["icon_id"])
	assert.Equal(t, "#ff6b6b", activity["color"])
}

func TestGenerateItinerary_EmptyResult(t *testing.T) {
	planner := &mockPlanner{generate: func(_ context.Context, _ string, _ int) ([]trip.DayPlan, error) {
		return nil, trip.ErrEmptyItinerary
	}}
	r := newRouter(planner, okHotels(), newMockRepo())
	id := createTrip(t, r, "Goa")

	w := doJSON(t, r, "POST", "/api/trips/"+id+"/itinerary", nil)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, decode(t, w)["error"], "Could not generate itinerary")
}

func TestGenerateItinerary_Unavailable(t *testing.T) {
	planner := &mockPlanner{generate: func(_ context.Context, _ string, _ int) ([]trip.DayPlan, error) {
		return nil, fmt.Errorf("%w: connection refused", trip.ErrUnavailable)
	}}
	r := newRouter(planner, okHotels(), newMockRepo())
	id := createTrip(t, r, "Goa")

	w := doJSON(t, r, "POST", "/api/trips/"+id+"/itinerary", nil)

	require.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, decode(t, w)["error"], "try again later")
}

func TestSetActiveDay(t *testing.T) {
	r := newRouter(okPlanner(), okHotels(), newMockRepo())
	id := createTrip(t, r, "Goa")
	doJSON(t, r, "POST", "/api/trips/"+id+"/itinerary", nil)

	w := doJSON(t, r, "PUT", "/api/trips/"+id+"/day", gin.H{"day": 2})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "PUT", "/api/trips/"+id+"/day", gin.H{"day": 9})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// ---- hotels ----------------------------------------------------------------

func TestGetHotels(t *testing.T) {
	r := newRouter(okPlanner(), okHotels(), newMockRepo())
	id := createTrip(t, r, "Goa")

	// The lookup kicked off at creation runs in the background; wait for
	// its result to land.
	require.Eventually(t, func() bool {
		w := doJSON(t, r, "GET", "/api/trips/"+id+"/hotels", nil)
		if w.Code != http.StatusOK {
			return false
		}
		return len(decode(t, w)["hotels"].([]any)) == 1
	}, 2*time.Second, 10*time.Millisecond)

	w := doJSON(t, r, "GET", "/api/trips/"+id+"/hotels", nil)
	hotels := decode(t, w)["hotels"].([]any)
	listing := hotels[0].(map[string]any)
	assert.Equal(t, "Taj Exotica", listing["name"])
	assert.Equal(t, "Goa", listing["location"])
}

func TestGetHotels_LookupFailure(t *testing.T) {
	hotels := &mockHotels{lookup: func(_ context.Context, _ string) (trip.HotelListing, error) {
		return trip.HotelListing{}, fmt.Errorf("%w: timeout", trip.ErrUnavailable)
	}}
	r := newRouter(okPlanner(), hotels, newMockRepo())
	id := createTrip(t, r, "Goa")

	require.Eventually(t, func() bool {
		w := doJSON(t, r, "GET", "/api/trips/"+id+"/hotels", nil)
		_, hasErr := decode(t, w)["error"]
		return hasErr
	}, 2*time.Second, 10*time.Millisecond)

	w := doJSON(t, r, "GET", "/api/trips/"+id+"/hotels", nil)
	body := decode(t, w)
	assert.Contains(t, body["error"], "Failed to fetch hotel data")
	assert.Empty(t, body["hotels"])
}

// ---- guides ----------------------------------------------------------------

func TestGuidePanels(t *testing.T) {
	r := newRouter(okPlanner(), okHotels(), newMockRepo())
	id := createTrip(t, r, "Goa")

	w := doJSON(t, r, "GET", "/api/trips/"+id+"/weather", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Goa", decode(t, w)["destination"])

	w = doJSON(t, r, "GET", "/api/trips/"+id+"/transport", nil)
	require.Equal(t, http.StatusOK, w.Code)
	transport := decode(t, w)["transport"].(map[string]any)
	assert.Len(t, transport["flights"], 3)
	assert.Len(t, transport["trains"], 3)

	w = doJSON(t, r, "GET", "/api/trips/"+id+"/places", nil)
	require.Equal(t, http.StatusOK, w.Code)
	places := decode(t, w)["places"].([]any)
	require.Len(t, places, 6)
	heritage := places[0].(map[string]any)
	assert.Equal(t, "Heritage", heritage["category"])
	assert.Equal(t, "#ff6b6b", heritage["color"])
}

func TestDestinations(t *testing.T) {
	r := newRouter(okPlanner(), okHotels(), newMockRepo())

	w := doJSON(t, r, "GET", "/api/destinations?q=goa", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{"Goa"}, decode(t, w)["destinations"])
}

// ---- export ----------------------------------------------------------------

func TestExportAndDownload(t *testing.T) {
	repo := newMockRepo()
	r := newRouter(okPlanner(), okHotels(), repo)
	id := createTrip(t, r, "Goa")
	doJSON(t, r, "POST", "/api/trips/"+id+"/itinerary", nil)

	w := doJSON(t, r, "POST", "/api/trips/"+id+"/export", gin.H{"traveler_name": "Asha"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	itineraryID := body["itinerary_id"].(string)
	assert.Equal(t, "/api/download/"+itineraryID, body["pdf_url"])

	w = doJSON(t, r, "GET", "/api/download/"+itineraryID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF", w.Body.String()[:4])
}

func TestExport_RequiresItinerary(t *testing.T) {
	r := newRouter(okPlanner(), okHotels(), newMockRepo())
	id := createTrip(t, r, "Goa")

	w := doJSON(t, r, "POST", "/api/trips/"+id+"/export", gin.H{"traveler_name": "Asha"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDownload_Unknown(t *testing.T) {
	r := newRouter(okPlanner(), okHotels(), newMockRepo())

	w := doJSON(t, r, "GET", "/api/download/nope", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// ---- health ----------------------------------------------------------------

func TestHealth(t *testing.T) {
	r := newRouter(okPlanner(), okHotels(), newMockRepo())

	w := doJSON(t, r, "GET", "/api/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "ok", body["database"])
}

func TestHealth_NoDatabase(t *testing.T) {
	r := newRouter(okPlanner(), okHotels(), nil)

	w := doJSON(t, r, "GET", "/api/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "not initialized", decode(t, w)["database"])
}
