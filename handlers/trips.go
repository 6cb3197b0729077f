package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"saarthi/database"
	"saarthi/session"
	"saarthi/trip"
)

type CreateTripRequest struct {
	Destination string `json:"destination" binding:"required"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	Travelers   string `json:"travelers"`
	Budget      string `json:"budget"`
}

type TripResponse struct {
	SessionID string       `json:"session_id"`
	Request   trip.Request `json:"request"`
	DayCount  int          `json:"day_count"`
}

// CreateTrip builds a trip request from the submitted form, opens a
// session for it and kicks off the first hotel lookup.
func (a *API) CreateTrip(c *gin.Context) {
	var req CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date format. Use YYYY-MM-DD"})
		return
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date format. Use YYYY-MM-DD"})
		return
	}

	tripReq, err := trip.NewRequest(req.Destination, start, end, req.Travelers, req.Budget)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := session.New(tripReq, a.planner, a.hotels)
	a.sessions.Add(sess)

	if a.repo != nil {
		record := &database.TripRequestRecord{
			ID:          sess.ID(),
			Destination: tripReq.Destination,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			Travelers:   string(tripReq.Travelers),
			Budget:      string(tripReq.Budget),
		}
		if err := a.repo.SaveTripRequest(record); err != nil {
			log.Printf("❌ Failed to save trip request: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save trip request"})
			return
		}
	}

	// Destination is a hotel-fetch dependency; every session starts with
	// one lookup in flight.
	a.refreshHotelsAsync(sess)

	c.JSON(http.StatusCreated, TripResponse{
		SessionID: sess.ID(),
		Request:   tripReq,
		DayCount:  tripReq.Days(),
	})
}

// GetTrip returns the full session snapshot.
func (a *API) GetTrip(c *gin.Context) {
	sess, ok := a.lookupSession(c)
	if !ok {
		return
	}

	state := sess.State()
	body := gin.H{
		"session_id": state.ID,
		"request":    state.Request,
		"day_count":  state.Request.Days(),
		"itinerary":  state.Itinerary,
		"active_day": state.ActiveDay,
		"generating": state.Generating,
		"hotels":     state.Hotels,
	}
	if state.HotelErr != nil {
		body["hotel_error"] = "Failed to fetch hotel data. Please try again later."
	}
	c.JSON(http.StatusOK, body)
}

type UpdateTripRequest struct {
	Destination *string `json:"destination"`
	Budget      *string `json:"budget"`
}

// UpdateTrip edits destination and/or budget. Both are hotel-fetch
// dependencies, so any change re-fires the lookup.
func (a *API) UpdateTrip(c *gin.Context) {
	sess, ok := a.lookupSession(c)
	if !ok {
		return
	}

	var req UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if req.Destination == nil && req.Budget == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	if req.Destination != nil {
		if err := sess.SetDestination(*req.Destination); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	if req.Budget != nil {
		if err := sess.SetBudget(*req.Budget); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	a.refreshHotelsAsync(sess)

	c.JSON(http.StatusOK, TripResponse{
		SessionID: sess.ID(),
		Request:   sess.Request(),
		DayCount:  sess.Request().Days(),
	})
}

// DeleteTrip ends a session. Derived state is cleared first so that any
// hotel lookup still in flight lands on nothing.
func (a *API) DeleteTrip(c *gin.Context) {
	sess, ok := a.lookupSession(c)
	if !ok {
		return
	}

	sess.Reset()
	a.sessions.Remove(sess.ID())
	c.Status(http.StatusNoContent)
}

type SetActiveDayRequest struct {
	Day int `json:"day" binding:"required"`
}

// SetActiveDay selects a day tab in the itinerary panel.
func (a *API) SetActiveDay(c *gin.Context) {
	sess, ok := a.lookupSession(c)
	if !ok {
		return
	}

	var req SetActiveDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := sess.SetActiveDay(req.Day); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"active_day": req.Day})
}

func (a *API) refreshHotelsAsync(sess *session.Session) {
	destination := sess.Request().Destination
	go func() {
		err := sess.RefreshHotels(context.Background())
		if err != nil && !errors.Is(err, session.ErrStaleHotelResponse) {
			log.Printf("⚠️  Hotel lookup failed for %s: %v", destination, err)
		}
	}()
}
