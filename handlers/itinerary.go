package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"saarthi/session"
	"saarthi/trip"
)

// ActivityView is an activity plus its display metadata.
type ActivityView struct {
	trip.Activity
	IconID string `json:"icon_id"`
	Color  string `json:"color"`
}

type DayPlanView struct {
	Day        int            `json:"day"`
	Title      string         `json:"title"`
	Activities []ActivityView `json:"activities"`
}

func dayPlanViews(plans []trip.DayPlan) []DayPlanView {
	views := make([]DayPlanView, 0, len(plans))
	for _, d := range plans {
		activities := make([]ActivityView, 0, len(d.Activities))
		for _, a := range d.Activities {
			activities = append(activities, ActivityView{
				Activity: a,
				IconID:   trip.ActivityIcon(a.Icon),
				Color:    trip.ActivityColor(a.Icon),
			})
		}
		views = append(views, DayPlanView{Day: d.Day, Title: d.Title, Activities: activities})
	}
	return views
}

// GenerateItinerary triggers one itinerary generation for the session.
// Generation is single-flight; while one is outstanding the trigger is
// rejected with 409.
func (a *API) GenerateItinerary(c *gin.Context) {
	sess, ok := a.lookupSession(c)
	if !ok {
		return
	}

	err := sess.GenerateItinerary(c.Request.Context())
	switch {
	case err == nil:
	case errors.Is(err, session.ErrGenerationInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": "Itinerary generation is already in progress"})
		return
	case errors.Is(err, trip.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid destination and number of days."})
		return
	case errors.Is(err, trip.ErrEmptyItinerary):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Could not generate itinerary. Try again with a different destination."})
		return
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch itinerary. Please try again later."})
		return
	}

	state := sess.State()
	c.JSON(http.StatusOK, gin.H{
		"days":       dayPlanViews(state.Itinerary),
		"active_day": state.ActiveDay,
	})
}

// GetItinerary returns the current itinerary with display metadata.
func (a *API) GetItinerary(c *gin.Context) {
	sess, ok := a.lookupSession(c)
	if !ok {
		return
	}

	state := sess.State()
	c.JSON(http.StatusOK, gin.H{
		"days":       dayPlanViews(state.Itinerary),
		"active_day": state.ActiveDay,
		"generating": state.Generating,
	})
}
