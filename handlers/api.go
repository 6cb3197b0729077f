package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"saarthi/database"
	"saarthi/session"
)

// Repository is the slice of the database the handlers use. *database.DB
// satisfies it; tests substitute a double.
type Repository interface {
	SaveTripRequest(r *database.TripRequestRecord) error
	SaveItinerary(i *database.ItineraryRecord) error
	GetItinerary(id string) (*database.ItineraryRecord, error)
	Ping() error
}

// API bundles the handler dependencies: the session store, the two
// upstream clients (behind the session interfaces) and the database.
type API struct {
	sessions *session.Store
	planner  session.Planner
	hotels   session.HotelLookup
	repo     Repository
}

func New(store *session.Store, planner session.Planner, hotels session.HotelLookup, repo Repository) *API {
	return &API{
		sessions: store,
		planner:  planner,
		hotels:   hotels,
		repo:     repo,
	}
}

// Register mounts all routes under /api.
func (a *API) Register(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/health", a.Health)
		api.GET("/destinations", a.Destinations)

		api.POST("/trips", a.CreateTrip)
		api.GET("/trips/:id", a.GetTrip)
		api.PATCH("/trips/:id", a.UpdateTrip)
		api.DELETE("/trips/:id", a.DeleteTrip)

		api.POST("/trips/:id/itinerary", a.GenerateItinerary)
		api.GET("/trips/:id/itinerary", a.GetItinerary)
		api.PUT("/trips/:id/day", a.SetActiveDay)

		api.GET("/trips/:id/hotels", a.GetHotels)
		api.GET("/trips/:id/weather", a.GetWeather)
		api.GET("/trips/:id/transport", a.GetTransport)
		api.GET("/trips/:id/places", a.GetPlaces)

		api.POST("/trips/:id/export", a.ExportItinerary)
		api.GET("/download/:id", a.Download)
	}
}

// lookupSession resolves the :id path param or writes a 404.
func (a *API) lookupSession(c *gin.Context) (*session.Session, bool) {
	s, err := a.sessions.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip session not found"})
		return nil, false
	}
	return s, true
}

func (a *API) Health(c *gin.Context) {
	dbStatus := "ok"
	if a.repo == nil {
		dbStatus = "not initialized"
	} else if err := a.repo.Ping(); err != nil {
		dbStatus = "error: " + err.Error()
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"service":  "Saarthi API",
		"database": dbStatus,
	})
}
