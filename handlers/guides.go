package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"saarthi/services"
	"saarthi/trip"
)

// PlaceView is a place plus its category badge color.
type PlaceView struct {
	services.Place
	Color string `json:"color"`
}

func (a *API) GetWeather(c *gin.Context) {
	sess, ok := a.lookupSession(c)
	if !ok {
		return
	}

	destination := sess.Request().Destination
	c.JSON(http.StatusOK, gin.H{
		"destination": destination,
		"weather":     services.WeatherFor(destination),
	})
}

func (a *API) GetTransport(c *gin.Context) {
	sess, ok := a.lookupSession(c)
	if !ok {
		return
	}

	destination := sess.Request().Destination
	c.JSON(http.StatusOK, gin.H{
		"destination": destination,
		"transport":   services.TransportFor(destination),
	})
}

func (a *API) GetPlaces(c *gin.Context) {
	sess, ok := a.lookupSession(c)
	if !ok {
		return
	}

	destination := sess.Request().Destination
	places := services.PlacesFor(destination)
	views := make([]PlaceView, 0, len(places))
	for _, p := range places {
		views = append(views, PlaceView{Place: p, Color: trip.PlaceCategoryColor(p.Category)})
	}

	c.JSON(http.StatusOK, gin.H{
		"destination": destination,
		"places":      views,
	})
}

// Destinations backs the search form's suggestion dropdown.
func (a *API) Destinations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"destinations": services.SuggestDestinations(c.Query("q")),
	})
}
