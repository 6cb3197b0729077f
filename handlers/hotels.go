package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetHotels returns the hotel panel state. The lookup itself runs in the
// background when destination or budget changes; this endpoint only reads
// the latest applied result.
func (a *API) GetHotels(c *gin.Context) {
	sess, ok := a.lookupSession(c)
	if !ok {
		return
	}

	state := sess.State()
	body := gin.H{"hotels": state.Hotels}
	if state.HotelErr != nil {
		body["error"] = "Failed to fetch hotel data. Please try again later."
	}
	c.JSON(http.StatusOK, body)
}
