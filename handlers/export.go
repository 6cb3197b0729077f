package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"saarthi/database"
	"saarthi/services"
	"saarthi/trip"
)

type ExportRequest struct {
	TravelerName string `json:"traveler_name"`
}

type ExportResponse struct {
	ItineraryID string `json:"itinerary_id"`
	PDFURL      string `json:"pdf_url"`
	Message     string `json:"message"`
}

// ExportItinerary renders the session's itinerary as a PDF and stores it
// for download.
func (a *API) ExportItinerary(c *gin.Context) {
	sess, ok := a.lookupSession(c)
	if !ok {
		return
	}

	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if a.repo == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Export is not available"})
		return
	}

	state := sess.State()
	if len(state.Itinerary) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Generate an itinerary before exporting"})
		return
	}

	var hotel *trip.HotelListing
	if len(state.Hotels) > 0 {
		hotel = &state.Hotels[0]
	}

	pdfBytes, err := services.GeneratePDFBytes(services.PDFData{
		TravelerName: req.TravelerName,
		Destination:  state.Request.Destination,
		StartDate:    state.Request.StartDate.Format("2006-01-02"),
		EndDate:      state.Request.EndDate.Format("2006-01-02"),
		Travelers:    string(state.Request.Travelers),
		Budget:       string(state.Request.Budget),
		Days:         state.Itinerary,
		Hotel:        hotel,
	})
	if err != nil {
		log.Printf("❌ PDF generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}

	daysJSON, _ := json.Marshal(state.Itinerary)
	hotelJSON, _ := json.Marshal(state.Hotels)

	record := &database.ItineraryRecord{
		ID:           uuid.New().String(),
		RequestID:    sess.ID(),
		DaysJSON:     string(daysJSON),
		HotelJSON:    string(hotelJSON),
		PDFData:      pdfBytes,
		TravelerName: req.TravelerName,
	}
	if err := a.repo.SaveItinerary(record); err != nil {
		log.Printf("❌ Failed to save itinerary: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save generated PDF"})
		return
	}

	log.Printf("✅ PDF generated for itinerary %s (%d bytes)", record.ID, len(pdfBytes))

	c.JSON(http.StatusOK, ExportResponse{
		ItineraryID: record.ID,
		PDFURL:      "/api/download/" + record.ID,
		Message:     "PDF generated successfully",
	})
}

// Download serves a previously exported itinerary PDF.
func (a *API) Download(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing itinerary ID"})
		return
	}

	if a.repo == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Export is not available"})
		return
	}

	record, err := a.repo.GetItinerary(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Itinerary not found"})
		return
	}

	if len(record.PDFData) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "PDF has not been generated for this itinerary"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=saarthi-itinerary.pdf")
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", record.PDFData)
}
