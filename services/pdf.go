package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"saarthi/trip"
)

type PDFData struct {
	TravelerName string
	Destination  string
	StartDate    string
	EndDate      string
	Travelers    string
	Budget       string
	Days         []trip.DayPlan
	Hotel        *trip.HotelListing
}

// GeneratePDFBytes renders the itinerary as a PDF and returns raw bytes
// (no filesystem needed).
func GeneratePDFBytes(data PDFData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// ── Header Bar ───────────────────────────────────────────
	pdf.SetFillColor(26, 26, 26)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "Saarthi", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(255, 230, 109)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "AI Smart Trip Planner", "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	// ── Section Helpers ──────────────────────────────────────
	sectionHeader := func(title string) {
		pdf.SetFillColor(26, 26, 26)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, value, "", 1, "L", false, 0, "")
	}

	// ── Trip Overview ─────────────────────────────────────────
	sectionHeader("Trip Overview")
	name := data.TravelerName
	if name == "" {
		name = "Guest Traveler"
	}
	row("Traveler", name)
	row("Destination", data.Destination)
	row("Dates", fmt.Sprintf("%s - %s", fmtDateReadable(data.StartDate), fmtDateReadable(data.EndDate)))
	row("Travelers", data.Travelers)
	row("Budget", data.Budget)
	row("Generated", time.Now().Format("02 Jan 2006, 15:04 UTC"))
	pdf.Ln(4)

	// ── Day-by-day Itinerary ──────────────────────────────────
	for _, day := range data.Days {
		sectionHeader(fmt.Sprintf("Day %d: %s", day.Day, day.Title))
		for _, a := range day.Activities {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.SetTextColor(20, 20, 20)
			pdf.CellFormat(30, 6, a.Time, "", 0, "L", false, 0, "")
			pdf.CellFormat(140, 6, fmt.Sprintf("%s (%s)", a.Title, a.Duration), "", 1, "L", false, 0, "")
			if a.Description != "" {
				pdf.SetFont("Helvetica", "", 9)
				pdf.SetTextColor(90, 90, 90)
				pdf.SetX(50)
				pdf.MultiCell(140, 5, a.Description, "", "L", false)
			}
		}
		pdf.Ln(3)
	}

	// ── Hotel ─────────────────────────────────────────────────
	if data.Hotel != nil {
		sectionHeader("Recommended Hotel")
		row("Hotel", data.Hotel.Name)
		row("Location", data.Hotel.Location)
		row("Rating", fmt.Sprintf("%.1f (%d reviews)", data.Hotel.Rating, data.Hotel.Reviews))
		row("Price", fmt.Sprintf("Rs %.0f per night", data.Hotel.Price))
		amenities := ""
		for i, a := range data.Hotel.Amenities {
			if i > 0 {
				amenities += ", "
			}
			amenities += a
		}
		row("Amenities", amenities)
		pdf.Ln(4)
	}

	// ── Footer ────────────────────────────────────────────────
	pdf.SetY(-22)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 8,
		"Generated by Saarthi AI Smart Trip Planner · Not a booking confirmation · Prices subject to change",
		"", 0, "C", false, 0, "")

	// ── Write to buffer ───────────────────────────────────────
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}

func fmtDateReadable(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("02 Jan 2006 (Mon)")
}
