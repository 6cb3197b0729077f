package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"saarthi/trip"
)

// Fixed lookup parameters. The hotel service is queried with a constant
// property id and party size regardless of the trip request; the budget
// tier only re-triggers the lookup, it is never transmitted.
const (
	defaultHotelID      = "191605"
	defaultAdults       = 2
	defaultCurrencyCode = "INR"
)

// Fallback defaults applied per field when the payload omits it.
const (
	fallbackHotelName  = "Unnamed Hotel"
	fallbackHotelImage = "https://via.placeholder.com/600x400?text=Hotel"
	fallbackHotelPrice = 4500
	fallbackRating     = 4.5
	fallbackReviews    = 100
	maxAmenities       = 5
)

func fallbackAmenities() []string {
	return []string{"Free WiFi", "Breakfast", "Air Conditioning", "Restaurant"}
}

// HotelClient talks to the hotel-lookup service and normalizes its
// heterogeneous payload into a trip.HotelListing. Normalized listings are
// cached per destination when a cache is attached.
type HotelClient struct {
	baseURL    string
	httpClient *http.Client
	cache      *HotelCache
}

var hotelClient *HotelClient

func InitHotels() {
	base := os.Getenv("HOTEL_URL")
	if base == "" {
		base = "http://localhost:5000"
	}

	hotelClient = NewHotelClient(base, InitHotelCache())
	log.Println("✅ Hotel service:", base)
}

func GetHotelClient() *HotelClient {
	return hotelClient
}

func NewHotelClient(baseURL string, cache *HotelCache) *HotelClient {
	return &HotelClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cache: cache,
	}
}

// hotelPayload is the upstream shape. Every field is optional from our
// side; zero values trigger the per-field fallbacks.
type hotelPayload struct {
	HotelID   int64  `json:"hotel_id"`
	HotelName string `json:"hotel_name"`
	Photo     struct {
		Main string `json:"main"`
	} `json:"photo"`
	PriceBreakdown struct {
		GrossPrice float64 `json:"gross_price"`
	} `json:"price_breakdown"`
	MinTotalPrice float64 `json:"min_total_price"`
	ReviewScore   float64 `json:"review_score"`
	ReviewNr      int     `json:"review_nr"`
	Facilities    []struct {
		Name string `json:"name"`
	} `json:"facilities"`
}

// LookupHotel fetches and normalizes one hotel for the destination. The
// response may arrive wrapped in a "data" field or bare; either way the
// returned listing is fully populated.
func (c *HotelClient) LookupHotel(ctx context.Context, destination string) (trip.HotelListing, error) {
	if listing, ok := c.cache.Get(ctx, destination); ok {
		return listing, nil
	}

	params := url.Values{}
	params.Set("hotel_id", defaultHotelID)
	params.Set("adults", fmt.Sprintf("%d", defaultAdults))
	params.Set("currency_code", defaultCurrencyCode)

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/api/hotels?"+params.Encode(), nil)
	if err != nil {
		return trip.HotelListing{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return trip.HotelListing{}, fmt.Errorf("%w: %v", trip.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return trip.HotelListing{}, fmt.Errorf("%w: hotel lookup error (%d): %s", trip.ErrUnavailable, resp.StatusCode, string(body))
	}

	listing, err := normalizeHotel(body, destination)
	if err != nil {
		return trip.HotelListing{}, err
	}

	c.cache.Set(ctx, destination, listing)
	return listing, nil
}

func normalizeHotel(body []byte, destination string) (trip.HotelListing, error) {
	// The payload may be nested under "data" or be the object itself.
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	payload := body
	if err := json.Unmarshal(body, &envelope); err == nil {
		if len(envelope.Data) > 0 && string(envelope.Data) != "null" {
			payload = envelope.Data
		}
	}

	var raw hotelPayload
	if err := json.Unmarshal(payload, &raw); err != nil {
		return trip.HotelListing{}, fmt.Errorf("%w: failed to parse hotel response: %v", trip.ErrUnavailable, err)
	}

	listing := trip.HotelListing{
		ID:        raw.HotelID,
		Name:      raw.HotelName,
		Image:     raw.Photo.Main,
		Rating:    raw.ReviewScore,
		Reviews:   raw.ReviewNr,
		Price:     raw.PriceBreakdown.GrossPrice,
		Location:  destination,
		Amenities: nil,
		Type:      "luxury",
	}

	// Each field defaults independently: a payload missing one field still
	// keeps whatever the others carried.
	if listing.ID == 0 {
		listing.ID = 1
	}
	if listing.Name == "" {
		listing.Name = fallbackHotelName
	}
	if listing.Image == "" {
		listing.Image = fallbackHotelImage
	}
	if listing.Price == 0 {
		listing.Price = raw.MinTotalPrice
	}
	if listing.Price == 0 {
		listing.Price = fallbackHotelPrice
	}
	if listing.Rating == 0 {
		listing.Rating = fallbackRating
	}
	if listing.Reviews == 0 {
		listing.Reviews = fallbackReviews
	}

	for _, f := range raw.Facilities {
		if len(listing.Amenities) == maxAmenities {
			break
		}
		listing.Amenities = append(listing.Amenities, f.Name)
	}
	if len(listing.Amenities) == 0 {
		listing.Amenities = fallbackAmenities()
	}

	return listing, nil
}
