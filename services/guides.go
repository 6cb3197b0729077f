package services

import "strings"

// Static guide data backing the weather, transport and places panels.
// These panels render curated content; only the itinerary and hotel panels
// go to the network.

// ─── Weather ──────────────────────────────────────────────────────────────────

type WeatherNow struct {
	Temp      int    `json:"temp"`
	Condition string `json:"condition"`
	Humidity  int    `json:"humidity"`
	WindSpeed int    `json:"wind_speed"`
	Icon      string `json:"icon"`
}

type ForecastDay struct {
	Day       string `json:"day"`
	High      int    `json:"high"`
	Low       int    `json:"low"`
	Condition string `json:"condition"`
}

type WeatherReport struct {
	Current  WeatherNow    `json:"current"`
	Forecast []ForecastDay `json:"forecast"`
}

var destinationWeather = map[string]WeatherReport{
	"Goa": {
		Current: WeatherNow{Temp: 31, Condition: "Sunny", Humidity: 72, WindSpeed: 14, Icon: "sunny"},
		Forecast: []ForecastDay{
			{"Mon", 32, 25, "sunny"},
			{"Tue", 31, 24, "sunny"},
			{"Wed", 30, 24, "partly-cloudy"},
			{"Thu", 31, 25, "sunny"},
			{"Fri", 32, 26, "partly-cloudy"},
		},
	},
	"Kerala": {
		Current: WeatherNow{Temp: 27, Condition: "Light Rain", Humidity: 85, WindSpeed: 10, Icon: "rainy"},
		Forecast: []ForecastDay{
			{"Mon", 28, 22, "rainy"},
			{"Tue", 27, 22, "rainy"},
			{"Wed", 28, 23, "partly-cloudy"},
			{"Thu", 29, 23, "partly-cloudy"},
			{"Fri", 28, 22, "rainy"},
		},
	},
	"Manali": {
		Current: WeatherNow{Temp: 12, Condition: "Partly Cloudy", Humidity: 55, WindSpeed: 18, Icon: "partly-cloudy"},
		Forecast: []ForecastDay{
			{"Mon", 14, 4, "sunny"},
			{"Tue", 13, 3, "partly-cloudy"},
			{"Wed", 11, 2, "rainy"},
			{"Thu", 12, 3, "partly-cloudy"},
			{"Fri", 15, 5, "sunny"},
		},
	},
	"Rajasthan": {
		Current: WeatherNow{Temp: 34, Condition: "Sunny", Humidity: 30, WindSpeed: 16, Icon: "sunny"},
		Forecast: []ForecastDay{
			{"Mon", 36, 24, "sunny"},
			{"Tue", 35, 23, "sunny"},
			{"Wed", 34, 23, "sunny"},
			{"Thu", 35, 24, "partly-cloudy"},
			{"Fri", 36, 25, "sunny"},
		},
	},
}

// WeatherFor returns the weather panel for a destination, falling back to
// a generic report for destinations not in the map.
func WeatherFor(destination string) WeatherReport {
	if report, ok := destinationWeather[destination]; ok {
		return report
	}

	return WeatherReport{
		Current: WeatherNow{Temp: 28, Condition: "Partly Cloudy", Humidity: 65, WindSpeed: 12, Icon: "partly-cloudy"},
		Forecast: []ForecastDay{
			{"Mon", 30, 22, "sunny"},
			{"Tue", 29, 21, "partly-cloudy"},
			{"Wed", 27, 20, "rainy"},
			{"Thu", 28, 21, "partly-cloudy"},
			{"Fri", 31, 23, "sunny"},
		},
	}
}

// ─── Transport ────────────────────────────────────────────────────────────────

type FlightOption struct {
	ID           int    `json:"id"`
	Airline      string `json:"airline"`
	FlightNumber string `json:"flight_number"`
	Departure    string `json:"departure"`
	Arrival      string `json:"arrival"`
	Duration     string `json:"duration"`
	Stops        string `json:"stops"`
	Price        int    `json:"price"`
	Class        string `json:"class"`
	Available    int    `json:"available"`
}

type TrainOption struct {
	ID          int      `json:"id"`
	Operator    string   `json:"operator"`
	TrainNumber string   `json:"train_number"`
	Departure   string   `json:"departure"`
	Arrival     string   `json:"arrival"`
	Duration    string   `json:"duration"`
	Stops       string   `json:"stops"`
	Price       int      `json:"price"`
	Class       string   `json:"class"`
	Amenities   []string `json:"amenities"`
}

type TransportOptions struct {
	Flights []FlightOption `json:"flights"`
	Trains  []TrainOption  `json:"trains"`
}

// TransportFor returns flight and train options toward a destination.
func TransportFor(destination string) TransportOptions {
	return TransportOptions{
		Flights: []FlightOption{
			{1, "IndiGo", "6E 2847", "8:30 AM", "11:45 AM", "3h 15m", "Non-stop", 5890, "Economy", 12},
			{2, "Air India", "AI 1523", "2:15 PM", "5:50 PM", "3h 35m", "Non-stop", 4545, "Economy", 8},
			{3, "SpiceJet", "SG 9201", "6:00 PM", "9:30 PM", "3h 30m", "Non-stop", 3899, "Economy", 23},
		},
		Trains: []TrainOption{
			{1, "Rajdhani Express", "12301", "7:00 AM", "1:30 PM", "6h 30m", "3 stops", 1850, "2AC", []string{"Meals", "Bedding", "Charging"}},
			{2, "Shatabdi Express", "12009", "10:30 AM", "4:15 PM", "5h 45m", "2 stops", 1280, "CC", []string{"Meals", "AC", "Charging"}},
			{3, "Duronto Express", "12213", "3:45 PM", "10:30 PM", "6h 45m", "1 stop", 2100, "3AC", []string{"Meals", "Bedding"}},
		},
	}
}

// ─── Places ───────────────────────────────────────────────────────────────────

type Place struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Duration    string  `json:"duration"`
	Rating      float64 `json:"rating"`
	Category    string  `json:"category"`
	BestTime    string  `json:"best_time"`
}

const placeImage = "https://images.unsplash.com/photo-1756468288062-bfa87b7cefcc?w=1080"

// PlacesFor returns the must-visit places panel for a destination.
func PlacesFor(destination string) []Place {
	return []Place{
		{1, "Historic Fort", placeImage, "Marvel at centuries-old architecture and royal heritage", "2-3 hours", 4.8, "Heritage", "Morning"},
		{2, "Local Market Bazaar", placeImage, "Experience vibrant colors, sounds, and local crafts", "1-2 hours", 4.6, "Shopping", "Evening"},
		{3, "Temple Complex", placeImage, "Spiritual journey through ancient Indian temples", "2-3 hours", 4.9, "Spiritual", "Morning"},
		{4, "Scenic Viewpoint", placeImage, "Breathtaking panoramic views perfect for photos", "1-2 hours", 4.7, "Nature", "Sunset"},
		{5, "Street Food Hub", placeImage, "Taste authentic local flavors and regional specialties", "1-2 hours", 4.9, "Food", "Evening"},
		{6, "Cultural Museum", placeImage, "Learn about rich Indian culture and traditions", "2-3 hours", 4.5, "Culture", "Afternoon"},
	}
}

// ─── Destinations ─────────────────────────────────────────────────────────────

var indianDestinations = []string{
	"Goa", "Kerala", "Rajasthan", "Kashmir", "Manali", "Shimla", "Ooty",
	"Udaipur", "Jaipur", "Varanasi", "Rishikesh", "Darjeeling", "Andaman",
	"Leh-Ladakh", "Coorg", "Munnar", "Agra", "Mumbai", "Delhi", "Bangalore",
}

// SuggestDestinations returns the destinations matching a query substring,
// case-insensitively. An empty query returns the full list.
func SuggestDestinations(query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))

	matches := make([]string, 0, len(indianDestinations))
	for _, d := range indianDestinations {
		if query == "" || strings.Contains(strings.ToLower(d), query) {
			matches = append(matches, d)
		}
	}
	return matches
}
