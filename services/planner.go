package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"saarthi/trip"
)

// PlannerClient talks to the itinerary-generation service. One request per
// user-initiated generate; no retries; the caller re-triggers on failure.
type PlannerClient struct {
	baseURL    string
	httpClient *http.Client
}

var plannerClient *PlannerClient

func InitPlanner() {
	base := os.Getenv("PLANNER_URL")
	if base == "" {
		base = "http://localhost:5000"
	}

	plannerClient = NewPlannerClient(base)
	log.Println("✅ Planner service:", base)
}

func GetPlannerClient() *PlannerClient {
	return plannerClient
}

func NewPlannerClient(baseURL string) *PlannerClient {
	return &PlannerClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type plannerRequest struct {
	Destination string `json:"destination"`
	Days        int    `json:"days"`
}

type plannerResponse struct {
	Days []struct {
		Day        int    `json:"day"`
		Title      string `json:"title"`
		Activities []struct {
			Time        string `json:"time"`
			Title       string `json:"title"`
			Description string `json:"description"`
			Icon        string `json:"icon"`
			Duration    string `json:"duration"`
		} `json:"activities"`
	} `json:"days"`
}

// GenerateItinerary asks the planner for a day-by-day plan. An empty
// destination or non-positive day count never reaches the wire. A
// well-formed response with no days is trip.ErrEmptyItinerary; transport
// problems are trip.ErrUnavailable.
func (c *PlannerClient) GenerateItinerary(ctx context.Context, destination string, days int) ([]trip.DayPlan, error) {
	if strings.TrimSpace(destination) == "" || days <= 0 {
		return nil, fmt.Errorf("%w: destination and a positive day count are required", trip.ErrValidation)
	}

	jsonBody, err := json.Marshal(plannerRequest{Destination: destination, Days: days})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/api/itinerary", bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", trip.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: planner error (%d): %s", trip.ErrUnavailable, resp.StatusCode, string(body))
	}

	var parsed plannerResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: failed to parse planner response: %v", trip.ErrUnavailable, err)
	}

	if len(parsed.Days) == 0 {
		return nil, trip.ErrEmptyItinerary
	}

	plans := make([]trip.DayPlan, 0, len(parsed.Days))
	for _, d := range parsed.Days {
		activities := make([]trip.Activity, 0, len(d.Activities))
		for _, a := range d.Activities {
			activities = append(activities, trip.Activity{
				Time:        a.Time,
				Title:       a.Title,
				Description: a.Description,
				Icon:        trip.ParseIconKind(a.Icon),
				Duration:    a.Duration,
			})
		}
		plans = append(plans, trip.DayPlan{
			Day:        d.Day,
			Title:      d.Title,
			Activities: activities,
		})
	}

	return trip.NormalizeDayPlans(plans), nil
}
