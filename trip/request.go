// Package trip holds the core trip-planning domain: the normalized search
// request, day plans, hotel listings and the display lookup tables.
package trip

import (
	"fmt"
	"strings"
	"time"
)

// ─── Enumerations ─────────────────────────────────────────────────────────────

// Travelers is the party-size selector. The form offers a fixed set of
// choices, with "5+" standing in for anything larger.
type Travelers string

const (
	TravelersOne      Travelers = "1"
	TravelersTwo      Travelers = "2"
	TravelersThree    Travelers = "3"
	TravelersFour     Travelers = "4"
	TravelersFivePlus Travelers = "5+"
)

// ParseTravelers maps raw form input onto the closed set. Empty input gets
// the form default of two people; anything else is rejected.
func ParseTravelers(s string) (Travelers, error) {
	switch strings.TrimSpace(s) {
	case "":
		return TravelersTwo, nil
	case "1":
		return TravelersOne, nil
	case "2":
		return TravelersTwo, nil
	case "3":
		return TravelersThree, nil
	case "4":
		return TravelersFour, nil
	case "5+":
		return TravelersFivePlus, nil
	}
	return "", fmt.Errorf("%w: travelers must be 1-4 or 5+", ErrValidation)
}

// BudgetTier is the three-way budget selector.
type BudgetTier string

const (
	BudgetLow    BudgetTier = "budget"
	BudgetMedium BudgetTier = "medium"
	BudgetLuxury BudgetTier = "luxury"
)

// ParseBudget maps raw form input onto the closed set. Empty input gets the
// form default of medium.
func ParseBudget(s string) (BudgetTier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return BudgetMedium, nil
	case "budget":
		return BudgetLow, nil
	case "medium":
		return BudgetMedium, nil
	case "luxury":
		return BudgetLuxury, nil
	}
	return "", fmt.Errorf("%w: budget must be budget, medium or luxury", ErrValidation)
}

// ─── Request ─────────────────────────────────────────────────────────────────

// Request is one normalized trip search. It is immutable once built: the
// session makes a fresh one whenever destination or budget changes.
type Request struct {
	Destination string     `json:"destination"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     time.Time  `json:"end_date"`
	Travelers   Travelers  `json:"travelers"`
	Budget      BudgetTier `json:"budget"`
}

// NewRequest validates raw form fields and packages them into a Request.
// Destination must be non-empty, both dates must be set, and the end date
// may not come before the start date.
func NewRequest(destination string, start, end time.Time, travelers, budget string) (Request, error) {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return Request{}, fmt.Errorf("%w: destination is required", ErrValidation)
	}
	if start.IsZero() || end.IsZero() {
		return Request{}, fmt.Errorf("%w: start and end dates are required", ErrValidation)
	}
	if end.Before(start) {
		return Request{}, fmt.Errorf("%w: end date must not be before start date", ErrValidation)
	}

	t, err := ParseTravelers(travelers)
	if err != nil {
		return Request{}, err
	}
	b, err := ParseBudget(budget)
	if err != nil {
		return Request{}, err
	}

	return Request{
		Destination: destination,
		StartDate:   start,
		EndDate:     end,
		Travelers:   t,
		Budget:      b,
	}, nil
}

// Days returns the trip length in whole days, see Duration.
func (r Request) Days() int {
	return Duration(r.StartDate, r.EndDate)
}
