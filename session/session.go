// Package session owns the live state of one trip search: the normalized
// request, the generated itinerary, the active day and the hotel listings.
// All mutation goes through Session methods; there are no package globals.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"saarthi/trip"
)

var (
	// ErrGenerationInFlight means an itinerary generation is already
	// outstanding for this session. Generation is single-flight per
	// session: the second trigger is rejected, not queued.
	ErrGenerationInFlight = errors.New("itinerary generation already in progress")

	// ErrStaleHotelResponse means a hotel lookup resolved after a newer
	// one was issued; its result was discarded.
	ErrStaleHotelResponse = errors.New("stale hotel response discarded")

	// ErrNotFound means the store has no session under that id.
	ErrNotFound = errors.New("session not found")
)

// Planner generates day-by-day itineraries.
type Planner interface {
	GenerateItinerary(ctx context.Context, destination string, days int) ([]trip.DayPlan, error)
}

// HotelLookup fetches one normalized hotel listing per destination.
type HotelLookup interface {
	LookupHotel(ctx context.Context, destination string) (trip.HotelListing, error)
}

// Session is the single owner of one search's derived state.
type Session struct {
	id      string
	planner Planner
	hotels  HotelLookup

	mu         sync.Mutex
	request    trip.Request
	itinerary  []trip.DayPlan
	activeDay  int
	generating bool
	listings   []trip.HotelListing
	hotelErr   error

	// hotelSeq orders hotel lookups; a response whose sequence number is
	// no longer the latest issued is thrown away.
	hotelSeq atomic.Uint64
}

// State is a point-in-time copy of a session for rendering.
type State struct {
	ID         string
	Request    trip.Request
	Itinerary  []trip.DayPlan
	ActiveDay  int
	Generating bool
	Hotels     []trip.HotelListing
	HotelErr   error
}

// New opens a session around a validated request.
func New(req trip.Request, planner Planner, hotels HotelLookup) *Session {
	return &Session{
		id:      uuid.New().String(),
		planner: planner,
		hotels:  hotels,
		request: req,
	}
}

func (s *Session) ID() string {
	return s.id
}

// Request returns the current trip request.
func (s *Session) Request() trip.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.request
}

// State returns a snapshot of the session.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		ID:         s.id,
		Request:    s.request,
		Itinerary:  append([]trip.DayPlan(nil), s.itinerary...),
		ActiveDay:  s.activeDay,
		Generating: s.generating,
		Hotels:     append([]trip.HotelListing(nil), s.listings...),
		HotelErr:   s.hotelErr,
	}
}

// GenerateItinerary asks the planner for a fresh itinerary. On success the
// itinerary is replaced wholesale and the active day resets to 1. On any
// failure a previously loaded itinerary stays in place; the user simply
// re-triggers.
func (s *Session) GenerateItinerary(ctx context.Context) error {
	s.mu.Lock()
	if s.generating {
		s.mu.Unlock()
		return ErrGenerationInFlight
	}
	req := s.request
	days := req.Days()
	if req.Destination == "" || days <= 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: destination and a positive day count are required", trip.ErrValidation)
	}
	s.generating = true
	s.mu.Unlock()

	plans, err := s.planner.GenerateItinerary(ctx, req.Destination, days)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.generating = false
	if err != nil {
		return err
	}
	s.itinerary = plans
	s.activeDay = 1
	return nil
}

// RefreshHotels runs one hotel lookup for the current destination.
// Lookups carry a monotonically increasing sequence number; if a newer
// lookup was issued while this one was outstanding, the result is
// discarded and ErrStaleHotelResponse is returned.
func (s *Session) RefreshHotels(ctx context.Context) error {
	s.mu.Lock()
	destination := s.request.Destination
	s.mu.Unlock()

	seq := s.hotelSeq.Add(1)
	listing, err := s.hotels.LookupHotel(ctx, destination)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.hotelSeq.Load() {
		return ErrStaleHotelResponse
	}
	if err != nil {
		s.hotelErr = err
		return err
	}
	s.hotelErr = nil
	s.listings = []trip.HotelListing{listing}
	return nil
}

// SetActiveDay selects a day tab. The day must exist in the current
// itinerary.
func (s *Session) SetActiveDay(day int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if day < 1 || day > len(s.itinerary) {
		return fmt.Errorf("%w: day %d is not part of the itinerary", trip.ErrValidation, day)
	}
	s.activeDay = day
	return nil
}

// SetDestination swaps the destination on the request. The caller is
// expected to follow up with RefreshHotels; destination is a hotel-fetch
// dependency.
func (s *Session) SetDestination(destination string) error {
	req, err := trip.NewRequest(destination, s.Request().StartDate, s.Request().EndDate,
		string(s.Request().Travelers), string(s.Request().Budget))
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.request = req
	return nil
}

// SetBudget swaps the budget tier. Like SetDestination, it is a hotel
// refetch trigger; the budget itself is never sent upstream.
func (s *Session) SetBudget(budget string) error {
	b, err := trip.ParseBudget(budget)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.request.Budget = b
	return nil
}

// Reset clears everything derived from the request: itinerary, active day,
// hotel listings and errors. Bumping the hotel sequence also invalidates
// any lookup still in flight.
func (s *Session) Reset() {
	s.hotelSeq.Add(1)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.itinerary = nil
	s.activeDay = 0
	s.listings = nil
	s.hotelErr = nil
}
