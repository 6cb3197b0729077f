package services_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saarthi/services"
	"saarthi/trip"
)

func TestPlannerClient_GenerateItinerary(t *testing.T) {
	var gotBody struct {
		Destination string `json:"destination"`
		Days        int    `json:"days"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST", r.Method)
		require.Equal(t, "/api/itinerary", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"days":[
			{"day":1,"title":"Arrival","activities":[
				{"time":"9:00 AM","title":"Breakfast","description":"Local cafe","icon":"food","duration":"1h"},
				{"time":"11:00 AM","title":"Fort walk","description":"Old town","icon":"sightseeing","duration":"2h"}
			]},
			{"day":2,"title":"Beaches","activities":[]}
		]}`))
	}))
	defer srv.Close()

	client := services.NewPlannerClient(srv.URL)
	plans, err := client.GenerateItinerary(context.Background(), "Goa", 2)

	require.NoError(t, err)
	assert.Equal(t, "Goa", gotBody.Destination)
	assert.Equal(t, 2, gotBody.Days)

	require.Len(t, plans, 2)
	assert.Equal(t, 1, plans[0].Day)
	assert.Equal(t, 2, plans[1].Day)
	assert.Equal(t, "Arrival", plans[0].Title)

	require.Len(t, plans[0].Activities, 2)
	assert.Equal(t, trip.IconFood, plans[0].Activities[0].Icon)
	// Unknown icon tags collapse to the default kind.
	assert.Equal(t, trip.IconDefault, plans[0].Activities[1].Icon)
}

func TestPlannerClient_ReindexesDays(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"days":[{"day":7,"title":"A"},{"day":7,"title":"B"},{"day":2,"title":"C"}]}`))
	}))
	defer srv.Close()

	plans, err := services.NewPlannerClient(srv.URL).GenerateItinerary(context.Background(), "Goa", 3)

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, []int{plans[0].Day, plans[1].Day, plans[2].Day})
}

func TestPlannerClient_EmptyDaysIsSemanticFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"days":[]}`))
	}))
	defer srv.Close()

	_, err := services.NewPlannerClient(srv.URL).GenerateItinerary(context.Background(), "Goa", 3)

	assert.ErrorIs(t, err, trip.ErrEmptyItinerary)
}

func TestPlannerClient_TransportFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"non-2xx", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := services.NewPlannerClient(srv.URL).GenerateItinerary(context.Background(), "Goa", 3)

			assert.ErrorIs(t, err, trip.ErrUnavailable)
		})
	}
}

func TestPlannerClient_GuardBlocksInvalidInput(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	client := services.NewPlannerClient(srv.URL)

	_, err := client.GenerateItinerary(context.Background(), "", 3)
	assert.ErrorIs(t, err, trip.ErrValidation)

	_, err = client.GenerateItinerary(context.Background(), "Goa", 0)
	assert.ErrorIs(t, err, trip.ErrValidation)

	_, err = client.GenerateItinerary(context.Background(), "Goa", -1)
	assert.ErrorIs(t, err, trip.ErrValidation)

	// Guard clauses never reach the wire.
	assert.Equal(t, int32(0), calls.Load())
}
