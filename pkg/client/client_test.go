package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens struct {
	token string
	err   error

	refreshed bool
}

func (s *staticTokens) Token(_ context.Context, forceRefresh bool) (string, error) {
	if forceRefresh {
		s.refreshed = true
	}
	return s.token, s.err
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(Protected{Role: "caterer", Email: "a@b.c"})
	}))
	defer srv.Close()

	c := New(srv.URL, &staticTokens{token: "tok-123"})

	p, err := c.Protected(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "caterer", p.Role)
}

func TestClient_TokenSourceFailure(t *testing.T) {
	c := New("http://unused", &staticTokens{err: ErrNoSession})

	_, err := c.Protected(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "role already assigned"})
	}))
	defer srv.Close()

	c := New(srv.URL, &staticTokens{token: "tok"})

	err := c.SelectRole(context.Background(), "caterer")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "role already assigned", apiErr.Message)
}

func TestClient_APIError_NonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	c := New(srv.URL, &staticTokens{token: "tok"})

	_, err := c.MyEvents(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, http.StatusText(http.StatusBadGateway), apiErr.Message)
}

func TestClient_SelectRole_SendsQuery(t *testing.T) {
	var gotRole string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/users/select-role", r.URL.Path)
		gotRole = r.URL.Query().Get("role")
		json.NewEncoder(w).Encode(map[string]string{"status": "role assigned"})
	}))
	defer srv.Close()

	c := New(srv.URL, &staticTokens{token: "tok"})

	require.NoError(t, c.SelectRole(context.Background(), "ngo"))
	assert.Equal(t, "ngo", gotRole)
}

func TestClient_MatchCaterers_EncodesFilter(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/caterers/match/e1", r.URL.Path)
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode([]Caterer{{ID: "c1", BusinessName: "Spice Route"}})
	}))
	defer srv.Close()

	c := New(srv.URL, &staticTokens{token: "tok"})

	minPrice, maxPrice := 100.0, 350.5
	caterers, err := c.MatchCaterers(context.Background(), "e1", MatchFilter{
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
		VegOnly:  true,
		SortBy:   "distance",
	})
	require.NoError(t, err)
	require.Len(t, caterers, 1)

	assert.Equal(t, []string{"100"}, gotQuery["min_price"])
	assert.Equal(t, []string{"350.5"}, gotQuery["max_price"])
	assert.Equal(t, []string{"true"}, gotQuery["veg_only"])
	assert.Equal(t, []string{"distance"}, gotQuery["sort_by"])
	assert.NotContains(t, gotQuery, "min_rating")
	assert.NotContains(t, gotQuery, "nonveg_only")
}

func TestClient_CreateEvent_RoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/events", r.URL.Path)

		var in CreateEventInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "Annual Tech Summit", in.EventName)
		assert.Equal(t, 300, in.Attendees)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Event{ID: "e1", EventName: in.EventName, Status: "CREATED"})
	}))
	defer srv.Close()

	c := New(srv.URL, &staticTokens{token: "tok"})

	event, err := c.CreateEvent(context.Background(), CreateEventInput{
		EventName:     "Annual Tech Summit",
		EventType:     "conference",
		Attendees:     300,
		DurationHours: 6,
		MealStyle:     "buffet",
		LocationType:  "indoor",
		Season:        "winter",
		Address:       "HICC, Madhapur",
		City:          "Hyderabad",
		Pincode:       "500081",
	})
	require.NoError(t, err)
	assert.Equal(t, "e1", event.ID)
	assert.Equal(t, "CREATED", event.Status)
}

func TestClient_RespondBooking_PatchWithStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/api/bookings/respond/b1", r.URL.Path)
		require.Equal(t, "ACCEPTED", r.URL.Query().Get("status"))
		json.NewEncoder(w).Encode(map[string]string{"status": "ACCEPTED"})
	}))
	defer srv.Close()

	c := New(srv.URL, &staticTokens{token: "tok"})

	assert.NoError(t, c.RespondBooking(context.Background(), "b1", "ACCEPTED"))
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	c := New(srv.URL, &staticTokens{token: "tok"})

	_, err := c.NgoMe(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}
