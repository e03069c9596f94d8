package naolib

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/naolametric/naolametric/pkg/transit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(server *httptest.Server) *Client {
	return NewClient(server.URL, 2*time.Second)
}

func TestAllStopsDecodesDirectory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/arrets.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"code":"COMM","name":"Commerce"},
			{"code":"BOFA","name":"Bouffay"},
			{"code":"","name":"Broken record"}
		]`))
	}))
	defer server.Close()

	stops, err := newTestClient(server).AllStops(context.Background())

	require.NoError(t, err)
	require.Len(t, stops, 2)
	assert.Equal(t, "COMM", stops[0].Code)
	assert.Equal(t, "Commerce", stops[0].Name)
}

func TestAllStopsMalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>gateway error</html>`))
	}))
	defer server.Close()

	_, err := newTestClient(server).AllStops(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, transit.ErrUpstreamBadResponse)
}

func TestAllStopsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newTestClient(server).AllStops(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, transit.ErrUpstreamBadResponse)
}

func TestAllStopsUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := newTestClient(server).AllStops(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, transit.ErrUpstreamUnreachable)
}

func TestStopArrivalsTimeoutReportedAsUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 50*time.Millisecond)
	_, err := client.StopArrivals(context.Background(), "COMM", "", transit.DirectionNone)

	require.Error(t, err)
	assert.ErrorIs(t, err, transit.ErrUpstreamUnreachable)
}

func TestStopArrivalsPreservesUpstreamOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tempsattente.json/COMM", r.URL.Path)
		w.Write([]byte(`[
			{"line":"1","direction":1,"destination":"Beaujoire","waitMinutes":3},
			{"line":"C1","direction":2,"destination":"Jardin des Plantes","waitMinutes":5},
			{"line":"1","direction":1,"destination":"Beaujoire","waitMinutes":8}
		]`))
	}))
	defer server.Close()

	arrivals, err := newTestClient(server).StopArrivals(context.Background(), "COMM", "", transit.DirectionNone)

	require.NoError(t, err)
	require.Len(t, arrivals, 3)
	assert.Equal(t, 3, arrivals[0].WaitMinutes)
	assert.Equal(t, 5, arrivals[1].WaitMinutes)
	assert.Equal(t, 8, arrivals[2].WaitMinutes)
}

func TestStopArrivalsFiltersLineCaseInsensitively(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"line":"c1","direction":1,"destination":"Beaujoire","waitMinutes":3},
			{"line":"2","direction":1,"destination":"Orvault","waitMinutes":5}
		]`))
	}))
	defer server.Close()

	arrivals, err := newTestClient(server).StopArrivals(context.Background(), "COMM", "C1", transit.DirectionNone)

	require.NoError(t, err)
	require.Len(t, arrivals, 1)
	assert.Equal(t, "c1", arrivals[0].Line)
}

func TestStopArrivalsFiltersDirection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"line":"1","direction":1,"destination":"Beaujoire","waitMinutes":3},
			{"line":"1","direction":2,"destination":"François Mitterrand","waitMinutes":4}
		]`))
	}))
	defer server.Close()

	arrivals, err := newTestClient(server).StopArrivals(context.Background(), "COMM", "", transit.DirectionInbound)

	require.NoError(t, err)
	require.Len(t, arrivals, 1)
	assert.Equal(t, transit.DirectionInbound, arrivals[0].Direction)
}

func TestStopArrivalsUnknownStop(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newTestClient(server).StopArrivals(context.Background(), "ZZZZ", "", transit.DirectionNone)

	require.Error(t, err)
	assert.ErrorIs(t, err, transit.ErrUnknownStop)
}

func TestStopArrivalsMalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected":"object"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server).StopArrivals(context.Background(), "COMM", "", transit.DirectionNone)

	require.Error(t, err)
	assert.ErrorIs(t, err, transit.ErrUpstreamBadResponse)
}
