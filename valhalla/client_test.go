package valhalla

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianmaps/valhalla-go/polyline"
)

var testShape = []polyline.Coordinate{
	{Lat: 52.5200, Lon: 13.4050},
	{Lat: 52.5206, Lon: 13.4098},
	{Lat: 52.5215, Lon: 13.4151},
}

func TestClient_Route(t *testing.T) {
	var gotBody RouteRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/route", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		resp := RouteResponse{
			Trip: Trip{
				Status: 0,
				Summary: Summary{
					Time:   142,
					Length: 1.2,
				},
				Legs: []Leg{{
					Shape: polyline.Encode(testShape, polyline.Precision6),
					Maneuvers: []Maneuver{
						{Type: ManeuverStart, Instruction: "Drive east.", BeginShapeIndex: 0, EndShapeIndex: 2},
						{Type: ManeuverDestination, Instruction: "You have arrived.", BeginShapeIndex: 2, EndShapeIndex: 2},
					},
				}},
			},
			ID: gotBody.ID,
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	resp, err := client.Route(context.Background(), &RouteRequest{
		Locations: []Location{NewLocation(52.5200, 13.4050), NewLocation(52.5215, 13.4151)},
		Costing:   CostingAuto,
	})
	require.NoError(t, err)

	// The client fills in a request id and the server echoes it.
	assert.NotEmpty(t, gotBody.ID)
	assert.Equal(t, gotBody.ID, resp.ID)
	assert.Equal(t, CostingAuto, gotBody.Costing)
	require.Len(t, gotBody.Locations, 2)
	assert.Equal(t, LocationBreak, gotBody.Locations[0].Type)

	require.Len(t, resp.Trip.Legs, 1)
	coords, err := resp.Trip.Legs[0].DecodeShape()
	require.NoError(t, err)
	require.Len(t, coords, len(testShape))
	for i := range testShape {
		assert.InDelta(t, testShape[i].Lat, coords[i].Lat, 0.5*polyline.Precision6)
		assert.InDelta(t, testShape[i].Lon, coords[i].Lon, 0.5*polyline.Precision6)
	}
}

func TestClient_APIError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error_code":171,"error":"No suitable edges near location","status_code":400,"status":"Bad Request"}`))
	}))
	defer srv.Close()

	// Retries are enabled but must not fire for a 4xx.
	client := NewClient(srv.URL, WithRetry(3))
	_, err := client.Route(context.Background(), &RouteRequest{
		Locations: []Location{NewLocation(0, 0), NewLocation(0, 0)},
		Costing:   CostingAuto,
	})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 171, apiErr.ErrorCode)
	assert.Equal(t, "No suitable edges near location", apiErr.Message)
	assert.Equal(t, 400, apiErr.StatusCode)
	assert.False(t, apiErr.Temporary())
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		require.NoError(t, json.NewEncoder(w).Encode(RouteResponse{}))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithRetry(3))
	_, err := client.Route(context.Background(), &RouteRequest{
		Locations: []Location{NewLocation(0, 0), NewLocation(1, 1)},
		Costing:   CostingAuto,
	})
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_NoRetryByDefault(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Status(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.Temporary())
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_APIKeySent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.URL.Query().Get("access_token"))
		require.NoError(t, json.NewEncoder(w).Encode(StatusResponse{Version: "3.4.0"}))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithAPIKey("secret"))
	resp, err := client.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "3.4.0", resp.Version)
}

func TestClient_Status(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/status", r.URL.Path)
		_, _ = w.Write([]byte(`{"version":"3.4.0","tileset_last_modified":1700000000}`))
	}))
	defer srv.Close()

	resp, err := NewClient(srv.URL).Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "3.4.0", resp.Version)
	assert.Equal(t, int64(1700000000), resp.TilesetLastModified)
}

func TestClient_Matrix(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sources_to_targets", r.URL.Path)
		// Second target unreachable: distance and time are null.
		_, _ = w.Write([]byte(`{
			"sources_to_targets": [[
				{"from_index":0,"to_index":0,"time":120.5,"distance":1.8},
				{"from_index":0,"to_index":1,"time":null,"distance":null}
			]],
			"units": "kilometers"
		}`))
	}))
	defer srv.Close()

	resp, err := NewClient(srv.URL).Matrix(context.Background(), &MatrixRequest{
		Sources: []Location{NewLocation(52.52, 13.40)},
		Targets: []Location{NewLocation(52.53, 13.41), NewLocation(0, 0)},
		Costing: CostingBicycle,
	})
	require.NoError(t, err)
	require.Len(t, resp.SourcesToTargets, 1)
	require.Len(t, resp.SourcesToTargets[0], 2)

	reachable := resp.SourcesToTargets[0][0]
	require.NotNil(t, reachable.Time)
	assert.Equal(t, 120.5, *reachable.Time)

	unreachable := resp.SourcesToTargets[0][1]
	assert.Nil(t, unreachable.Time)
	assert.Nil(t, unreachable.Distance)
}

func TestClient_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(srv.URL).Status(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestClient_MalformedErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Status(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 502, apiErr.StatusCode)
	assert.Equal(t, "upstream exploded", apiErr.Message)
}
