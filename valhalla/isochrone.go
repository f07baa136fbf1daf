package valhalla

import (
	"context"
	"encoding/json"
	"net/http"
)

// Contour defines one isochrone ring, bounded by travel time in minutes or
// travel distance in kilometers. Exactly one of Time or Distance is set.
type Contour struct {
	Time     *float64 `json:"time,omitempty"`
	Distance *float64 `json:"distance,omitempty"`
	Color    string   `json:"color,omitempty"`
}

// IsochroneRequest is the payload for the /isochrone endpoint.
type IsochroneRequest struct {
	Locations      []Location      `json:"locations"`
	Costing        Costing         `json:"costing"`
	CostingOptions *CostingOptions `json:"costing_options,omitempty"`
	Contours       []Contour       `json:"contours"`
	Polygons       bool            `json:"polygons,omitempty"`
	Denoise        *float64        `json:"denoise,omitempty"`
	Generalize     *float64        `json:"generalize,omitempty"`
	ShowLocations  bool            `json:"show_locations,omitempty"`
	ID             string          `json:"id,omitempty"`
}

// IsochroneResponse is a GeoJSON FeatureCollection: one feature per contour,
// rings as LineString or Polygon geometry depending on the request.
type IsochroneResponse struct {
	Type     string             `json:"type"`
	Features []IsochroneFeature `json:"features"`
	ID       string             `json:"id,omitempty"`
}

// IsochroneFeature is one contour ring with its styling properties.
type IsochroneFeature struct {
	Type       string            `json:"type"`
	Properties map[string]any    `json:"properties"`
	Geometry   IsochroneGeometry `json:"geometry"`
}

// IsochroneGeometry carries raw GeoJSON coordinates: [lon,lat] positions,
// nested one level deeper for Polygon than for LineString.
type IsochroneGeometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// Isochrone computes reachability contours around the input locations.
func (c *Client) Isochrone(ctx context.Context, req *IsochroneRequest) (*IsochroneResponse, error) {
	c.ensureRequestID(&req.ID)
	var resp IsochroneResponse
	if err := c.do(ctx, http.MethodPost, "/isochrone", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
