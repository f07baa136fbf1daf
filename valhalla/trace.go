package valhalla

import (
	"context"
	"net/http"

	"github.com/meridianmaps/valhalla-go/polyline"
)

// ShapeMatch selects the map-matching algorithm for trace endpoints.
type ShapeMatch string

const (
	// MatchEdgeWalk expects the input to exactly follow the network (a shape
	// previously produced by a route).
	MatchEdgeWalk ShapeMatch = "edge_walk"
	// MatchMapSnap runs full map matching, tolerating GPS noise.
	MatchMapSnap ShapeMatch = "map_snap"
	// MatchWalkOrSnap tries edge walking and falls back to map matching.
	MatchWalkOrSnap ShapeMatch = "walk_or_snap"
)

// TracePoint is one recorded GPS fix in a trace.
type TracePoint struct {
	Lat      float64      `json:"lat"`
	Lon      float64      `json:"lon"`
	Time     *int64       `json:"time,omitempty"`
	Accuracy *float64     `json:"accuracy,omitempty"`
	Radius   *float64     `json:"radius,omitempty"`
	Type     LocationType `json:"type,omitempty"`
}

// TraceRequest is the shared payload for /trace_route and /trace_attributes.
// The trace geometry is supplied either as raw Shape points or as
// EncodedPolyline (precision 1e-6, the service convention for traces).
type TraceRequest struct {
	Shape           []TracePoint    `json:"shape,omitempty"`
	EncodedPolyline string          `json:"encoded_polyline,omitempty"`
	Costing         Costing         `json:"costing"`
	CostingOptions  *CostingOptions `json:"costing_options,omitempty"`
	ShapeMatch      ShapeMatch      `json:"shape_match,omitempty"`
	Units           Units           `json:"units,omitempty"`
	Language        string          `json:"language,omitempty"`
	ShapeFormat     ShapeFormat     `json:"shape_format,omitempty"`
	SearchRadius    *float64        `json:"search_radius,omitempty"`
	GPSAccuracy     *float64        `json:"gps_accuracy,omitempty"`
	ID              string          `json:"id,omitempty"`

	// Filters limits the attributes /trace_attributes returns.
	Filters *TraceFilters `json:"filters,omitempty"`
}

// TraceFilters whitelists or blacklists attribute keys in a
// /trace_attributes response.
type TraceFilters struct {
	Attributes []string `json:"attributes"`
	Action     string   `json:"action"` // "include" or "exclude"
}

// SetEncodedShape packs the coordinates into the request's EncodedPolyline
// field at precision 1e-6 and clears any raw shape, keeping the two geometry
// carriers mutually exclusive.
func (r *TraceRequest) SetEncodedShape(coords []polyline.Coordinate) {
	r.EncodedPolyline = polyline.Encode(coords, polyline.Precision6)
	r.Shape = nil
}

// TraceAttributesResponse is the detailed map-matching result: the matched
// path's edges, how each input point matched, and the matched geometry.
type TraceAttributesResponse struct {
	Edges           []TraceEdge    `json:"edges,omitempty"`
	MatchedPoints   []MatchedPoint `json:"matched_points,omitempty"`
	Shape           string         `json:"shape,omitempty"`
	ConfidenceScore *float64       `json:"confidence_score,omitempty"`
	Units           string         `json:"units,omitempty"`
	ID              string         `json:"id,omitempty"`
}

// DecodeShape decodes the matched geometry. Trace shapes are polyline6.
func (r *TraceAttributesResponse) DecodeShape() ([]polyline.Coordinate, error) {
	return DecodeShape(r.Shape, ShapeFormatPolyline6)
}

// TraceEdge describes one network edge the matched path traverses.
type TraceEdge struct {
	Names           []string `json:"names,omitempty"`
	WayID           uint64   `json:"way_id,omitempty"`
	Length          float64  `json:"length,omitempty"`
	Speed           float64  `json:"speed,omitempty"`
	RoadClass       string   `json:"road_class,omitempty"`
	Use             string   `json:"use,omitempty"`
	Surface         string   `json:"surface,omitempty"`
	Toll            bool     `json:"toll,omitempty"`
	BeginShapeIndex int      `json:"begin_shape_index"`
	EndShapeIndex   int      `json:"end_shape_index"`
}

// MatchedPoint reports how one input trace point matched the network.
type MatchedPoint struct {
	Lat               float64  `json:"lat"`
	Lon               float64  `json:"lon"`
	Type              string   `json:"type"` // "matched", "interpolated" or "unmatched"
	EdgeIndex         *int     `json:"edge_index,omitempty"`
	DistanceFromTrace *float64 `json:"distance_from_trace_point,omitempty"`
	DistanceAlongEdge *float64 `json:"distance_along_edge,omitempty"`
}

// TraceRoute map-matches a recorded trace onto the road network and returns
// a turn-by-turn trip, like /route but starting from raw GPS points.
func (c *Client) TraceRoute(ctx context.Context, req *TraceRequest) (*RouteResponse, error) {
	c.ensureRequestID(&req.ID)
	var resp RouteResponse
	if err := c.do(ctx, http.MethodPost, "/trace_route", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TraceAttributes map-matches a trace and returns per-edge attributes and
// per-point match results instead of a narrative trip.
func (c *Client) TraceAttributes(ctx context.Context, req *TraceRequest) (*TraceAttributesResponse, error) {
	c.ensureRequestID(&req.ID)
	var resp TraceAttributesResponse
	if err := c.do(ctx, http.MethodPost, "/trace_attributes", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
