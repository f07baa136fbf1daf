package valhalla

import (
	"context"
	"net/http"

	"github.com/meridianmaps/valhalla-go/polyline"
)

// RouteRequest is the payload for the /route and /optimized_route endpoints.
type RouteRequest struct {
	Locations        []Location      `json:"locations"`
	Costing          Costing         `json:"costing"`
	CostingOptions   *CostingOptions `json:"costing_options,omitempty"`
	Units            Units           `json:"units,omitempty"`
	Language         string          `json:"language,omitempty"`
	DirectionsType   string          `json:"directions_type,omitempty"`
	Alternates       int             `json:"alternates,omitempty"`
	ShapeFormat      ShapeFormat     `json:"shape_format,omitempty"`
	ExcludeLocations []Location      `json:"exclude_locations,omitempty"`
	DateTime         *DateTime       `json:"date_time,omitempty"`
	ID               string          `json:"id,omitempty"`
}

// RouteResponse is the trip result for /route and /optimized_route.
type RouteResponse struct {
	Trip       Trip        `json:"trip"`
	Alternates []Alternate `json:"alternates,omitempty"`
	ID         string      `json:"id,omitempty"`
}

// Alternate wraps an alternative trip suggestion.
type Alternate struct {
	Trip Trip `json:"trip"`
}

// Trip is a computed path through the input locations.
type Trip struct {
	Locations     []Location `json:"locations"`
	Legs          []Leg      `json:"legs"`
	Summary       Summary    `json:"summary"`
	Status        int        `json:"status"`
	StatusMessage string     `json:"status_message,omitempty"`
	Units         string     `json:"units,omitempty"`
	Language      string     `json:"language,omitempty"`
}

// Leg is the path between two consecutive break locations. Shape holds the
// leg geometry as an encoded polyline in the shape format the request
// declared (polyline6 when unset).
type Leg struct {
	Maneuvers []Maneuver `json:"maneuvers"`
	Summary   Summary    `json:"summary"`
	Shape     string     `json:"shape"`
}

// DecodeShape decodes the leg geometry assuming the server default polyline6
// format. Use DecodeShapeAs when the request asked for a different format.
func (l *Leg) DecodeShape() ([]polyline.Coordinate, error) {
	return l.DecodeShapeAs(ShapeFormatPolyline6)
}

// DecodeShapeAs decodes the leg geometry in the given shape format.
func (l *Leg) DecodeShapeAs(format ShapeFormat) ([]polyline.Coordinate, error) {
	return DecodeShape(l.Shape, format)
}

// Summary aggregates distance, time and road-class flags for a leg or trip.
type Summary struct {
	Time                float64 `json:"time"`
	Length              float64 `json:"length"`
	Cost                float64 `json:"cost,omitempty"`
	HasToll             bool    `json:"has_toll,omitempty"`
	HasHighway          bool    `json:"has_highway,omitempty"`
	HasFerry            bool    `json:"has_ferry,omitempty"`
	HasTimeRestrictions bool    `json:"has_time_restrictions,omitempty"`
	MinLat              float64 `json:"min_lat"`
	MinLon              float64 `json:"min_lon"`
	MaxLat              float64 `json:"max_lat"`
	MaxLon              float64 `json:"max_lon"`
}

// ManeuverType identifies the kind of turn-by-turn instruction.
type ManeuverType int

// Maneuver type codes, as produced by the directions narrative.
const (
	ManeuverNone             ManeuverType = 0
	ManeuverStart            ManeuverType = 1
	ManeuverStartRight       ManeuverType = 2
	ManeuverStartLeft        ManeuverType = 3
	ManeuverDestination      ManeuverType = 4
	ManeuverDestinationRight ManeuverType = 5
	ManeuverDestinationLeft  ManeuverType = 6
	ManeuverBecomes          ManeuverType = 7
	ManeuverContinue         ManeuverType = 8
	ManeuverSlightRight      ManeuverType = 9
	ManeuverRight            ManeuverType = 10
	ManeuverSharpRight       ManeuverType = 11
	ManeuverUturnRight       ManeuverType = 12
	ManeuverUturnLeft        ManeuverType = 13
	ManeuverSharpLeft        ManeuverType = 14
	ManeuverLeft             ManeuverType = 15
	ManeuverSlightLeft       ManeuverType = 16
	ManeuverRampStraight     ManeuverType = 17
	ManeuverRampRight        ManeuverType = 18
	ManeuverRampLeft         ManeuverType = 19
	ManeuverExitRight        ManeuverType = 20
	ManeuverExitLeft         ManeuverType = 21
	ManeuverStayStraight     ManeuverType = 22
	ManeuverStayRight        ManeuverType = 23
	ManeuverStayLeft         ManeuverType = 24
	ManeuverMerge            ManeuverType = 25
	ManeuverRoundaboutEnter  ManeuverType = 26
	ManeuverRoundaboutExit   ManeuverType = 27
	ManeuverFerryEnter       ManeuverType = 28
	ManeuverFerryExit        ManeuverType = 29
	ManeuverTransit          ManeuverType = 30
)

// Maneuver is one turn-by-turn instruction along a leg. BeginShapeIndex and
// EndShapeIndex reference positions in the leg's decoded shape.
type Maneuver struct {
	Type                             ManeuverType `json:"type"`
	Instruction                      string       `json:"instruction"`
	VerbalTransitionAlertInstruction string       `json:"verbal_transition_alert_instruction,omitempty"`
	VerbalPreTransitionInstruction   string       `json:"verbal_pre_transition_instruction,omitempty"`
	VerbalPostTransitionInstruction  string       `json:"verbal_post_transition_instruction,omitempty"`
	StreetNames                      []string     `json:"street_names,omitempty"`
	BeginStreetNames                 []string     `json:"begin_street_names,omitempty"`
	Time                             float64      `json:"time"`
	Length                           float64      `json:"length"`
	Cost                             float64      `json:"cost,omitempty"`
	BeginShapeIndex                  int          `json:"begin_shape_index"`
	EndShapeIndex                    int          `json:"end_shape_index"`
	TravelMode                       string       `json:"travel_mode,omitempty"`
	TravelType                       string       `json:"travel_type,omitempty"`
	Toll                             bool         `json:"toll,omitempty"`
	Gate                             bool         `json:"gate,omitempty"`
	Ferry                            bool         `json:"ferry,omitempty"`
	RoundaboutExitCount              int          `json:"roundabout_exit_count,omitempty"`
	VerbalMultiCue                   bool         `json:"verbal_multi_cue,omitempty"`
	DepartInstruction                string       `json:"depart_instruction,omitempty"`
	ArriveInstruction                string       `json:"arrive_instruction,omitempty"`
}

// Route computes a turn-by-turn route through the request locations.
func (c *Client) Route(ctx context.Context, req *RouteRequest) (*RouteResponse, error) {
	c.ensureRequestID(&req.ID)
	var resp RouteResponse
	if err := c.do(ctx, http.MethodPost, "/route", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// OptimizedRoute computes a route that reorders intermediate locations into
// the cheapest visiting order, keeping the first and last fixed.
func (c *Client) OptimizedRoute(ctx context.Context, req *RouteRequest) (*RouteResponse, error) {
	c.ensureRequestID(&req.ID)
	var resp RouteResponse
	if err := c.do(ctx, http.MethodPost, "/optimized_route", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
