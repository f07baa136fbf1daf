package valhalla

import (
	"context"
	"net/http"
)

// LocateRequest is the payload for the /locate endpoint, which snaps input
// locations to graph nodes and edges without computing a route.
type LocateRequest struct {
	Locations      []Location      `json:"locations"`
	Costing        Costing         `json:"costing"`
	CostingOptions *CostingOptions `json:"costing_options,omitempty"`
	Verbose        bool            `json:"verbose,omitempty"`
	ID             string          `json:"id,omitempty"`
}

// LocateResult is the snap result for one input location.
type LocateResult struct {
	InputLat float64      `json:"input_lat"`
	InputLon float64      `json:"input_lon"`
	Nodes    []LocateNode `json:"nodes"`
	Edges    []LocateEdge `json:"edges"`
	Warnings []string     `json:"warnings,omitempty"`
}

// LocateNode is a graph node candidate near an input location.
type LocateNode struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Type string  `json:"node_type,omitempty"`
}

// LocateEdge is a graph edge candidate with its correlated point.
type LocateEdge struct {
	WayID         uint64   `json:"way_id,omitempty"`
	CorrelatedLat float64  `json:"correlated_lat"`
	CorrelatedLon float64  `json:"correlated_lon"`
	SideOfStreet  string   `json:"side_of_street,omitempty"`
	PercentAlong  float64  `json:"percent_along,omitempty"`
	Distance      *float64 `json:"distance,omitempty"`
}

// Locate snaps each input location to nearby nodes and edges of the routing
// graph. The response array parallels the input locations.
func (c *Client) Locate(ctx context.Context, req *LocateRequest) ([]LocateResult, error) {
	c.ensureRequestID(&req.ID)
	var resp []LocateResult
	if err := c.do(ctx, http.MethodPost, "/locate", req, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
