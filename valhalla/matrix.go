package valhalla

import (
	"context"
	"net/http"
)

// MatrixRequest is the payload for the /sources_to_targets endpoint.
type MatrixRequest struct {
	Sources         []Location      `json:"sources"`
	Targets         []Location      `json:"targets"`
	Costing         Costing         `json:"costing"`
	CostingOptions  *CostingOptions `json:"costing_options,omitempty"`
	Units           Units           `json:"units,omitempty"`
	MatrixLocations *int            `json:"matrix_locations,omitempty"`
	ID              string          `json:"id,omitempty"`
}

// MatrixEntry is one source-to-target cell. Time and Distance are nil when
// the pair is unreachable.
type MatrixEntry struct {
	FromIndex int      `json:"from_index"`
	ToIndex   int      `json:"to_index"`
	Time      *float64 `json:"time"`
	Distance  *float64 `json:"distance"`
}

// MatrixResponse holds the full source/target cost matrix, indexed
// [source][target].
type MatrixResponse struct {
	SourcesToTargets [][]MatrixEntry `json:"sources_to_targets"`
	Sources          []Location      `json:"sources"`
	Targets          []Location      `json:"targets"`
	Units            string          `json:"units,omitempty"`
	Warnings         []string        `json:"warnings,omitempty"`
	ID               string          `json:"id,omitempty"`
}

// Matrix computes travel time and distance between every source and target.
func (c *Client) Matrix(ctx context.Context, req *MatrixRequest) (*MatrixResponse, error) {
	c.ensureRequestID(&req.ID)
	var resp MatrixResponse
	if err := c.do(ctx, http.MethodPost, "/sources_to_targets", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
