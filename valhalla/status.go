package valhalla

import (
	"context"
	"net/http"
)

// StatusResponse reports service health and tileset metadata from /status.
// The verbose fields are only present when the server allows them.
type StatusResponse struct {
	Version             string   `json:"version"`
	TilesetLastModified int64    `json:"tileset_last_modified"`
	AvailableActions    []string `json:"available_actions,omitempty"`
	HasTiles            *bool    `json:"has_tiles,omitempty"`
	HasAdmins           *bool    `json:"has_admins,omitempty"`
	HasTimezones        *bool    `json:"has_timezones,omitempty"`
	HasLiveTraffic      *bool    `json:"has_live_traffic,omitempty"`
	BoundingBox         any      `json:"bbox,omitempty"`
}

// Status fetches service version and tileset information.
func (c *Client) Status(ctx context.Context) (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.do(ctx, http.MethodGet, "/status", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
