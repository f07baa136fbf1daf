package valhalla

import (
	"context"
	"net/http"

	"github.com/meridianmaps/valhalla-go/polyline"
)

// HeightRequest is the payload for the /height elevation endpoint. The shape
// is supplied either as raw points or as EncodedPolyline (precision 1e-6).
type HeightRequest struct {
	Shape           []polyline.Coordinate `json:"shape,omitempty"`
	EncodedPolyline string                `json:"encoded_polyline,omitempty"`
	Range           bool                  `json:"range,omitempty"`
	HeightPrecision *int                  `json:"height_precision,omitempty"`
	ID              string                `json:"id,omitempty"`
}

// SetEncodedShape packs the coordinates into EncodedPolyline at precision
// 1e-6 and clears any raw shape.
func (r *HeightRequest) SetEncodedShape(coords []polyline.Coordinate) {
	r.EncodedPolyline = polyline.Encode(coords, polyline.Precision6)
	r.Shape = nil
}

// HeightResponse carries per-point elevations. Height is populated for plain
// requests; RangeHeight ([cumulative distance, height] pairs) when Range was
// requested. A nil entry means no elevation data covers that point.
type HeightResponse struct {
	Shape           []polyline.Coordinate `json:"shape,omitempty"`
	EncodedPolyline string                `json:"encoded_polyline,omitempty"`
	Height          []*float64            `json:"height,omitempty"`
	RangeHeight     [][2]*float64         `json:"range_height,omitempty"`
	Warnings        []string              `json:"warnings,omitempty"`
	ID              string                `json:"id,omitempty"`
}

// Height samples terrain elevation along a shape.
func (c *Client) Height(ctx context.Context, req *HeightRequest) (*HeightResponse, error) {
	c.ensureRequestID(&req.ID)
	var resp HeightResponse
	if err := c.do(ctx, http.MethodPost, "/height", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
