package valhalla

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianmaps/valhalla-go/polyline"
)

func TestShapeFormat_Precision(t *testing.T) {
	p5, err := ShapeFormatPolyline5.Precision()
	require.NoError(t, err)
	assert.Equal(t, polyline.Precision5, p5)

	p6, err := ShapeFormatPolyline6.Precision()
	require.NoError(t, err)
	assert.Equal(t, polyline.Precision6, p6)

	// Unset format falls back to the server default.
	def, err := ShapeFormat("").Precision()
	require.NoError(t, err)
	assert.Equal(t, polyline.Precision6, def)

	_, err = ShapeFormat("geojson").Precision()
	require.Error(t, err)
}

func TestLeg_DecodeShapeAs(t *testing.T) {
	coords := []polyline.Coordinate{
		{Lat: 38.5, Lon: -120.2},
		{Lat: 40.7, Lon: -120.95},
	}

	leg := Leg{Shape: polyline.Encode(coords, polyline.Precision5)}
	decoded, err := leg.DecodeShapeAs(ShapeFormatPolyline5)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.InDelta(t, 40.7, decoded[1].Lat, 0.5*polyline.Precision5)

	// Decoding a polyline5 shape as polyline6 silently shrinks everything by
	// a factor of ten; the caller owns matching the declared format.
	wrong, err := leg.DecodeShape()
	require.NoError(t, err)
	assert.InDelta(t, 3.85, wrong[0].Lat, 0.5*polyline.Precision6)
}

func TestLeg_DecodeShape_Malformed(t *testing.T) {
	leg := Leg{Shape: "a"}
	_, err := leg.DecodeShape()
	require.ErrorIs(t, err, polyline.ErrMalformed)
}

func TestTraceRequest_SetEncodedShape(t *testing.T) {
	req := &TraceRequest{
		Shape:   []TracePoint{{Lat: 1, Lon: 2}},
		Costing: CostingPedestrian,
	}
	coords := []polyline.Coordinate{
		{Lat: 52.5200, Lon: 13.4050},
		{Lat: 52.5206, Lon: 13.4098},
	}
	req.SetEncodedShape(coords)

	assert.Nil(t, req.Shape, "raw shape must be cleared once an encoded shape is set")
	require.NotEmpty(t, req.EncodedPolyline)

	decoded, err := polyline.Decode(req.EncodedPolyline, polyline.Precision6)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.InDelta(t, coords[1].Lon, decoded[1].Lon, 0.5*polyline.Precision6)
}

func TestHeightRequest_SetEncodedShape(t *testing.T) {
	req := &HeightRequest{Range: true}
	req.SetEncodedShape([]polyline.Coordinate{{Lat: 40.712, Lon: -76.504}})

	body, err := json.Marshal(req)
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(body, &wire))
	assert.Contains(t, wire, "encoded_polyline")
	assert.NotContains(t, wire, "shape")
	assert.Equal(t, true, wire["range"])
}
