package valhalla

import (
	"fmt"

	"github.com/meridianmaps/valhalla-go/polyline"
)

// ShapeFormat names the geometry encoding used for shapes on the wire.
// Valhalla defaults to polyline6 for trip legs.
type ShapeFormat string

const (
	ShapeFormatPolyline5 ShapeFormat = "polyline5"
	ShapeFormatPolyline6 ShapeFormat = "polyline6"
)

// Precision returns the codec precision factor for the format. The zero
// value maps to polyline6, matching the server default.
func (f ShapeFormat) Precision() (float64, error) {
	switch f {
	case ShapeFormatPolyline5:
		return polyline.Precision5, nil
	case ShapeFormatPolyline6, "":
		return polyline.Precision6, nil
	default:
		return 0, fmt.Errorf("valhalla: unknown shape format %q", string(f))
	}
}

// DecodeShape decodes an encoded shape string in the given format. Supplying
// a format that does not match the one the server produced does not fail; it
// yields coordinates scaled by the precision mismatch, so callers must pass
// the format the request declared.
func DecodeShape(shape string, format ShapeFormat) ([]polyline.Coordinate, error) {
	precision, err := format.Precision()
	if err != nil {
		return nil, err
	}
	return polyline.Decode(shape, precision)
}

// EncodeShape encodes coordinates into the given shape format.
func EncodeShape(coords []polyline.Coordinate, format ShapeFormat) (string, error) {
	precision, err := format.Precision()
	if err != nil {
		return "", err
	}
	return polyline.Encode(coords, precision), nil
}
