// Package polyline implements the Google Encoded Polyline Algorithm Format
// used by Valhalla-compatible routing services to compress route geometry.
// See https://developers.google.com/maps/documentation/utilities/polylinealgorithm
package polyline

import (
	"errors"
	"fmt"
	"math"
)

// Precision factors for converting between integer-packed units and degrees.
// Valhalla's "polyline5" shape format uses Precision5, "polyline6" uses
// Precision6 (the Valhalla default for route shapes).
const (
	Precision5 = 1e-5
	Precision6 = 1e-6
)

// ErrMalformed is returned when an encoded polyline is structurally invalid:
// a byte outside the valid range, a value whose continuation bit never
// terminates, or a latitude with no matching longitude. Decode fails
// atomically; no partial coordinates are returned.
var ErrMalformed = errors.New("polyline: malformed input")

// Coordinate is a geographic point in WGS84 degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Decode converts an encoded polyline string into the coordinate sequence it
// packs, using the given precision factor (Precision5 or Precision6).
// Decoding an empty string yields an empty sequence. The call holds no state
// beyond its own accumulators and is safe for concurrent use.
func Decode(encoded string, precision float64) ([]Coordinate, error) {
	coords := make([]Coordinate, 0, len(encoded)/4)
	index := 0
	lat, lon := 0, 0

	for index < len(encoded) {
		latDelta, next, err := decodeValue(encoded, index)
		if err != nil {
			return nil, err
		}
		index = next
		lat += latDelta

		if index >= len(encoded) {
			return nil, fmt.Errorf("%w: latitude at end of input has no longitude", ErrMalformed)
		}
		lonDelta, next, err := decodeValue(encoded, index)
		if err != nil {
			return nil, err
		}
		index = next
		lon += lonDelta

		coords = append(coords, Coordinate{
			Lat: float64(lat) * precision,
			Lon: float64(lon) * precision,
		})
	}

	return coords, nil
}

// decodeValue reads one zig-zag encoded delta starting at index and returns
// the signed delta and the index of the next unread byte.
func decodeValue(encoded string, index int) (int, int, error) {
	shift := 0
	result := 0

	for {
		if index >= len(encoded) {
			return 0, 0, fmt.Errorf("%w: unterminated value at end of input", ErrMalformed)
		}
		b := int(encoded[index]) - 63
		if b < 0 || b > 63 {
			return 0, 0, fmt.Errorf("%w: byte 0x%02x at offset %d outside encodable range", ErrMalformed, encoded[index], index)
		}
		index++
		result |= (b & 0x1f) << shift
		shift += 5
		if b < 0x20 {
			break
		}
	}

	if result&1 != 0 {
		return ^(result >> 1), index, nil
	}
	return result >> 1, index, nil
}

// Encode converts a coordinate sequence into its encoded polyline form at the
// given precision factor. It is the exact inverse of Decode: decoding the
// result at the same precision reproduces each coordinate within half a unit
// of the precision per axis. Encoding an empty sequence yields "".
func Encode(coords []Coordinate, precision float64) string {
	buf := make([]byte, 0, len(coords)*6)
	prevLat, prevLon := 0, 0

	for _, c := range coords {
		lat := int(math.Round(c.Lat / precision))
		lon := int(math.Round(c.Lon / precision))

		buf = encodeValue(buf, lat-prevLat)
		buf = encodeValue(buf, lon-prevLon)

		prevLat = lat
		prevLon = lon
	}

	return string(buf)
}

// encodeValue appends one signed delta as zig-zag encoded 5-bit chunks,
// least significant first, continuation bit 0x20, offset by 63.
func encodeValue(buf []byte, value int) []byte {
	if value < 0 {
		value = ^(value << 1)
	} else {
		value <<= 1
	}

	for value >= 0x20 {
		buf = append(buf, byte((value&0x1f)|0x20)+63)
		value >>= 5
	}
	return append(buf, byte(value)+63)
}
