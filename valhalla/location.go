package valhalla

// LocationType controls how a location interacts with the computed path.
type LocationType string

const (
	// LocationBreak marks a stop with full u-turn freedom; legs split here.
	LocationBreak LocationType = "break"
	// LocationThrough forces the path through the point without stopping.
	LocationThrough LocationType = "through"
	// LocationVia allows a stop without splitting the leg.
	LocationVia LocationType = "via"
	// LocationBreakThrough splits the leg but forbids u-turns at the point.
	LocationBreakThrough LocationType = "break_through"
)

// PreferredSide expresses which side of the street a location should snap to,
// relative to the direction of travel.
type PreferredSide string

const (
	SideSame     PreferredSide = "same"
	SideOpposite PreferredSide = "opposite"
	SideEither   PreferredSide = "either"
)

// Location is an input point for routing, matrix and map-matching requests.
// Only Lat and Lon are required; the remaining fields tune candidate edge
// search and narrative generation.
type Location struct {
	Lat  float64      `json:"lat"`
	Lon  float64      `json:"lon"`
	Type LocationType `json:"type,omitempty"`

	Heading             *float64      `json:"heading,omitempty"`
	HeadingTolerance    *float64      `json:"heading_tolerance,omitempty"`
	Street              string        `json:"street,omitempty"`
	WayID               *uint64       `json:"way_id,omitempty"`
	MinimumReachability *int          `json:"minimum_reachability,omitempty"`
	Radius              *int          `json:"radius,omitempty"`
	RankCandidates      *bool         `json:"rank_candidates,omitempty"`
	PreferredSide       PreferredSide `json:"preferred_side,omitempty"`
	DisplayLat          *float64      `json:"display_lat,omitempty"`
	DisplayLon          *float64      `json:"display_lon,omitempty"`
	SearchCutoff        *float64      `json:"search_cutoff,omitempty"`
	NodeSnapTolerance   *float64      `json:"node_snap_tolerance,omitempty"`
	StreetSideTolerance *float64      `json:"street_side_tolerance,omitempty"`

	// Narrative metadata echoed back in the trip.
	Name       string `json:"name,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
	Phone      string `json:"phone,omitempty"`
	URL        string `json:"url,omitempty"`

	// Populated in responses.
	SideOfStreet  string `json:"side_of_street,omitempty"`
	OriginalIndex *int   `json:"original_index,omitempty"`
	DateTime      string `json:"date_time,omitempty"`
}

// NewLocation builds a break location at the given coordinates.
func NewLocation(lat, lon float64) Location {
	return Location{Lat: lat, Lon: lon, Type: LocationBreak}
}

// DateTime expresses departure or arrival time constraints on a request.
type DateTime struct {
	// Type: 0 current, 1 depart at, 2 arrive by, 3 invariant.
	Type  int    `json:"type"`
	Value string `json:"value,omitempty"`
}

// Units selects the distance units used in narratives and summaries.
type Units string

const (
	UnitsKilometers Units = "kilometers"
	UnitsMiles      Units = "miles"
)
