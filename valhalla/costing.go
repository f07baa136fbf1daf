package valhalla

// Costing names a travel profile the server costs the route with.
type Costing string

const (
	CostingAuto         Costing = "auto"
	CostingBicycle      Costing = "bicycle"
	CostingBus          Costing = "bus"
	CostingTaxi         Costing = "taxi"
	CostingTruck        Costing = "truck"
	CostingMotorScooter Costing = "motor_scooter"
	CostingMotorcycle   Costing = "motorcycle"
	CostingPedestrian   Costing = "pedestrian"
)

// CostingOptions carries per-profile tuning parameters. Only the member
// matching the request's costing is consulted by the server.
type CostingOptions struct {
	Auto         *AutoCostingOptions       `json:"auto,omitempty"`
	Bicycle      *BicycleCostingOptions    `json:"bicycle,omitempty"`
	Bus          *AutoCostingOptions       `json:"bus,omitempty"`
	Taxi         *AutoCostingOptions       `json:"taxi,omitempty"`
	Truck        *TruckCostingOptions      `json:"truck,omitempty"`
	MotorScooter *AutoCostingOptions       `json:"motor_scooter,omitempty"`
	Motorcycle   *AutoCostingOptions       `json:"motorcycle,omitempty"`
	Pedestrian   *PedestrianCostingOptions `json:"pedestrian,omitempty"`
}

// AutoCostingOptions tunes motorized street profiles (auto, bus, taxi,
// motor_scooter, motorcycle share the same parameter set).
type AutoCostingOptions struct {
	ManeuverPenalty        *float64 `json:"maneuver_penalty,omitempty"`
	GateCost               *float64 `json:"gate_cost,omitempty"`
	GatePenalty            *float64 `json:"gate_penalty,omitempty"`
	TollBoothCost          *float64 `json:"toll_booth_cost,omitempty"`
	TollBoothPenalty       *float64 `json:"toll_booth_penalty,omitempty"`
	FerryCost              *float64 `json:"ferry_cost,omitempty"`
	UseFerry               *float64 `json:"use_ferry,omitempty"`
	UseHighways            *float64 `json:"use_highways,omitempty"`
	UseTolls               *float64 `json:"use_tolls,omitempty"`
	UseLivingStreets       *float64 `json:"use_living_streets,omitempty"`
	UseTracks              *float64 `json:"use_tracks,omitempty"`
	TopSpeed               *float64 `json:"top_speed,omitempty"`
	ShortestPath           *bool    `json:"shortest,omitempty"`
	IgnoreClosures         *bool    `json:"ignore_closures,omitempty"`
	CountryCrossingCost    *float64 `json:"country_crossing_cost,omitempty"`
	CountryCrossingPenalty *float64 `json:"country_crossing_penalty,omitempty"`
	Height                 *float64 `json:"height,omitempty"`
	Width                  *float64 `json:"width,omitempty"`
	ExcludeUnpaved         *bool    `json:"exclude_unpaved,omitempty"`
	ExcludeCashOnlyTolls   *bool    `json:"exclude_cash_only_tolls,omitempty"`
}

// TruckCostingOptions extends the motorized parameters with vehicle limits.
type TruckCostingOptions struct {
	AutoCostingOptions

	Length        *float64 `json:"length,omitempty"`
	Weight        *float64 `json:"weight,omitempty"`
	AxleLoad      *float64 `json:"axle_load,omitempty"`
	AxleCount     *int     `json:"axle_count,omitempty"`
	HazmatLoad    *bool    `json:"hazmat,omitempty"`
	UseTruckRoute *float64 `json:"use_truck_route,omitempty"`
}

// BicycleCostingOptions tunes the bicycle profile.
type BicycleCostingOptions struct {
	BicycleType         string   `json:"bicycle_type,omitempty"`
	CyclingSpeed        *float64 `json:"cycling_speed,omitempty"`
	UseRoads            *float64 `json:"use_roads,omitempty"`
	UseHills            *float64 `json:"use_hills,omitempty"`
	UseFerry            *float64 `json:"use_ferry,omitempty"`
	UseLivingStreets    *float64 `json:"use_living_streets,omitempty"`
	AvoidBadSurfaces    *float64 `json:"avoid_bad_surfaces,omitempty"`
	ShortestPath        *bool    `json:"shortest,omitempty"`
	ManeuverPenalty     *float64 `json:"maneuver_penalty,omitempty"`
	GateCost            *float64 `json:"gate_cost,omitempty"`
	GatePenalty         *float64 `json:"gate_penalty,omitempty"`
	CountryCrossingCost *float64 `json:"country_crossing_cost,omitempty"`
}

// PedestrianCostingOptions tunes the pedestrian profile.
type PedestrianCostingOptions struct {
	WalkingSpeed        *float64 `json:"walking_speed,omitempty"`
	WalkwayFactor       *float64 `json:"walkway_factor,omitempty"`
	SidewalkFactor      *float64 `json:"sidewalk_factor,omitempty"`
	AlleyFactor         *float64 `json:"alley_factor,omitempty"`
	DrivewayFactor      *float64 `json:"driveway_factor,omitempty"`
	StepPenalty         *float64 `json:"step_penalty,omitempty"`
	UseFerry            *float64 `json:"use_ferry,omitempty"`
	UseLivingStreets    *float64 `json:"use_living_streets,omitempty"`
	UseTracks           *float64 `json:"use_tracks,omitempty"`
	UseHills            *float64 `json:"use_hills,omitempty"`
	MaxDistance         *float64 `json:"max_distance,omitempty"`
	ShortestPath        *bool    `json:"shortest,omitempty"`
	MaxHikingDifficulty *int     `json:"max_hiking_difficulty,omitempty"`
}

// Float returns a pointer to v, for populating optional costing fields.
func Float(v float64) *float64 { return &v }

// Bool returns a pointer to v, for populating optional costing fields.
func Bool(v bool) *bool { return &v }

// Int returns a pointer to v, for populating optional costing fields.
func Int(v int) *int { return &v }
