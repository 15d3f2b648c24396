package domain

import "time"

// Starting values for a freshly founded village
const (
	DefaultResourceAmount    = 750
	DefaultProductionPerHour = 30
	DefaultStorageCapacity   = 800
	DefaultPopulation        = 2
	DefaultPopulationLimit   = 2

	// MapMinCoordinate and MapMaxCoordinate bound both axes of the world map (inclusive)
	MapMinCoordinate = -100
	MapMaxCoordinate = 100

	MaxVillageNameLength = 100
)

// ResourceType identifies one of the four village resources
type ResourceType string

const (
	ResourceWood ResourceType = "wood"
	ResourceClay ResourceType = "clay"
	ResourceIron ResourceType = "iron"
	ResourceCrop ResourceType = "crop"
)

// AllResources lists resource types in display order
var AllResources = []ResourceType{ResourceWood, ResourceClay, ResourceIron, ResourceCrop}

// Resources holds one integer quantity per resource type
type Resources struct {
	Wood int `json:"wood"`
	Clay int `json:"clay"`
	Iron int `json:"iron"`
	Crop int `json:"crop"`
}

// Get returns the quantity for the given resource
func (r Resources) Get(t ResourceType) int {
	switch t {
	case ResourceWood:
		return r.Wood
	case ResourceClay:
		return r.Clay
	case ResourceIron:
		return r.Iron
	case ResourceCrop:
		return r.Crop
	}
	return 0
}

// Set stores the quantity for the given resource
func (r *Resources) Set(t ResourceType, v int) {
	switch t {
	case ResourceWood:
		r.Wood = v
	case ResourceClay:
		r.Clay = v
	case ResourceIron:
		r.Iron = v
	case ResourceCrop:
		r.Crop = v
	}
}

// ResourceState is the part of a village that production mutates.
// Warehouse capacity caps wood, clay and iron; granary capacity caps crop.
type ResourceState struct {
	Levels            Resources `json:"levels"`
	Production        Resources `json:"production"`
	WarehouseCapacity int       `json:"warehouse_capacity"`
	GranaryCapacity   int       `json:"granary_capacity"`
	LastUpdate        time.Time `json:"last_resource_update"`
}

// Capacity returns the storage ceiling that applies to the given resource
func (s ResourceState) Capacity(t ResourceType) int {
	if t == ResourceCrop {
		return s.GranaryCapacity
	}
	return s.WarehouseCapacity
}

// NewResourceState returns the starting resource state of a new village
func NewResourceState(now time.Time) ResourceState {
	return ResourceState{
		Levels: Resources{
			Wood: DefaultResourceAmount,
			Clay: DefaultResourceAmount,
			Iron: DefaultResourceAmount,
			Crop: DefaultResourceAmount,
		},
		Production: Resources{
			Wood: DefaultProductionPerHour,
			Clay: DefaultProductionPerHour,
			Iron: DefaultProductionPerHour,
			Crop: DefaultProductionPerHour,
		},
		WarehouseCapacity: DefaultStorageCapacity,
		GranaryCapacity:   DefaultStorageCapacity,
		LastUpdate:        now,
	}
}

// Village represents a player-owned settlement
type Village struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	CoordinateX     int           `json:"coordinate_x"`
	CoordinateY     int           `json:"coordinate_y"`
	UserID          string        `json:"user_id"`
	TribeID         int           `json:"tribe_id"`
	TribeName       string        `json:"tribe_name"`
	Resources       ResourceState `json:"resources"`
	Population      int           `json:"population"`
	PopulationLimit int           `json:"population_limit"`
	IsCapital       bool          `json:"is_capital"`
	CreatedAt       time.Time     `json:"created_at"`
	// Version increases on every write and guards resource write-back
	Version int64 `json:"-"`
}

// VillageResponse is the full village payload returned by the API
type VillageResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	CoordinateX        int       `json:"coordinate_x"`
	CoordinateY        int       `json:"coordinate_y"`
	TribeID            int       `json:"tribe_id"`
	TribeName          string    `json:"tribe_name"`
	Wood               int       `json:"wood"`
	Clay               int       `json:"clay"`
	Iron               int       `json:"iron"`
	Crop               int       `json:"crop"`
	WoodProduction     int       `json:"wood_production"`
	ClayProduction     int       `json:"clay_production"`
	IronProduction     int       `json:"iron_production"`
	CropProduction     int       `json:"crop_production"`
	WarehouseCapacity  int       `json:"warehouse_capacity"`
	GranaryCapacity    int       `json:"granary_capacity"`
	Population         int       `json:"population"`
	PopulationLimit    int       `json:"population_limit"`
	IsCapital          bool      `json:"is_capital"`
	LastResourceUpdate time.Time `json:"last_resource_update"`
}

// VillageResourcesResponse is the lightweight payload used for polling
type VillageResourcesResponse struct {
	Wood               int       `json:"wood"`
	Clay               int       `json:"clay"`
	Iron               int       `json:"iron"`
	Crop               int       `json:"crop"`
	LastResourceUpdate time.Time `json:"last_resource_update"`
}

// ToResponse flattens a village into its API representation
func (v *Village) ToResponse() VillageResponse {
	rs := v.Resources
	return VillageResponse{
		ID:                 v.ID,
		Name:               v.Name,
		CoordinateX:        v.CoordinateX,
		CoordinateY:        v.CoordinateY,
		TribeID:            v.TribeID,
		TribeName:          v.TribeName,
		Wood:               rs.Levels.Wood,
		Clay:               rs.Levels.Clay,
		Iron:               rs.Levels.Iron,
		Crop:               rs.Levels.Crop,
		WoodProduction:     rs.Production.Wood,
		ClayProduction:     rs.Production.Clay,
		IronProduction:     rs.Production.Iron,
		CropProduction:     rs.Production.Crop,
		WarehouseCapacity:  rs.WarehouseCapacity,
		GranaryCapacity:    rs.GranaryCapacity,
		Population:         v.Population,
		PopulationLimit:    v.PopulationLimit,
		IsCapital:          v.IsCapital,
		LastResourceUpdate: rs.LastUpdate,
	}
}

// ToResourcesResponse returns only the resource levels of a village
func (v *Village) ToResourcesResponse() VillageResourcesResponse {
	return VillageResourcesResponse{
		Wood:               v.Resources.Levels.Wood,
		Clay:               v.Resources.Levels.Clay,
		Iron:               v.Resources.Levels.Iron,
		Crop:               v.Resources.Levels.Crop,
		LastResourceUpdate: v.Resources.LastUpdate,
	}
}
