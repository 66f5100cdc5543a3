package models

// MatchCriteria describes what an athlete is looking for.
type MatchCriteria struct {
	Specialty     string   `json:"specialty,omitempty"`
	City          string   `json:"city,omitempty"`
	LocationGeo   GeoPoint `json:"locationGeo,omitzero"`
	MaxDistanceKm float64  `json:"maxDistanceKm,omitempty"`
	MaxHourlyRate float64  `json:"maxHourlyRate,omitempty"`
}
