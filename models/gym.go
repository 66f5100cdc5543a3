package models

import "time"

// Gym is a facility where sessions can take place.
type Gym struct {
	ID          string   `bson:"id" json:"id"`
	Name        string   `bson:"name" json:"name"`
	City        string   `bson:"city,omitempty" json:"city,omitempty"`
	Address     string   `bson:"address,omitempty" json:"address,omitempty"`
	LocationGeo GeoPoint `bson:"location_geo,omitzero" json:"locationGeo,omitzero"`
	Amenities   []string `bson:"amenities,omitempty" json:"amenities,omitempty"`
	PhotoURL    string   `bson:"photo_url,omitempty" json:"photoUrl,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
