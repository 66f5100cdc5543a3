package models

// DateLayout is the calendar-date format used across the API and storage.
const DateLayout = "2006-01-02"

// GeoPoint is a GeoJSON point: Coordinates holds [longitude, latitude].
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// NewGeoPoint builds a GeoJSON point from longitude and latitude.
func NewGeoPoint(lon, lat float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: []float64{lon, lat}}
}
