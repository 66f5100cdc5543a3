package models

import "time"

// TrainerProfile holds the public-facing part of a trainer document.
type TrainerProfile struct {
	Name              string   `bson:"name" json:"name"`
	Bio               string   `bson:"bio,omitempty" json:"bio,omitempty"`
	Specialties       []string `bson:"specialties,omitempty" json:"specialties,omitempty"` // e.g. "strength", "yoga"
	City              string   `bson:"city,omitempty" json:"city,omitempty"`
	LocationGeo       GeoPoint `bson:"location_geo,omitzero" json:"locationGeo,omitzero"`
	Rating            float64  `bson:"rating" json:"rating"` // 0–5
	Verified          bool     `bson:"verified" json:"verified"`
	PhotoURL          string   `bson:"photo_url,omitempty" json:"photoUrl,omitempty"`
	YearsOfExperience int      `bson:"years_of_experience,omitempty" json:"yearsOfExperience,omitempty"`
}

// Trainer is a bookable service provider.
type Trainer struct {
	ID                string         `bson:"id" json:"id"`
	Email             string         `bson:"email" json:"email"`
	PasswordHash      string         `bson:"password_hash" json:"-"`
	TokenHash         string         `bson:"token_hash,omitempty" json:"-"`
	Profile           TrainerProfile `bson:"profile" json:"profile"`
	HourlyRate        float64        `bson:"hourly_rate" json:"hourlyRate"`
	Currency          string         `bson:"currency" json:"currency"`
	GymID             string         `bson:"gym_id,omitempty" json:"gymId,omitempty"` // home gym, if any
	CompletedSessions int            `bson:"completed_sessions" json:"completedSessions"`
	FCMToken          string         `bson:"fcm_token,omitempty" json:"-"`
	CreatedAt         time.Time      `bson:"created_at" json:"createdAt"`
	UpdatedAt         time.Time      `bson:"updated_at" json:"updatedAt"`
}

// TrainerDTO is the trimmed view returned by search and matching.
type TrainerDTO struct {
	ID         string         `json:"id"`
	Profile    TrainerProfile `json:"profile"`
	HourlyRate float64        `json:"hourlyRate"`
	Currency   string         `json:"currency"`
	GymID      string         `json:"gymId,omitempty"`
	Preferred  bool           `json:"preferred,omitempty"`
	Proximity  float64        `json:"proximity,omitempty"` // metres from the search centre
}

// TrainerRegistration is the signup payload for trainers.
type TrainerRegistration struct {
	Email       string   `json:"email" binding:"required,email"`
	Password    string   `json:"password" binding:"required,min=8"`
	Name        string   `json:"name" binding:"required"`
	Specialties []string `json:"specialties,omitempty"`
	City        string   `json:"city,omitempty"`
	HourlyRate  float64  `json:"hourlyRate" binding:"required"`
	Currency    string   `json:"currency" binding:"required"`
	GymID       string   `json:"gymId,omitempty"`
}
