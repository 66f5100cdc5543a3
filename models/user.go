package models

import "time"

// User is an athlete account.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	TokenHash    string    `bson:"token_hash,omitempty" json:"-"`
	Name         string    `bson:"name" json:"name"`
	City         string    `bson:"city,omitempty" json:"city,omitempty"`
	Goals        []string  `bson:"goals,omitempty" json:"goals,omitempty"` // e.g. "weight loss", "endurance"
	FCMToken     string    `bson:"fcm_token,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// UserRegistration is the signup payload for athletes.
type UserRegistration struct {
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=8"`
	Name     string   `json:"name" binding:"required"`
	City     string   `json:"city,omitempty"`
	Goals    []string `json:"goals,omitempty"`
}

// Credentials is the login payload shared by athletes and trainers.
type Credentials struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
