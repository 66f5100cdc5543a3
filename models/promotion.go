package models

import "time"

// Promotion is a redeemable discount code.
type Promotion struct {
	Code        string    `bson:"code" json:"code"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	PercentOff  float64   `bson:"percent_off" json:"percentOff"` // 0–100
	MaxUses     int       `bson:"max_uses" json:"maxUses"`       // 0 means unlimited
	Uses        int       `bson:"uses" json:"uses"`
	ExpiresAt   time.Time `bson:"expires_at" json:"expiresAt"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}

// Active reports whether the promotion can still be redeemed at the given time.
func (p Promotion) Active(now time.Time) bool {
	if now.After(p.ExpiresAt) {
		return false
	}
	if p.MaxUses > 0 && p.Uses >= p.MaxUses {
		return false
	}
	return true
}

// Apply returns the price after the promotion's discount.
func (p Promotion) Apply(price float64) float64 {
	discounted := price * (1 - p.PercentOff/100)
	if discounted < 0 {
		return 0
	}
	return discounted
}
