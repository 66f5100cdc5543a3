package models

// Weekday follows time.Weekday numbering: Sunday = 0 … Saturday = 6.
// The same integer is written by the trainer settings flow and read by the
// availability resolver, so the mapping cannot drift between the two.
type Weekday = int

// RecurringAvailability is a trainer's per-weekday template of open hours.
// At most one record exists per (ProviderID, Weekday); the schedule
// repository enforces this with a unique index.
type RecurringAvailability struct {
	ProviderID  string  `bson:"provider_id" json:"providerId"`
	Weekday     Weekday `bson:"weekday" json:"weekday"`          // 0=Sunday … 6=Saturday
	IsAvailable bool    `bson:"is_available" json:"isAvailable"` // false means no slots that weekday
	WindowStart int     `bson:"window_start" json:"windowStart"` // minutes from midnight
	WindowEnd   int     `bson:"window_end" json:"windowEnd"`     // minutes from midnight, > WindowStart
}

// Slot is a derived 1-hour candidate booking interval. Slots are recomputed
// on every query and never persisted.
type Slot struct {
	Start     int    `json:"start"` // minutes from midnight
	End       int    `json:"end"`   // minutes from midnight
	Available bool   `json:"available"`
	Label     string `json:"label"` // e.g. "9:00 AM - 10:00 AM"
}

// WeeklyScheduleRequest is the payload for a trainer's availability settings.
type WeeklyScheduleRequest struct {
	Days []RecurringAvailability `json:"days" binding:"required"`
}
