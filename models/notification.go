package models

// ReminderPayload is the asynq task body for session reminders.
type ReminderPayload struct {
	ReservationID string `json:"reservationId"`
	Target        string `json:"target"` // "user" or "trainer"
	ID            string `json:"id"`     // recipient ID
	Title         string `json:"title"`
	Body          string `json:"body"`
	FireDate      string `json:"fireDate"` // RFC3339
}
