package models

import "time"

// BookingEvent is the message published after bookings change.
type BookingEvent struct {
	Type       string    `json:"type"`
	RequestID  string    `json:"request_id,omitempty"`
	UserID     string    `json:"user_id"`
	BookingIDs []int64   `json:"booking_ids"`
	OccurredAt time.Time `json:"occurred_at"`
}
