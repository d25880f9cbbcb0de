package models

import "time"

type Booking struct {
	ID        int64     `json:"id" bson:"_id"`
	Title     string    `json:"title" bson:"title"`
	Date      string    `json:"date" bson:"date"`
	StartTime string    `json:"startTime" bson:"start_time"`
	EndTime   string    `json:"endTime" bson:"end_time"`
	UserID    string    `json:"userId" bson:"user_id"`
	CreatedAt time.Time `json:"-" bson:"created_at"`
	UpdatedAt time.Time `json:"-" bson:"updated_at"`
}

// HasID reports whether the booking already carries an identifier. Bookings
// without one get it assigned by the store.
func (b *Booking) HasID() bool {
	return b.ID > 0
}
