package requests

type BookingItem struct {
	ID        FlexibleID `json:"id"`
	Title     string     `json:"title" validate:"required,notblank"`
	Date      string     `json:"date" validate:"required,booking_date"`
	StartTime string     `json:"startTime" validate:"required,booking_time"`
	EndTime   string     `json:"endTime" validate:"required,booking_time"`
	// UserID is accepted for compatibility with older clients and never trusted.
	UserID string `json:"userId,omitempty"`
}

// ExampleBookingBatch is echoed back to clients that send a malformed batch.
func ExampleBookingBatch() []BookingItem {
	return []BookingItem{
		{
			Title:     "Team standup",
			Date:      "YYYY-MM-DD",
			StartTime: "HH:MM",
			EndTime:   "HH:MM",
		},
	}
}
