package utils

import (
	"booking-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeCredentials(input *requests.Credentials) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
}

// SanitizeBookingItem trims the whitespace browsers tend to leave around
// form values. The client supplied owner is always discarded.
func SanitizeBookingItem(input *requests.BookingItem) {
	input.Date = strings.TrimSpace(input.Date)
	input.StartTime = strings.TrimSpace(input.StartTime)
	input.EndTime = strings.TrimSpace(input.EndTime)
	input.UserID = ""
}
