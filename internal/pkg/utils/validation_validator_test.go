package utils

import (
	"booking-service/internal/pkg/dto/requests"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStructBookingItem(t *testing.T) {
	valid := requests.BookingItem{
		Title:     "Standup",
		Date:      "2024-01-05",
		StartTime: "09:00",
		EndTime:   "09:15",
	}

	t.Run("Valid Item", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(valid))
	})

	tests := []struct {
		name          string
		mutate        func(item *requests.BookingItem)
		expectedField string
		expectedTag   string
	}{
		{"Missing Title", func(item *requests.BookingItem) { item.Title = "" }, "title", "required"},
		{"Blank Title", func(item *requests.BookingItem) { item.Title = "   " }, "title", "notblank"},
		{"Date With Slashes", func(item *requests.BookingItem) { item.Date = "2024/01/05" }, "date", "booking_date"},
		{"Date With Trailing Text", func(item *requests.BookingItem) { item.Date = "2024-01-05T00:00" }, "date", "booking_date"},
		{"Start Time Without Minutes", func(item *requests.BookingItem) { item.StartTime = "9" }, "startTime", "booking_time"},
		{"Missing End Time", func(item *requests.BookingItem) { item.EndTime = "" }, "endTime", "required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := valid
			tt.mutate(&item)

			err := ValidateStruct(item)
			require.Error(t, err)

			var validationErrors validator.ValidationErrors
			require.True(t, errors.As(err, &validationErrors))
			assert.Equal(t, tt.expectedField, validationErrors[0].Field())
			assert.Equal(t, tt.expectedTag, validationErrors[0].Tag())
		})
	}
}

func TestValidateStructCredentials(t *testing.T) {
	t.Run("Invalid Email", func(t *testing.T) {
		err := ValidateStruct(requests.Credentials{Email: "not-an-email", Password: "pw"})
		assert.Error(t, err)
	})

	t.Run("Valid Credentials", func(t *testing.T) {
		err := ValidateStruct(requests.Credentials{Email: "user@example.com", Password: "pw"})
		assert.NoError(t, err)
	})
}
