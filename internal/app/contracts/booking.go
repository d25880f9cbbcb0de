package contracts

import (
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/dto/requests"
	"booking-service/internal/pkg/dto/responses"
	"context"
)

type BookingUsecase interface {
	ListBookings(ctx context.Context) ([]responses.Booking, error)
	SaveBookings(ctx context.Context, owner *models.User, items []requests.BookingItem) (*responses.SaveBookings, error)
	DeleteBooking(ctx context.Context, owner *models.User, bookingID int64) error
}

type BookingRepository interface {
	// FindAll returns every booking ordered by date, start time and id.
	FindAll(ctx context.Context) ([]models.Booking, error)
	// FindByID returns nil without error when the booking does not exist.
	FindByID(ctx context.Context, bookingID int64) (*models.Booking, error)
	// UpsertMany stores the whole batch atomically. Bookings without an id
	// get one assigned; replacing a booking owned by someone else than
	// ownerID fails the batch with a 403.
	UpsertMany(ctx context.Context, ownerID string, bookings []models.Booking) ([]models.Booking, error)
	DeleteByID(ctx context.Context, bookingID int64) error
}
