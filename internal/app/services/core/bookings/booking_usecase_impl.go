package bookings

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/dto/requests"
	"booking-service/internal/pkg/dto/responses"
	"booking-service/internal/pkg/exceptions"
	"booking-service/internal/pkg/utils"
	"context"
	"time"

	"go.uber.org/zap"
)

type bookingUsecase struct {
	BookingRepository contracts.BookingRepository
	IdentityResolver  contracts.IdentityResolver
	EventPublisher    contracts.EventPublisher
	Log               *zap.Logger
}

func NewBookingUsecase(
	bookingRepository contracts.BookingRepository,
	identityResolver contracts.IdentityResolver,
	eventPublisher contracts.EventPublisher,
	logger *zap.Logger,
) contracts.BookingUsecase {
	return &bookingUsecase{
		BookingRepository: bookingRepository,
		IdentityResolver:  identityResolver,
		EventPublisher:    eventPublisher,
		Log:               logger,
	}
}

func (uc *bookingUsecase) ListBookings(ctx context.Context) ([]responses.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.ListBookings called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	bookings, err := uc.BookingRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("bookingUsecase.ListBookings error fetching bookings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	ownerIDs := make([]string, 0)
	seen := make(map[string]struct{})
	for _, booking := range bookings {
		if _, ok := seen[booking.UserID]; ok {
			continue
		}
		seen[booking.UserID] = struct{}{}
		ownerIDs = append(ownerIDs, booking.UserID)
	}

	emails := uc.IdentityResolver.ResolveEmails(ctx, ownerIDs)

	response := make([]responses.Booking, len(bookings))
	for i, booking := range bookings {
		email, ok := emails[booking.UserID]
		if !ok || email == "" {
			email = constvars.UnknownUserEmail
		}
		response[i] = toBookingView(booking, email)
	}

	uc.Log.Info("bookingUsecase.ListBookings succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingBookingCountKey, len(response)),
		zap.Int(constvars.LoggingOwnerCountKey, len(ownerIDs)),
	)
	return response, nil
}

func (uc *bookingUsecase) SaveBookings(ctx context.Context, owner *models.User, items []requests.BookingItem) (*responses.SaveBookings, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.SaveBookings called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, owner.ID),
		zap.Int(constvars.LoggingBookingCountKey, len(items)),
	)

	bookings := make([]models.Booking, len(items))
	for i, item := range items {
		bookings[i] = models.Booking{
			ID:        int64(item.ID),
			Title:     item.Title,
			Date:      item.Date,
			StartTime: item.StartTime,
			EndTime:   item.EndTime,
			UserID:    owner.ID,
		}
	}

	saved, err := uc.BookingRepository.UpsertMany(ctx, owner.ID, bookings)
	if err != nil {
		uc.Log.Error("bookingUsecase.SaveBookings error upserting bookings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, owner.ID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publish(ctx, constvars.EventBookingSaved, owner.ID, saved)

	uc.Log.Info("bookingUsecase.SaveBookings succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, owner.ID),
		zap.Int(constvars.LoggingBookingCountKey, len(saved)),
	)
	return &responses.SaveBookings{
		Success:    true,
		ItemsSaved: len(saved),
	}, nil
}

func (uc *bookingUsecase) DeleteBooking(ctx context.Context, owner *models.User, bookingID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.DeleteBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, owner.ID),
		zap.Int64(constvars.LoggingBookingIDKey, bookingID),
	)

	existing, err := uc.BookingRepository.FindByID(ctx, bookingID)
	if err != nil {
		uc.Log.Error("bookingUsecase.DeleteBooking error fetching booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingBookingIDKey, bookingID),
			zap.Error(err),
		)
		return err
	}

	if existing == nil {
		uc.Log.Warn("bookingUsecase.DeleteBooking booking not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingBookingIDKey, bookingID),
		)
		return exceptions.ErrBookingNotFound(nil, bookingID)
	}

	if existing.UserID != owner.ID {
		uc.Log.Warn("bookingUsecase.DeleteBooking booking owned by another user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, owner.ID),
			zap.Int64(constvars.LoggingBookingIDKey, bookingID),
		)
		return exceptions.ErrBookingNotOwned(nil, bookingID)
	}

	err = uc.BookingRepository.DeleteByID(ctx, bookingID)
	if err != nil {
		uc.Log.Error("bookingUsecase.DeleteBooking error deleting booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingBookingIDKey, bookingID),
			zap.Error(err),
		)
		return err
	}

	uc.publish(ctx, constvars.EventBookingDeleted, owner.ID, []models.Booking{*existing})

	uc.Log.Info("bookingUsecase.DeleteBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBookingIDKey, bookingID),
	)
	return nil
}

// publish never fails the request; the change is already stored.
func (uc *bookingUsecase) publish(ctx context.Context, routingKey, userID string, bookings []models.Booking) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	bookingIDs := make([]int64, len(bookings))
	for i, booking := range bookings {
		bookingIDs[i] = booking.ID
	}

	event := models.BookingEvent{
		Type:       routingKey,
		RequestID:  requestID,
		UserID:     userID,
		BookingIDs: bookingIDs,
		OccurredAt: time.Now().UTC(),
	}

	err := uc.EventPublisher.Publish(ctx, routingKey, event)
	if err != nil {
		uc.Log.Warn("bookingUsecase.publish error publishing booking event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventRoutingKey, routingKey),
			zap.Error(err),
		)
	}
}

func toBookingView(booking models.Booking, email string) responses.Booking {
	return responses.Booking{
		ID:        booking.ID,
		Title:     booking.Title,
		Date:      booking.Date,
		StartTime: booking.StartTime,
		EndTime:   booking.EndTime,
		UserID:    booking.UserID,
		UserEmail: email,
		UserName:  utils.DisplayNameFromEmail(email),
	}
}
