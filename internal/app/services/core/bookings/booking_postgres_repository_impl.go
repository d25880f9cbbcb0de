package bookings

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"booking-service/internal/pkg/queries"
	"context"
	"database/sql"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type bookingPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

func NewBookingPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.BookingRepository {
	return &bookingPostgresRepository{
		DB:  db,
		Log: logger,
	}
}

func (repo *bookingPostgresRepository) FindAll(ctx context.Context) ([]models.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("bookingPostgresRepository.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	rows, err := repo.DB.QueryContext(ctx, queries.GetAllBookings)
	if err != nil {
		repo.Log.Error("bookingPostgresRepository.FindAll error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	bookings := make([]models.Booking, 0)
	for rows.Next() {
		var model models.Booking
		err := rows.Scan(
			&model.ID,
			&model.Title,
			&model.Date,
			&model.StartTime,
			&model.EndTime,
			&model.UserID,
			&model.CreatedAt,
			&model.UpdatedAt,
		)
		if err != nil {
			repo.Log.Error("bookingPostgresRepository.FindAll error scanning row",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		bookings = append(bookings, model)
	}

	if err := rows.Err(); err != nil {
		repo.Log.Error("bookingPostgresRepository.FindAll rows iteration error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	repo.Log.Info("bookingPostgresRepository.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingBookingCountKey, len(bookings)),
	)
	return bookings, nil
}

func (repo *bookingPostgresRepository) FindByID(ctx context.Context, bookingID int64) (*models.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("bookingPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBookingIDKey, bookingID),
	)

	var booking models.Booking
	err := repo.DB.QueryRowContext(ctx, queries.GetBookingByID, bookingID).Scan(
		&booking.ID,
		&booking.Title,
		&booking.Date,
		&booking.StartTime,
		&booking.EndTime,
		&booking.UserID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		repo.Log.Warn("bookingPostgresRepository.FindByID no rows found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingBookingIDKey, bookingID),
		)
		return nil, nil
	} else if err != nil {
		repo.Log.Error("bookingPostgresRepository.FindByID error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingBookingIDKey, bookingID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	repo.Log.Info("bookingPostgresRepository.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBookingIDKey, booking.ID),
	)
	return &booking, nil
}

func (repo *bookingPostgresRepository) UpsertMany(ctx context.Context, ownerID string, bookings []models.Booking) ([]models.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("bookingPostgresRepository.UpsertMany called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, ownerID),
		zap.Int(constvars.LoggingBookingCountKey, len(bookings)),
	)

	if len(bookings) == 0 {
		return []models.Booking{}, nil
	}

	tx, err := repo.DB.BeginTx(ctx, nil)
	if err != nil {
		repo.Log.Error("bookingPostgresRepository.UpsertMany error beginning transaction",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBBeginTransaction(err)
	}
	defer tx.Rollback()

	explicitIDs := make([]int64, 0, len(bookings))
	for _, booking := range bookings {
		if booking.HasID() {
			explicitIDs = append(explicitIDs, booking.ID)
		}
	}

	if len(explicitIDs) > 0 {
		err = repo.ensureOwnership(ctx, tx, ownerID, explicitIDs)
		if err != nil {
			return nil, err
		}
	}

	saved := make([]models.Booking, len(bookings))
	copy(saved, bookings)
	for i := range saved {
		saved[i].UserID = ownerID
	}

	for i := range saved {
		if saved[i].HasID() {
			err = tx.QueryRowContext(ctx, queries.UpdateBookingByID,
				saved[i].ID,
				saved[i].Title,
				saved[i].Date,
				saved[i].StartTime,
				saved[i].EndTime,
				ownerID,
			).Scan(&saved[i].ID, &saved[i].CreatedAt, &saved[i].UpdatedAt)
		} else {
			err = tx.QueryRowContext(ctx, queries.InsertBooking,
				saved[i].Title,
				saved[i].Date,
				saved[i].StartTime,
				saved[i].EndTime,
				ownerID,
			).Scan(&saved[i].ID, &saved[i].CreatedAt, &saved[i].UpdatedAt)
		}
		if err != nil {
			repo.Log.Error("bookingPostgresRepository.UpsertMany error writing booking",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int64(constvars.LoggingBookingIDKey, saved[i].ID),
				zap.Error(err),
			)
			return nil, exceptions.ErrPostgresDBUpsertData(err)
		}
	}

	err = tx.Commit()
	if err != nil {
		repo.Log.Error("bookingPostgresRepository.UpsertMany error committing transaction",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBCommitTransaction(err)
	}

	repo.Log.Info("bookingPostgresRepository.UpsertMany succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, ownerID),
		zap.Int(constvars.LoggingBookingCountKey, len(saved)),
	)
	return saved, nil
}

// ensureOwnership locks the rows behind bookingIDs. Ids are replace keys
// only: an id with no row is a 404, a row of another user a 403.
func (repo *bookingPostgresRepository) ensureOwnership(ctx context.Context, tx *sql.Tx, ownerID string, bookingIDs []int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	rows, err := tx.QueryContext(ctx, queries.LockBookingOwnersByIDs, pq.Array(bookingIDs))
	if err != nil {
		repo.Log.Error("bookingPostgresRepository.ensureOwnership error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	found := make(map[int64]struct{}, len(bookingIDs))
	for rows.Next() {
		var (
			bookingID int64
			userID    string
		)
		if err := rows.Scan(&bookingID, &userID); err != nil {
			return exceptions.ErrPostgresDBIterateDataset(err)
		}
		found[bookingID] = struct{}{}
		if userID != ownerID {
			repo.Log.Warn("bookingPostgresRepository.ensureOwnership booking owned by another user",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingUserIDKey, ownerID),
				zap.Int64(constvars.LoggingBookingIDKey, bookingID),
			)
			return exceptions.ErrBookingNotOwned(nil, bookingID)
		}
	}

	if err := rows.Err(); err != nil {
		return exceptions.ErrPostgresDBIterateDataset(err)
	}

	for _, bookingID := range bookingIDs {
		if _, ok := found[bookingID]; !ok {
			repo.Log.Warn("bookingPostgresRepository.ensureOwnership booking not found",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int64(constvars.LoggingBookingIDKey, bookingID),
			)
			return exceptions.ErrBookingNotFound(nil, bookingID)
		}
	}
	return nil
}

func (repo *bookingPostgresRepository) DeleteByID(ctx context.Context, bookingID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("bookingPostgresRepository.DeleteByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBookingIDKey, bookingID),
	)

	result, err := repo.DB.ExecContext(ctx, queries.DeleteBookingByID, bookingID)
	if err != nil {
		repo.Log.Error("bookingPostgresRepository.DeleteByID error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingBookingIDKey, bookingID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBDeleteData(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	if affected == 0 {
		return exceptions.ErrBookingNotFound(nil, bookingID)
	}

	repo.Log.Info("bookingPostgresRepository.DeleteByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBookingIDKey, bookingID),
	)
	return nil
}
