package bookings

import (
	"booking-service/internal/app/models"
	"context"
	"errors"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var bookingColumns = []string{"id", "title", "date", "start_time", "end_time", "user_id", "created_at", "updated_at"}

func newPostgresRepositoryWithMock(t *testing.T) (*bookingPostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewBookingPostgresRepository(db, zap.NewNop()).(*bookingPostgresRepository)
	return repo, sqlMock
}

func TestBookingPostgresRepository_FindAll(t *testing.T) {
	t.Run("Returns Rows In Query Order", func(t *testing.T) {
		repo, sqlMock := newPostgresRepositoryWithMock(t)
		now := time.Now()

		sqlMock.ExpectQuery(regexp.QuoteMeta("ORDER BY date ASC, start_time ASC, id ASC")).
			WillReturnRows(sqlmock.NewRows(bookingColumns).
				AddRow(1, "Standup", "2024-01-05", "09:00", "09:15", "u1", now, now).
				AddRow(2, "Review", "2024-01-06", "10:00", "11:00", "u2", now, now))

		bookings, err := repo.FindAll(context.Background())

		require.NoError(t, err)
		require.Len(t, bookings, 2)
		assert.Equal(t, int64(1), bookings[0].ID)
		assert.Equal(t, "Review", bookings[1].Title)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("Query Failure", func(t *testing.T) {
		repo, sqlMock := newPostgresRepositoryWithMock(t)

		sqlMock.ExpectQuery(regexp.QuoteMeta("FROM bookings")).WillReturnError(errors.New("connection reset"))

		_, err := repo.FindAll(context.Background())

		assert.Equal(t, http.StatusInternalServerError, statusOf(t, err))
	})
}

func TestBookingPostgresRepository_FindByID(t *testing.T) {
	t.Run("Missing Row Returns Nil", func(t *testing.T) {
		repo, sqlMock := newPostgresRepositoryWithMock(t)

		sqlMock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows(bookingColumns))

		booking, err := repo.FindByID(context.Background(), 5)

		require.NoError(t, err)
		assert.Nil(t, booking)
	})
}

func TestBookingPostgresRepository_UpsertMany(t *testing.T) {
	now := time.Now()

	t.Run("Inserts Bookings Without Id", func(t *testing.T) {
		repo, sqlMock := newPostgresRepositoryWithMock(t)

		sqlMock.ExpectBegin()
		sqlMock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings (title, date, start_time, end_time, user_id)")).
			WithArgs("Standup", "2024-01-05", "09:00", "09:15", "owner-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(11, now, now))
		sqlMock.ExpectCommit()

		saved, err := repo.UpsertMany(context.Background(), "owner-1", []models.Booking{
			{Title: "Standup", Date: "2024-01-05", StartTime: "09:00", EndTime: "09:15"},
		})

		require.NoError(t, err)
		require.Len(t, saved, 1)
		assert.Equal(t, int64(11), saved[0].ID)
		assert.Equal(t, "owner-1", saved[0].UserID)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("Replaces Own Booking In Place", func(t *testing.T) {
		repo, sqlMock := newPostgresRepositoryWithMock(t)

		sqlMock.ExpectBegin()
		sqlMock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(7, "owner-1"))
		sqlMock.ExpectQuery(regexp.QuoteMeta("UPDATE bookings SET")).
			WithArgs(int64(7), "Review", "2024-01-06", "10:00", "11:00", "owner-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(7, now, now))
		sqlMock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings (title, date, start_time, end_time, user_id)")).
			WithArgs("Standup", "2024-01-05", "09:00", "09:15", "owner-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(12, now, now))
		sqlMock.ExpectCommit()

		saved, err := repo.UpsertMany(context.Background(), "owner-1", []models.Booking{
			{ID: 7, Title: "Review", Date: "2024-01-06", StartTime: "10:00", EndTime: "11:00"},
			{Title: "Standup", Date: "2024-01-05", StartTime: "09:00", EndTime: "09:15"},
		})

		require.NoError(t, err)
		require.Len(t, saved, 2)
		assert.Equal(t, int64(7), saved[0].ID)
		assert.Equal(t, int64(12), saved[1].ID)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("Unknown Id Is Rejected Without Writing", func(t *testing.T) {
		for _, bookingID := range []int64{404, 9223372036854775807} {
			repo, sqlMock := newPostgresRepositoryWithMock(t)

			sqlMock.ExpectBegin()
			sqlMock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
				WithArgs(sqlmock.AnyArg()).
				WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}))
			sqlMock.ExpectRollback()

			saved, err := repo.UpsertMany(context.Background(), "owner-1", []models.Booking{
				{Title: "New", Date: "2024-01-05", StartTime: "09:00", EndTime: "09:15"},
				{ID: bookingID, Title: "Ghost", Date: "2024-01-06", StartTime: "10:00", EndTime: "11:00"},
			})

			assert.Nil(t, saved)
			assert.Equal(t, http.StatusNotFound, statusOf(t, err))
			assert.NoError(t, sqlMock.ExpectationsWereMet())
		}
	})

	t.Run("Foreign Booking Rolls Back Whole Batch", func(t *testing.T) {
		repo, sqlMock := newPostgresRepositoryWithMock(t)

		sqlMock.ExpectBegin()
		sqlMock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(7, "intruder"))
		sqlMock.ExpectRollback()

		_, err := repo.UpsertMany(context.Background(), "owner-1", []models.Booking{
			{Title: "New", Date: "2024-01-05", StartTime: "09:00", EndTime: "09:15"},
			{ID: 7, Title: "Hijack", Date: "2024-01-06", StartTime: "10:00", EndTime: "11:00"},
		})

		assert.Equal(t, http.StatusForbidden, statusOf(t, err))
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("Empty Batch Touches Nothing", func(t *testing.T) {
		repo, sqlMock := newPostgresRepositoryWithMock(t)

		saved, err := repo.UpsertMany(context.Background(), "owner-1", nil)

		require.NoError(t, err)
		assert.Empty(t, saved)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}

func TestBookingPostgresRepository_DeleteByID(t *testing.T) {
	t.Run("Deletes Row", func(t *testing.T) {
		repo, sqlMock := newPostgresRepositoryWithMock(t)

		sqlMock.ExpectExec(regexp.QuoteMeta("DELETE FROM bookings WHERE id = $1")).
			WithArgs(int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeleteByID(context.Background(), 3))
	})

	t.Run("Nothing Deleted", func(t *testing.T) {
		repo, sqlMock := newPostgresRepositoryWithMock(t)

		sqlMock.ExpectExec(regexp.QuoteMeta("DELETE FROM bookings WHERE id = $1")).
			WithArgs(int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteByID(context.Background(), 3)

		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	})
}
