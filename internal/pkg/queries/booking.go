package queries

const (
	GetAllBookings = `
		SELECT id, title, date, start_time, end_time, user_id, created_at, updated_at
		FROM bookings
		ORDER BY date ASC, start_time ASC, id ASC
	`

	GetBookingByID = `
		SELECT id, title, date, start_time, end_time, user_id, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	LockBookingOwnersByIDs = `
		SELECT id, user_id
		FROM bookings
		WHERE id = ANY($1)
		FOR UPDATE
	`

	InsertBooking = `
		INSERT INTO bookings (title, date, start_time, end_time, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	UpdateBookingByID = `
		UPDATE bookings SET
			title = $2,
			date = $3,
			start_time = $4,
			end_time = $5,
			updated_at = NOW()
		WHERE id = $1 AND user_id = $6
		RETURNING id, created_at, updated_at
	`

	DeleteBookingByID = `DELETE FROM bookings WHERE id = $1`
)
