package constvars

const (
	UnknownUserEmail = "Unknown User"
	UnknownUserName  = "Unknown"
)

const (
	ResourceBooking = "booking"
	ResourceUser    = "user"
	ResourceSession = "session"

	PostgresTableBookings     = "bookings"
	MongoCollectionBookings   = "bookings"
	MongoCollectionCounters   = "counters"
	MongoCounterBookingIDName = "booking_id"
)

const (
	RedisKeyUserEmailFormat = "identity:user_email:%s"
)

const (
	EventBookingSaved   = "booking.saved"
	EventBookingDeleted = "booking.deleted"
)

const (
	FrontendEntryDocument = "index.html"
)

const (
	URLParamBookingID = "id"
	APIPathPrefix     = "/api/"
)
