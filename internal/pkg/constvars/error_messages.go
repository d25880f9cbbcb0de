package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email",
	"min":          "must be at least %s characters long",
	"max":          "maximum at %s characters long",
	"booking_date": "must match the YYYY-MM-DD format",
	"booking_time": "must match the HH:MM format",
	"notblank":     "must not be blank",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min": true,
	"max": true,
}

// Error messages for clients
const (
	ErrClientSomethingWrongWithApplication = "something wrong with our application, please try again later"
	ErrClientCannotProcessRequest          = "cannot process your request, please check your input and try again"
	ErrClientServerLongRespond             = "server takes too long to respond, please try again later"
	ErrClientNotAuthorized                 = "you are not authorized to access this resource"
	ErrClientNotLoggedIn                   = "please login to continue"
	ErrClientInvalidBookingData            = "invalid data format, expected an array of bookings"
	ErrClientBookingNotFound               = "booking not found"
	ErrClientBookingNotOwned               = "you can only modify your own bookings"
	ErrClientInvalidBookingID              = "booking id must be a number"
	ErrClientInvalidCredentials            = "invalid email or password"
	ErrClientSignupFailed                  = "cannot sign up with the given credentials"
	ErrClientInternalFailure               = "internal server error"
	ErrClientNotFound                      = "the requested resource was not found"
	ErrClientRequestTooLarge               = "request body is too large"
	ErrClientLogoutFailed                  = "logout failed, please try again later"
)

// Error messages for developers
const (
	ErrDevInvalidInput                 = "invalid input"
	ErrDevValidationFailed             = "validation failed"
	ErrDevCannotParseJSON              = "cannot parse JSON"
	ErrDevCannotMarshalJSON            = "cannot marshal JSON"
	ErrDevServerDeadlineExceeded       = "server deadline exceeded"
	ErrDevServerProcess                = "server failed to process the request"
	ErrDevAuthTokenMissing             = "authorization token missing"
	ErrDevAuthTokenInvalidOrExpired    = "authorization token invalid or expired"
	ErrDevAuthUserNotInContext         = "authenticated user missing from request context"
	ErrDevBookingBatchNotArray         = "booking payload is not a JSON array"
	ErrDevBookingBatchValidation       = "booking item at index %d failed validation"
	ErrDevBookingNotFound              = "booking %d not found"
	ErrDevBookingNotOwned              = "booking %d belongs to another user"
	ErrDevURLParamIDValidationFailed   = "URL param %s must be a positive integer"
	ErrDevDBFailedToFindData           = "failed to find data"
	ErrDevDBFailedToUpsertData         = "failed to upsert data"
	ErrDevDBFailedToDeleteData         = "failed to delete data"
	ErrDevDBFailedToIterateDataset     = "failed to iterate dataset"
	ErrDevDBFailedToBeginTransaction   = "failed to begin transaction"
	ErrDevDBFailedToCommitTransaction  = "failed to commit transaction"
	ErrDevDBFailedToGenerateID         = "failed to generate booking id"
	ErrDevRedisGetData                 = "failed to get data from redis"
	ErrDevRedisGetNoData               = "failed to get data from redis with key %s"
	ErrDevRedisSetData                 = "failed to set data to redis"
	ErrDevRedisDeleteData              = "failed to delete data from redis"
	ErrDevCreateHTTPRequest            = "failed to create HTTP request"
	ErrDevSendHTTPRequest              = "failed to send HTTP request"
	ErrDevIdentityDecodeResponse       = "failed to decode identity provider %s response"
	ErrDevIdentityUserMissing          = "identity provider returned no user for the token"
	ErrDevIdentitySignupRejected       = "identity provider rejected the signup"
	ErrDevIdentityLoginRejected        = "identity provider rejected the login"
	ErrDevIdentityLogoutFailed         = "identity provider failed to end the session"
	ErrDevIdentityUnavailable          = "identity provider is unavailable"
	ErrDevRabbitMQPublishMessage       = "failed to publish message with routing key %s"
	ErrDevFrontendObjectNotFound       = "frontend object %s not found"
	ErrDevFrontendObjectRead           = "failed to read frontend object %s"
	ErrDevRequestBodyTooLarge          = "request body exceeds the configured limit"
)
