package exceptions

import (
	"booking-service/internal/pkg/constvars"
	"fmt"
)

var (
	// Input
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrURLParamIDValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidBookingID, fmt.Sprintf(constvars.ErrDevURLParamIDValidationFailed, paramName))
	}
	ErrRequestBodyTooLarge = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusRequestTooLarge, constvars.ErrClientRequestTooLarge, constvars.ErrDevRequestBodyTooLarge)
	}

	// Booking
	ErrBookingBatchNotArray = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidBookingData, constvars.ErrDevBookingBatchNotArray)
	}
	ErrBookingBatchValidation = func(err error, index int) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidBookingData, fmt.Sprintf(constvars.ErrDevBookingBatchValidation, index))
	}
	ErrBookingNotFound = func(err error, bookingID int64) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientBookingNotFound, fmt.Sprintf(constvars.ErrDevBookingNotFound, bookingID))
	}
	ErrBookingNotOwned = func(err error, bookingID int64) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, constvars.ErrClientBookingNotOwned, fmt.Sprintf(constvars.ErrDevBookingNotOwned, bookingID))
	}

	// Auth
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalidOrExpired)
	}
	ErrUserNotInContext = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthUserNotInContext)
	}
	ErrIdentityLoginRejected = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, providerMessage(err, constvars.ErrClientInvalidCredentials), constvars.ErrDevIdentityLoginRejected)
	}
	ErrIdentitySignupRejected = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, providerMessage(err, constvars.ErrClientSignupFailed), constvars.ErrDevIdentitySignupRejected)
	}
	ErrIdentityLogoutFailed = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientLogoutFailed, constvars.ErrDevIdentityLogoutFailed)
	}

	// Identity provider
	ErrIdentityDecodeResponse = func(err error, path string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalFailure, fmt.Sprintf(constvars.ErrDevIdentityDecodeResponse, path))
	}
	ErrIdentityUnavailable = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalFailure, constvars.ErrDevIdentityUnavailable)
	}
	ErrIdentityUserMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevIdentityUserMissing)
	}

	// Postgres DB
	ErrPostgresDBFindData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalFailure, constvars.ErrDevDBFailedToFindData)
	}
	ErrPostgresDBIterateDataset = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalFailure, constvars.ErrDevDBFailedToIterateDataset)
	}
	ErrPostgresDBUpsertData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalFailure, constvars.ErrDevDBFailedToUpsertData)
	}
	ErrPostgresDBDeleteData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalFailure, constvars.ErrDevDBFailedToDeleteData)
	}
	ErrPostgresDBBeginTransaction = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalFailure, constvars.ErrDevDBFailedToBeginTransaction)
	}
	ErrPostgresDBCommitTransaction = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalFailure, constvars.ErrDevDBFailedToCommitTransaction)
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalFailure, constvars.ErrDevDBFailedToFindData)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalFailure, constvars.ErrDevDBFailedToIterateDataset)
	}
	ErrMongoDBUpsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalFailure, constvars.ErrDevDBFailedToUpsertData)
	}
	ErrMongoDBDeleteDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalFailure, constvars.ErrDevDBFailedToDeleteData)
	}
	ErrMongoDBGenerateID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalFailure, constvars.ErrDevDBFailedToGenerateID)
	}

	// Redis
	ErrRedisGet = func(err error, redisKey string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisGetNoData, redisKey))
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, routingKey string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, routingKey))
	}

	// Frontend
	ErrFrontendObjectNotFound = func(err error, object string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientNotFound, fmt.Sprintf(constvars.ErrDevFrontendObjectNotFound, object))
	}
	ErrFrontendObjectRead = func(err error, object string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevFrontendObjectRead, object))
	}

	// HTTP
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalFailure, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalFailure, constvars.ErrDevSendHTTPRequest)
	}

	// Default Server
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalFailure, constvars.ErrDevServerProcess)
	}
)
