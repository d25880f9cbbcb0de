package controllers

import (
	"booking-service/internal/app/config"
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/dto/requests"
	"booking-service/internal/pkg/dto/responses"
	"booking-service/internal/pkg/exceptions"
	"booking-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type BookingController struct {
	Log            *zap.Logger
	BookingUsecase contracts.BookingUsecase
	InternalConfig *config.InternalConfig
}

func NewBookingController(logger *zap.Logger, bookingUsecase contracts.BookingUsecase, internalConfig *config.InternalConfig) *BookingController {
	return &BookingController{
		Log:            logger,
		BookingUsecase: bookingUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *BookingController) ListBookings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.BookingUsecase.ListBookings(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if result == nil {
		result = []responses.Booking{}
	}

	utils.SetNoCacheHeaders(w)
	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

// HeadBookings answers HEAD requests browsers use to check reachability.
func (ctrl *BookingController) HeadBookings(w http.ResponseWriter, r *http.Request) {
	utils.SetNoCacheHeaders(w)
	w.WriteHeader(constvars.StatusOK)
}

func (ctrl *BookingController) SaveBookings(w http.ResponseWriter, r *http.Request) {
	owner, ok := r.Context().Value(constvars.CONTEXT_AUTHENTICATED_USER_KEY).(*models.User)
	if !ok || owner == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrUserNotInContext(nil))
		return
	}

	// Bind body to request
	var rawItems []json.RawMessage
	err := utils.DecodeJSONBody(r.Body, &rawItems)
	if err != nil || rawItems == nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrRequestBodyTooLarge(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrBookingBatchNotArray(err).WithExpected(requests.ExampleBookingBatch()))
		return
	}

	items := make([]requests.BookingItem, 0, len(rawItems))
	for i, raw := range rawItems {
		var item requests.BookingItem
		err = json.Unmarshal(raw, &item)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrBookingBatchValidation(err, i).WithExpected(requests.ExampleBookingBatch()))
			return
		}

		// Sanitize and validate every element before anything is stored
		utils.SanitizeBookingItem(&item)
		err = utils.ValidateStruct(item)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrBookingBatchValidation(err, i).WithExpected(requests.ExampleBookingBatch()))
			return
		}
		items = append(items, item)
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.BookingUsecase.SaveBookings(ctx, owner, items)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

func (ctrl *BookingController) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	owner, ok := r.Context().Value(constvars.CONTEXT_AUTHENTICATED_USER_KEY).(*models.User)
	if !ok || owner == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrUserNotInContext(nil))
		return
	}

	bookingID, err := strconv.ParseInt(chi.URLParam(r, constvars.URLParamBookingID), 10, 64)
	if err == nil && bookingID <= 0 {
		err = errors.New("booking id must be positive")
	}
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamBookingID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	err = ctrl.BookingUsecase.DeleteBooking(ctx, owner, bookingID)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, responses.Success{Success: true})
}
