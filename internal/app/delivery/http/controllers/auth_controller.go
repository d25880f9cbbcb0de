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

	"go.uber.org/zap"
)

type AuthController struct {
	Log            *zap.Logger
	AuthUsecase    contracts.AuthUsecase
	InternalConfig *config.InternalConfig
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase, internalConfig *config.InternalConfig) *AuthController {
	return &AuthController{
		Log:            logger,
		AuthUsecase:    authUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	request, err := ctrl.bindCredentials(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	// Send it to be processed by usecase
	result, err := ctrl.AuthUsecase.Signup(ctx, request)
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

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	request, err := ctrl.bindCredentials(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	// Send it to be processed by usecase
	result, err := ctrl.AuthUsecase.Login(ctx, request)
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

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	accessToken, ok := r.Context().Value(constvars.CONTEXT_ACCESS_TOKEN_KEY).(string)
	if !ok || accessToken == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	err := ctrl.AuthUsecase.Logout(ctx, accessToken)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, responses.Success{Success: true})
}

func (ctrl *AuthController) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(constvars.CONTEXT_AUTHENTICATED_USER_KEY).(*models.User)
	if !ok || user == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrUserNotInContext(nil))
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, responses.CurrentUser{User: user})
}

func (ctrl *AuthController) bindCredentials(r *http.Request) (*requests.Credentials, error) {
	// Bind body to request
	request := new(requests.Credentials)
	err := utils.DecodeJSONBody(r.Body, request)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, exceptions.ErrRequestBodyTooLarge(err)
		}
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	// Sanitize request
	utils.SanitizeCredentials(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return request, nil
}
