package auth

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/dto/requests"
	"booking-service/internal/pkg/dto/responses"
	"booking-service/internal/pkg/exceptions"
	"context"
	"errors"

	"go.uber.org/zap"
)

type authUsecase struct {
	IdentityProvider contracts.IdentityProvider
	Log              *zap.Logger
}

func NewAuthUsecase(identityProvider contracts.IdentityProvider, logger *zap.Logger) contracts.AuthUsecase {
	return &authUsecase{
		IdentityProvider: identityProvider,
		Log:              logger,
	}
}

func (uc *authUsecase) Signup(ctx context.Context, request *requests.Credentials) (*responses.Signup, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Signup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.IdentityProvider.SignUp(ctx, request.Email, request.Password)
	if err != nil {
		uc.Log.Error("authUsecase.Signup error signing up",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if isProviderAnswer(err) {
			return nil, exceptions.ErrIdentitySignupRejected(err)
		}
		return nil, err
	}

	uc.Log.Info("authUsecase.Signup succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return &responses.Signup{
		Success: true,
		Message: constvars.SignupVerificationPendingMessage,
	}, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Credentials) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.IdentityProvider.SignInWithPassword(ctx, request.Email, request.Password)
	if err != nil {
		uc.Log.Error("authUsecase.Login error signing in",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if isProviderAnswer(err) {
			return nil, exceptions.ErrIdentityLoginRejected(err)
		}
		return nil, err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &responses.Login{
		Success: true,
		User:    session.User,
		Session: session,
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, accessToken string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := uc.IdentityProvider.SignOut(ctx, accessToken)
	if err != nil {
		uc.Log.Error("authUsecase.Logout error signing out",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrIdentityLogoutFailed(err)
	}

	uc.Log.Info("authUsecase.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

// isProviderAnswer reports whether the provider itself refused the call, as
// opposed to the gateway failing to reach it.
func isProviderAnswer(err error) bool {
	var providerErr *exceptions.ProviderError
	return errors.As(err, &providerErr)
}
