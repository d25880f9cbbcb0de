package middlewares

import (
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"booking-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// Authenticate resolves the bearer token to a user with the identity
// provider and stores both in the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		token, ok := utils.ExtractBearerToken(r.Header.Get(constvars.HeaderAuthorization))
		if !ok {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), m.InternalConfig.App.RequestTimeout())
		defer cancel()

		if m.TokenVerifier != nil {
			err := m.TokenVerifier.Verify(ctx, token)
			if err != nil {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
				return
			}
		}

		user, err := m.IdentityProvider.GetUser(ctx, token)
		if err != nil {
			m.Log.Warn("Middlewares.Authenticate error resolving token",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			switch {
			case errors.Is(err, context.DeadlineExceeded):
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			case exceptions.IsProviderClientError(err):
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			case isProviderFailure(err):
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrIdentityUnavailable(err))
			default:
				utils.BuildErrorResponse(m.Log, w, err)
			}
			return
		}

		authCtx := context.WithValue(r.Context(), constvars.CONTEXT_AUTHENTICATED_USER_KEY, user)
		authCtx = context.WithValue(authCtx, constvars.CONTEXT_ACCESS_TOKEN_KEY, token)
		next.ServeHTTP(w, r.WithContext(authCtx))
	})
}

func isProviderFailure(err error) bool {
	var providerErr *exceptions.ProviderError
	return errors.As(err, &providerErr)
}
