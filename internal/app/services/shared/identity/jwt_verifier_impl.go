package identity

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/pkg/constvars"
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

type jwtVerifier struct {
	Secret []byte
	Log    *zap.Logger
}

// NewJWTVerifier checks the HS256 signature and expiry of access tokens
// issued by the auth service. It returns nil when no secret is configured.
func NewJWTVerifier(secret string, logger *zap.Logger) contracts.TokenVerifier {
	if secret == "" {
		return nil
	}
	return &jwtVerifier{
		Secret: []byte(secret),
		Log:    logger,
	}
}

func (v *jwtVerifier) Verify(ctx context.Context, accessToken string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(accessToken, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.Secret, nil
	})
	if err != nil {
		v.Log.Warn("jwtVerifier.Verify rejected token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if !parsed.Valid || claims.Subject == "" {
		return fmt.Errorf("token has no subject")
	}
	return nil
}
