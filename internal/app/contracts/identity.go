package contracts

import (
	"booking-service/internal/app/models"
	"context"
)

// IdentityProvider is the external service that owns users and sessions.
type IdentityProvider interface {
	SignUp(ctx context.Context, email, password string) (*models.User, error)
	SignInWithPassword(ctx context.Context, email, password string) (*models.Session, error)
	SignOut(ctx context.Context, accessToken string) error
	GetUser(ctx context.Context, accessToken string) (*models.User, error)
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
}

// IdentityResolver maps user ids to email addresses for listings. Ids that
// cannot be resolved are absent from the returned map.
type IdentityResolver interface {
	ResolveEmails(ctx context.Context, userIDs []string) map[string]string
}

// TokenVerifier rejects tokens that are malformed or expired before the
// provider is asked about them.
type TokenVerifier interface {
	Verify(ctx context.Context, accessToken string) error
}
