package contracts

import (
	"booking-service/internal/app/models"
	"context"
)

// FrontendStorage serves the compiled browser client.
type FrontendStorage interface {
	Open(ctx context.Context, name string) (*models.FrontendObject, error)
}
