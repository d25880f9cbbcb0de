package contracts

import (
	"booking-service/internal/pkg/dto/requests"
	"booking-service/internal/pkg/dto/responses"
	"context"
)

type AuthUsecase interface {
	Signup(ctx context.Context, request *requests.Credentials) (*responses.Signup, error)
	Login(ctx context.Context, request *requests.Credentials) (*responses.Login, error)
	Logout(ctx context.Context, accessToken string) error
}
