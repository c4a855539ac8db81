package ports

import (
	"cinedex/internal/model"
	"context"
)

type AuthenticationService interface {
	Login(ctx context.Context, email, password string) (*model.TokensPair, error)
	Refresh(ctx context.Context, rawRefreshToken string) (*model.TokensPair, error)
	Logout(ctx context.Context, rawRefreshToken string) error
}
