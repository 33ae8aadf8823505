package user

import (
	"context"
	"time"

	userRepo "slotbook/database/repository/user"
	"slotbook/models"
	"slotbook/utils"

	"go.uber.org/zap"
)

type UserService interface {
	Signup(ctx context.Context, creds models.UserCredentials) (*models.User, error)
	Login(ctx context.Context, creds models.UserCredentials) (*models.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*Identity, error)
}

// Identity is the verified caller resolved from a token.
type Identity struct {
	UserID    string
	Role      string
	ExpiresAt time.Time
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo        userRepo.UserRepository
	Tokens      *utils.TokenManager
	Revocations utils.RevocationStore
	Logger      *zap.Logger
}

func NewDefaultUserService(repo userRepo.UserRepository, tokens *utils.TokenManager, revocations utils.RevocationStore, logger *zap.Logger) *DefaultUserService {
	if revocations == nil {
		revocations = utils.NopRevocationStore{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultUserService{Repo: repo, Tokens: tokens, Revocations: revocations, Logger: logger}
}
