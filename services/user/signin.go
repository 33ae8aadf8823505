package user

import (
	"context"
	"errors"
	"time"

	"slotbook/database"
	"slotbook/models"
	"slotbook/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const invalidCredentials = "Invalid credentials or role"

// Login checks the password of the (userId, role) pair and issues a token.
func (s *DefaultUserService) Login(ctx context.Context, creds models.UserCredentials) (*models.AuthResponse, error) {
	if creds.UserID == "" || creds.Password == "" || creds.Role == "" {
		return nil, utils.InvalidInput("Please provide userId, password, and role")
	}

	u, err := s.Repo.GetByUserIDAndRole(ctx, creds.UserID, creds.Role)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, utils.Unauthenticated(invalidCredentials)
		}
		s.Logger.Error("Login: failed to fetch user", zap.Error(err))
		return nil, utils.Internal(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, utils.Unauthenticated(invalidCredentials)
	}

	token, err := s.Tokens.GenerateToken(u.UserID, u.Role)
	if err != nil {
		s.Logger.Error("Login: failed to generate token", zap.Error(err))
		return nil, utils.Internal(err)
	}
	return &models.AuthResponse{
		UserID:    u.UserID,
		Role:      u.Role,
		Token:     token,
		ExpiresAt: time.Now().Add(s.Tokens.TTL()),
	}, nil
}
