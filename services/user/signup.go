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

// Signup creates a new identity. The userId must be unused across both roles.
func (s *DefaultUserService) Signup(ctx context.Context, creds models.UserCredentials) (*models.User, error) {
	if creds.UserID == "" || creds.Password == "" || creds.Role == "" {
		return nil, utils.InvalidInput("Please provide userId, password, and role")
	}
	if !models.ValidRole(creds.Role) {
		return nil, utils.InvalidInput(`Invalid role. Role must be either "student" or "professor".`)
	}

	if _, err := s.Repo.GetByUserID(ctx, creds.UserID); err == nil {
		return nil, utils.Conflict("User already exists")
	} else if !errors.Is(err, database.ErrNotFound) {
		return nil, utils.Internal(err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		s.Logger.Error("Signup: failed to hash password", zap.Error(err))
		return nil, utils.Internal(err)
	}

	u := &models.User{
		UserID:       creds.UserID,
		Role:         creds.Role,
		PasswordHash: string(hashed),
		CreatedAt:    time.Now(),
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, utils.Conflict("User already exists")
		}
		return nil, utils.Internal(err)
	}
	return u, nil
}
