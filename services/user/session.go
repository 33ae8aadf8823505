package user

import (
	"context"
	"errors"
	"time"

	"slotbook/utils"

	"go.uber.org/zap"
)

// Authenticate verifies the token signature, expiry and revocation state.
// Revocation lookups that fail are logged and treated as not revoked.
func (s *DefaultUserService) Authenticate(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, utils.Unauthenticated("Access denied. No token provided.")
	}
	claims, err := s.Tokens.ValidateToken(token)
	if err != nil {
		if errors.Is(err, utils.ErrTokenExpired) {
			return nil, utils.Unauthenticated("Session expired. Please log in again.")
		}
		return nil, utils.Unauthenticated("Invalid token.")
	}

	revoked, err := s.Revocations.IsRevoked(ctx, token)
	if err != nil {
		s.Logger.Warn("revocation check failed, accepting token", zap.String("userId", claims.Subject), zap.Error(err))
	} else if revoked {
		return nil, utils.Unauthenticated("Session has been revoked.")
	}

	return &Identity{
		UserID:    claims.Subject,
		Role:      claims.Role,
		ExpiresAt: time.Unix(claims.ExpiresAt, 0),
	}, nil
}

// Logout revokes token for the rest of its lifetime.
func (s *DefaultUserService) Logout(ctx context.Context, token string) error {
	identity, err := s.Authenticate(ctx, token)
	if err != nil {
		return err
	}
	if err := s.Revocations.Revoke(ctx, token, time.Until(identity.ExpiresAt)); err != nil {
		return utils.Internal(err)
	}
	return nil
}
