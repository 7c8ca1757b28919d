package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"calendarbot/internal/domain"
)

type accessService struct {
	users  domain.UserRepository
	logger *slog.Logger
}

// NewAccessService creates an AccessService backed by the given user
// repository.
func NewAccessService(users domain.UserRepository, logger *slog.Logger) domain.AccessService {
	return &accessService{users: users, logger: logger}
}

func (s *accessService) ResolveRole(ctx context.Context, id domain.UserID) domain.Role {
	u, err := s.users.Get(ctx, id)
	if err == nil {
		return u.Role
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		s.logger.Warn("role lookup failed, defaulting to user", "user_id", id, "error", err)
		return domain.RoleUser
	}
	// First contact: register with the lowest role. Register is idempotent,
	// so a concurrent resolution of the same identity cannot duplicate the
	// entry or change an assigned role.
	newUser := domain.NewUser(id, domain.RoleUser, fmt.Sprintf("user_%d", int64(id)))
	if err := s.users.Register(ctx, newUser); err != nil {
		s.logger.Warn("auto-registration failed", "user_id", id, "error", err)
	}
	return domain.RoleUser
}

func (s *accessService) Authorize(ctx context.Context, id domain.UserID, required domain.Role) bool {
	return s.ResolveRole(ctx, id).Level() >= required.Level()
}
