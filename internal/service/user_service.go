package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lockwoodcarter/agency-api/internal/models"
	"github.com/lockwoodcarter/agency-api/internal/repository"
)

type UserService interface {
	GetUserInfo(ctx context.Context, id int64) (*models.User, error)
	SetRole(ctx context.Context, callerRole string, userID int64, role string) error
}

type userService struct {
	u repository.UserRepository
}

func NewUserService(u repository.UserRepository) UserService {
	return &userService{u: u}
}

func (s *userService) GetUserInfo(ctx context.Context, id int64) (*models.User, error) {
	user, exists, err := s.u.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting user info: %w", err)
	}
	if !exists {
		err = errors.New("user not found")
		slog.Info(err.Error())
		return nil, err
	}
	return user, nil
}

// SetRole changes another user's role. Only owners and admins may do this.
func (s *userService) SetRole(ctx context.Context, callerRole string, userID int64, role string) error {
	if !models.CanApprove(callerRole) {
		return fmt.Errorf("%w: role %s cannot manage users", ErrForbidden, callerRole)
	}
	switch role {
	case models.RoleOwner, models.RoleAdmin, models.RolePropertyAdvisor, models.RoleClient:
	default:
		return fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}

	user, exists, err := s.u.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return repository.ErrNotFound
	}

	user.Role = role
	return s.u.Update(ctx, user)
}
