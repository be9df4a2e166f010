package service

import (
	"context"
	"fmt"

	"stockroom/internal/auth"
	apperrors "stockroom/internal/errors"
	"stockroom/internal/model"
	"stockroom/internal/repository"
)

// UserUpdate holds the optional fields of a profile update.
// Password is plaintext here and hashed before it is stored.
type UserUpdate struct {
	Name     *string
	Password *string
}

// UserService exposes profile operations.
type UserService interface {
	// UpdateUser applies update to user id on behalf of actorID.
	// A mismatch between actorID and id is ErrForbidden whatever the payload.
	UpdateUser(ctx context.Context, actorID, id uint, update UserUpdate) error
}

type userService struct {
	repo   repository.UserRepository
	hasher auth.PasswordHasher
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository, hasher auth.PasswordHasher) UserService {
	return &userService{repo: repo, hasher: hasher}
}

func (s *userService) UpdateUser(ctx context.Context, actorID, id uint, update UserUpdate) error {
	if actorID != id {
		return apperrors.ErrForbidden
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	patch := model.UserPatch{Name: update.Name}
	if update.Password != nil {
		hashed, err := s.hasher.Hash(*update.Password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		patch.Password = &hashed
	}

	return s.repo.Update(ctx, id, patch)
}
