package usecase

import (
	"context"
	"time"

	"codecircle/internal/domain/entity"
	"codecircle/internal/domain/repository"
	"codecircle/pkg/errors"
)

type UserUseCase struct {
	userRepo   repository.UserRepository
	adminEmail string
}

func NewUserUseCase(userRepo repository.UserRepository, adminEmail string) *UserUseCase {
	return &UserUseCase{
		userRepo:   userRepo,
		adminEmail: adminEmail,
	}
}

type UpdateUserInput struct {
	FullName string `json:"fullName"`
	PhotoURL string `json:"photoURL"`
	Role     string `json:"role"`
}

func (uc *UserUseCase) GetUser(ctx context.Context, id string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

// UpdateUser applies a profile edit. Profile fields may be changed by the
// owner or an admin; the role field only by an admin, and the reserved admin
// account can never be demoted.
func (uc *UserUseCase) UpdateUser(ctx context.Context, id string, requester *entity.User, input UpdateUserInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	isAdmin := requester.Role == entity.RoleAdmin
	isOwner := requester.Email == user.Email

	if !isAdmin && !isOwner {
		return nil, errors.Forbidden("You don't have permission to edit this user", nil)
	}

	if input.Role != "" && input.Role != user.Role {
		if !isAdmin {
			return nil, errors.Forbidden("Only admins can change roles", nil)
		}
		if input.Role != entity.RoleUser && input.Role != entity.RoleAdmin {
			return nil, errors.Validation("Unknown role")
		}
		if user.Email == uc.adminEmail && input.Role != entity.RoleAdmin {
			return nil, errors.Forbidden("The reserved admin account cannot be demoted", nil)
		}
		user.Role = input.Role
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.PhotoURL != "" {
		user.PhotoURL = input.PhotoURL
	}
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Internal("Failed to update user", err)
	}

	return user, nil
}

func (uc *UserUseCase) ListUsers(ctx context.Context, limit, offset int) ([]*entity.User, int64, error) {
	return uc.userRepo.List(ctx, limit, offset)
}
