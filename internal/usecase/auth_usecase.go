package usecase

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"codecircle/internal/domain/entity"
	"codecircle/internal/domain/repository"
	"codecircle/pkg/errors"
)

type AuthUseCase struct {
	userRepo   repository.UserRepository
	identity   IdentityProvider
	jwtSecret  string
	jwtExpiry  time.Duration
	adminEmail string
}

func NewAuthUseCase(userRepo repository.UserRepository, identity IdentityProvider, jwtSecret string, jwtExpirySeconds int64, adminEmail string) *AuthUseCase {
	return &AuthUseCase{
		userRepo:   userRepo,
		identity:   identity,
		jwtSecret:  jwtSecret,
		jwtExpiry:  time.Duration(jwtExpirySeconds) * time.Second,
		adminEmail: adminEmail,
	}
}

type RegisterUserInput struct {
	UID      string `json:"uid"`
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"fullName" validate:"required"`
	PhotoURL string `json:"photoURL"`
}

// RegisterUser upserts the app-side profile after a provider sign-in. Repeat
// sign-ins refresh the display name and photo when the payload carries them,
// but never touch role, badge or snooze state.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, input RegisterUserInput) (*entity.User, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		if input.FullName != "" {
			existing.FullName = input.FullName
		}
		if input.PhotoURL != "" {
			existing.PhotoURL = input.PhotoURL
		}
		if input.UID != "" {
			existing.UID = input.UID
		}
		existing.UpdatedAt = time.Now()

		if err := uc.userRepo.Update(ctx, existing); err != nil {
			return nil, errors.Internal("Failed to refresh user record", err)
		}
		return existing, nil
	}

	role := entity.RoleUser
	if input.Email == uc.adminEmail {
		role = entity.RoleAdmin
	}

	now := time.Now()
	user := &entity.User{
		ID:        uuid.New().String(),
		UID:       input.UID,
		Email:     input.Email,
		FullName:  input.FullName,
		PhotoURL:  input.PhotoURL,
		Role:      role,
		Badge:     entity.BadgeBronze,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Internal("Failed to create user record", err)
	}

	return user, nil
}

// SessionToken mints a short-lived API session token for an email the
// provider vouches for.
func (uc *AuthUseCase) SessionToken(ctx context.Context, email string) (string, error) {
	if email == "" {
		return "", errors.Validation("Email is required")
	}

	if _, err := uc.identity.LookupEmail(ctx, email); err != nil {
		return "", errors.Unauthorized("Unknown account", err)
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(uc.jwtExpiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(uc.jwtSecret))
	if err != nil {
		return "", errors.Internal("Failed to sign session token", err)
	}

	return signed, nil
}

func (uc *AuthUseCase) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return user, nil
}
