package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"codecircle/internal/domain/entity"
	"codecircle/internal/domain/repository"
	"codecircle/pkg/errors"
	"codecircle/pkg/logger"
)

// SnoozeDuration is how long a snoozed account stays suspended.
const SnoozeDuration = 10 * 24 * time.Hour

// WarningMessage is the mailbox text delivered with an admin warning.
const WarningMessage = "You received a warning due to inappropriate comment."

type ModerationUseCase struct {
	userRepo         repository.UserRepository
	reportRepo       repository.ReportRepository
	notificationRepo repository.NotificationRepository
	identity         IdentityProvider
}

func NewModerationUseCase(
	userRepo repository.UserRepository,
	reportRepo repository.ReportRepository,
	notificationRepo repository.NotificationRepository,
	identity IdentityProvider,
) *ModerationUseCase {
	return &ModerationUseCase{
		userRepo:         userRepo,
		reportRepo:       reportRepo,
		notificationRepo: notificationRepo,
		identity:         identity,
	}
}

// GiveWarning drops a warning notification into the target's mailbox.
// Warnings stack; each report acted on produces its own entry.
func (uc *ModerationUseCase) GiveWarning(ctx context.Context, targetEmail string) (*entity.Notification, error) {
	if targetEmail == "" {
		return nil, errors.Validation("Target email is required")
	}

	notification := &entity.Notification{
		ID:        uuid.New().String(),
		UserEmail: targetEmail,
		Type:      entity.NotificationTypeWarning,
		Message:   WarningMessage,
		IsRead:    false,
		CreatedAt: time.Now(),
	}

	if err := uc.notificationRepo.Create(ctx, notification); err != nil {
		logger.ModerationAction("warning", targetEmail, err)
		return nil, errors.Internal("Failed to deliver warning", err)
	}

	logger.ModerationAction("warning", targetEmail, nil)
	return notification, nil
}

// SnoozeAccount suspends the target for the snooze window, measured from now.
// Snoozing an already-snoozed account restarts the window instead of
// extending it.
func (uc *ModerationUseCase) SnoozeAccount(ctx context.Context, targetEmail string) (*entity.User, error) {
	user, err := uc.userRepo.GetByEmail(ctx, targetEmail)
	if err != nil {
		return nil, err
	}

	until := time.Now().Add(SnoozeDuration)
	user.SnoozeUntil = &until
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		logger.ModerationAction("snooze", targetEmail, err)
		return nil, errors.Internal("Failed to snooze account", err)
	}

	logger.ModerationAction("snooze", targetEmail, nil)
	return user, nil
}

// DeleteAccount removes the target's provider account, their profile record,
// and every report they themselves filed. Their posts and comments stay, and
// so do reports other users filed against them.
func (uc *ModerationUseCase) DeleteAccount(ctx context.Context, targetEmail string) error {
	user, err := uc.userRepo.GetByEmail(ctx, targetEmail)
	if err != nil {
		return err
	}

	if user.UID != "" {
		if err := uc.identity.DeleteUser(ctx, user.UID); err != nil {
			// The provider record may already be gone; the app-side
			// cleanup still has to happen.
			logger.Warn("Provider account delete failed for %s: %v", targetEmail, err)
		}
	}

	if err := uc.userRepo.DeleteByEmail(ctx, targetEmail); err != nil {
		logger.ModerationAction("delete", targetEmail, err)
		return errors.Internal("Failed to delete user record", err)
	}

	if err := uc.reportRepo.DeleteByReporter(ctx, targetEmail); err != nil {
		logger.ModerationAction("delete", targetEmail, err)
		return errors.Internal("Failed to purge reports", err)
	}

	logger.ModerationAction("delete", targetEmail, nil)
	return nil
}
