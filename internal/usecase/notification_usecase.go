package usecase

import (
	"context"

	"codecircle/internal/domain/entity"
	"codecircle/internal/domain/repository"
	"codecircle/pkg/errors"
	"codecircle/pkg/logger"
)

type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationUseCase(notificationRepo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
	}
}

// FetchMailbox returns the active mailbox and then marks everything in it as
// read. The response still carries the pre-fetch read flags so the client can
// render the unread highlights once.
func (uc *NotificationUseCase) FetchMailbox(ctx context.Context, userEmail string) ([]*entity.Notification, error) {
	if userEmail == "" {
		return nil, errors.Unauthorized("Sign in to read notifications", nil)
	}

	notifications, err := uc.notificationRepo.ListActive(ctx, userEmail)
	if err != nil {
		return nil, errors.Internal("Failed to load mailbox", err)
	}

	unread := false
	for _, n := range notifications {
		if !n.IsRead {
			unread = true
			break
		}
	}
	if unread {
		if err := uc.notificationRepo.MarkAllRead(ctx, userEmail); err != nil {
			logger.Warn("Failed to mark mailbox read for %s: %v", userEmail, err)
		}
	}

	return notifications, nil
}

// MarkAllRead flips every active notification to read without serving them.
func (uc *NotificationUseCase) MarkAllRead(ctx context.Context, userEmail string) error {
	if userEmail == "" {
		return errors.Unauthorized("Sign in to update notifications", nil)
	}
	if err := uc.notificationRepo.MarkAllRead(ctx, userEmail); err != nil {
		return errors.Internal("Failed to mark notifications read", err)
	}
	return nil
}

// ArchiveAll clears the active mailbox into the archive.
func (uc *NotificationUseCase) ArchiveAll(ctx context.Context, userEmail string) error {
	if userEmail == "" {
		return errors.Unauthorized("Sign in to archive notifications", nil)
	}
	if err := uc.notificationRepo.ArchiveAll(ctx, userEmail); err != nil {
		return errors.Internal("Failed to archive notifications", err)
	}
	return nil
}

func (uc *NotificationUseCase) ListArchive(ctx context.Context, userEmail string, limit, offset int) ([]*entity.Notification, int64, error) {
	if userEmail == "" {
		return nil, 0, errors.Unauthorized("Sign in to read the archive", nil)
	}
	return uc.notificationRepo.ListArchive(ctx, userEmail, limit, offset)
}

func (uc *NotificationUseCase) DeleteArchived(ctx context.Context, userEmail, id string) error {
	if userEmail == "" {
		return errors.Unauthorized("Sign in to manage the archive", nil)
	}
	return uc.notificationRepo.DeleteArchived(ctx, userEmail, id)
}
