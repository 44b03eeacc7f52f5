package repository

import (
	"context"

	"codecircle/internal/domain/entity"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	ListActive(ctx context.Context, userEmail string) ([]*entity.Notification, error)
	MarkAllRead(ctx context.Context, userEmail string) error

	// ArchiveAll moves every active notification for the user into the
	// archive collection.
	ArchiveAll(ctx context.Context, userEmail string) error
	ListArchive(ctx context.Context, userEmail string, limit, offset int) ([]*entity.Notification, int64, error)
	DeleteArchived(ctx context.Context, userEmail, id string) error
}
