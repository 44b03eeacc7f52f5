package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"codecircle/internal/domain/entity"
	"codecircle/internal/domain/repository"
	"codecircle/pkg/errors"

	"github.com/google/uuid"
)

type firestoreNotificationRepository struct {
	client *firestore.Client
}

func NewFirestoreNotificationRepository(client *firestore.Client) repository.NotificationRepository {
	return &firestoreNotificationRepository{
		client: client,
	}
}

func (r *firestoreNotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("notifications").Doc(notification.ID).Set(ctx, notification)
	if err != nil {
		return errors.Internal("Failed to create notification", err)
	}

	return nil
}

func (r *firestoreNotificationRepository) ListActive(ctx context.Context, userEmail string) ([]*entity.Notification, error) {
	query := r.client.Collection("notifications").Where("userEmail", "==", userEmail).OrderBy("createdAt", firestore.Desc)
	iter := query.Documents(ctx)

	var notifications []*entity.Notification
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list notifications", err)
		}

		var notification entity.Notification
		if err := doc.DataTo(&notification); err != nil {
			return nil, errors.Internal("Failed to parse notification data", err)
		}
		notifications = append(notifications, &notification)
	}

	return notifications, nil
}

func (r *firestoreNotificationRepository) MarkAllRead(ctx context.Context, userEmail string) error {
	docs, err := r.client.Collection("notifications").Where("userEmail", "==", userEmail).Where("isRead", "==", false).Documents(ctx).GetAll()
	if err != nil {
		return errors.Internal("Failed to query unread notifications", err)
	}

	for _, doc := range docs {
		_, err := doc.Ref.Set(ctx, map[string]interface{}{"isRead": true}, firestore.MergeAll)
		if err != nil {
			return errors.Internal("Failed to mark notification read", err)
		}
	}

	return nil
}

func (r *firestoreNotificationRepository) ArchiveAll(ctx context.Context, userEmail string) error {
	docs, err := r.client.Collection("notifications").Where("userEmail", "==", userEmail).Documents(ctx).GetAll()
	if err != nil {
		return errors.Internal("Failed to query notifications for archive", err)
	}

	for _, doc := range docs {
		var notification entity.Notification
		if err := doc.DataTo(&notification); err != nil {
			return errors.Internal("Failed to parse notification data", err)
		}

		if _, err := r.client.Collection("notificationArchive").Doc(notification.ID).Set(ctx, &notification); err != nil {
			return errors.Internal("Failed to archive notification", err)
		}
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return errors.Internal("Failed to remove active notification", err)
		}
	}

	return nil
}

func (r *firestoreNotificationRepository) ListArchive(ctx context.Context, userEmail string, limit, offset int) ([]*entity.Notification, int64, error) {
	// No explicit ordering here: the archive page shows whatever order the
	// store returns.
	query := r.client.Collection("notificationArchive").Where("userEmail", "==", userEmail)

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count archived notifications", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var notifications []*entity.Notification

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to list archived notifications", err)
		}

		var notification entity.Notification
		if err := doc.DataTo(&notification); err != nil {
			return nil, 0, errors.Internal("Failed to parse notification data", err)
		}
		notifications = append(notifications, &notification)
	}

	return notifications, total, nil
}

func (r *firestoreNotificationRepository) DeleteArchived(ctx context.Context, userEmail, id string) error {
	doc := r.client.Collection("notificationArchive").Doc(id)
	snap, err := doc.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Notification", err)
		}
		return errors.Internal("Failed to get archived notification", err)
	}

	var notification entity.Notification
	if err := snap.DataTo(&notification); err != nil {
		return errors.Internal("Failed to parse notification data", err)
	}
	if notification.UserEmail != userEmail {
		return errors.Forbidden("You can only delete your own notifications", nil)
	}

	if _, err := doc.Delete(ctx); err != nil {
		return errors.Internal("Failed to delete archived notification", err)
	}

	return nil
}
