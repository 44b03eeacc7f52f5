package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"codecircle/internal/domain/entity"
	"codecircle/internal/domain/repository"
	"codecircle/pkg/errors"

	"github.com/google/uuid"
)

type firestoreAnnouncementRepository struct {
	client *firestore.Client
}

func NewFirestoreAnnouncementRepository(client *firestore.Client) repository.AnnouncementRepository {
	return &firestoreAnnouncementRepository{
		client: client,
	}
}

func (r *firestoreAnnouncementRepository) Create(ctx context.Context, announcement *entity.Announcement) error {
	if announcement.ID == "" {
		announcement.ID = uuid.New().String()
	}
	if announcement.CreatedAt.IsZero() {
		announcement.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("announcements").Doc(announcement.ID).Set(ctx, announcement)
	if err != nil {
		return errors.Internal("Failed to create announcement", err)
	}

	return nil
}

func (r *firestoreAnnouncementRepository) List(ctx context.Context) ([]*entity.Announcement, error) {
	iter := r.client.Collection("announcements").OrderBy("createdAt", firestore.Desc).Documents(ctx)

	var announcements []*entity.Announcement
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list announcements", err)
		}

		var announcement entity.Announcement
		if err := doc.DataTo(&announcement); err != nil {
			return nil, errors.Internal("Failed to parse announcement data", err)
		}
		announcements = append(announcements, &announcement)
	}

	return announcements, nil
}
