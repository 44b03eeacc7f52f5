package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"codecircle/internal/domain/entity"
	"codecircle/internal/domain/repository"
	"codecircle/pkg/errors"

	"github.com/google/uuid"
)

type firestoreTagRepository struct {
	client *firestore.Client
}

func NewFirestoreTagRepository(client *firestore.Client) repository.TagRepository {
	return &firestoreTagRepository{
		client: client,
	}
}

func (r *firestoreTagRepository) Create(ctx context.Context, tag *entity.Tag) error {
	if tag.ID == "" {
		tag.ID = uuid.New().String()
	}

	_, err := r.client.Collection("tags").Doc(tag.ID).Set(ctx, tag)
	if err != nil {
		return errors.Internal("Failed to create tag", err)
	}

	return nil
}

func (r *firestoreTagRepository) GetByName(ctx context.Context, name string) (*entity.Tag, error) {
	query := r.client.Collection("tags").Where("tag", "==", name).Limit(1)
	iter := query.Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Tag", nil)
		}
		return nil, errors.Internal("Failed to query tag", err)
	}

	var tag entity.Tag
	if err := doc.DataTo(&tag); err != nil {
		return nil, errors.Internal("Failed to parse tag data", err)
	}

	return &tag, nil
}

func (r *firestoreTagRepository) List(ctx context.Context) ([]*entity.Tag, error) {
	iter := r.client.Collection("tags").OrderBy("tag", firestore.Asc).Documents(ctx)

	var tags []*entity.Tag
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list tags", err)
		}

		var tag entity.Tag
		if err := doc.DataTo(&tag); err != nil {
			return nil, errors.Internal("Failed to parse tag data", err)
		}
		tags = append(tags, &tag)
	}

	return tags, nil
}
