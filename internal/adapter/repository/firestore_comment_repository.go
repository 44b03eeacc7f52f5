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

type firestoreCommentRepository struct {
	client *firestore.Client
}

func NewFirestoreCommentRepository(client *firestore.Client) repository.CommentRepository {
	return &firestoreCommentRepository{
		client: client,
	}
}

func (r *firestoreCommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("comments").Doc(comment.ID).Set(ctx, comment)
	if err != nil {
		return errors.Internal("Failed to create comment", err)
	}

	return nil
}

func (r *firestoreCommentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	doc, err := r.client.Collection("comments").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Comment", err)
		}
		return nil, errors.Internal("Failed to get comment", err)
	}

	var comment entity.Comment
	if err := doc.DataTo(&comment); err != nil {
		return nil, errors.Internal("Failed to parse comment data", err)
	}

	return &comment, nil
}

func (r *firestoreCommentRepository) ListByPost(ctx context.Context, postID string) ([]*entity.Comment, error) {
	query := r.client.Collection("comments").Where("postId", "==", postID).OrderBy("createdAt", firestore.Asc)
	iter := query.Documents(ctx)

	var comments []*entity.Comment
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list comments", err)
		}

		var comment entity.Comment
		if err := doc.DataTo(&comment); err != nil {
			return nil, errors.Internal("Failed to parse comment data", err)
		}
		comments = append(comments, &comment)
	}

	return comments, nil
}

func (r *firestoreCommentRepository) CountByPost(ctx context.Context, postID string) (int64, error) {
	docs, err := r.client.Collection("comments").Where("postId", "==", postID).Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count comments", err)
	}

	return int64(len(docs)), nil
}
