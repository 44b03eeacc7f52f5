package repository

import (
	"context"

	"codecircle/internal/domain/entity"
)

// PostFilter narrows List results. Popular switches the sort from recency to
// vote score; AuthorEmail limits to one author's posts.
type PostFilter struct {
	AuthorEmail string
	Popular     bool
}

type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	Update(ctx context.Context, post *entity.Post) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter PostFilter, limit, offset int) ([]*entity.Post, int64, error)
	CountByAuthor(ctx context.Context, authorEmail string) (int, error)
	Search(ctx context.Context, query string, limit, offset int) ([]*entity.Post, int64, error)
}
