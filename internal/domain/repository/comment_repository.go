package repository

import (
	"context"

	"codecircle/internal/domain/entity"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]*entity.Comment, error)
	CountByPost(ctx context.Context, postID string) (int64, error)
}

type ReportRepository interface {
	Create(ctx context.Context, report *entity.CommentReport) error
	List(ctx context.Context, limit, offset int) ([]*entity.CommentReport, int64, error)
	DeleteByReporter(ctx context.Context, reporterEmail string) error
}
