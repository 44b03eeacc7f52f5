package repository

import (
	"context"

	"codecircle/internal/domain/entity"
)

type TagRepository interface {
	Create(ctx context.Context, tag *entity.Tag) error
	GetByName(ctx context.Context, name string) (*entity.Tag, error)
	List(ctx context.Context) ([]*entity.Tag, error)
}

type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *entity.Announcement) error
	List(ctx context.Context) ([]*entity.Announcement, error)
}

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	List(ctx context.Context) ([]*entity.Message, error)
}
