package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"codecircle/internal/domain/entity"
	"codecircle/internal/domain/repository"
	"codecircle/pkg/errors"
)

type TagUseCase struct {
	tagRepo repository.TagRepository
}

func NewTagUseCase(tagRepo repository.TagRepository) *TagUseCase {
	return &TagUseCase{tagRepo: tagRepo}
}

func (uc *TagUseCase) CreateTag(ctx context.Context, name string) (*entity.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.EmptyInput("Tag name cannot be empty")
	}

	if existing, err := uc.tagRepo.GetByName(ctx, name); err == nil && existing != nil {
		return nil, errors.Conflict("Tag already exists")
	}

	tag := &entity.Tag{
		ID:  uuid.New().String(),
		Tag: name,
	}
	if err := uc.tagRepo.Create(ctx, tag); err != nil {
		return nil, errors.Internal("Failed to create tag", err)
	}

	return tag, nil
}

func (uc *TagUseCase) ListTags(ctx context.Context) ([]*entity.Tag, error) {
	return uc.tagRepo.List(ctx)
}
