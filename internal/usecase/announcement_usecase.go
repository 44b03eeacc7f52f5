package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"codecircle/internal/domain/entity"
	"codecircle/internal/domain/repository"
	"codecircle/pkg/errors"
)

type AnnouncementUseCase struct {
	announcementRepo repository.AnnouncementRepository
}

func NewAnnouncementUseCase(announcementRepo repository.AnnouncementRepository) *AnnouncementUseCase {
	return &AnnouncementUseCase{announcementRepo: announcementRepo}
}

type CreateAnnouncementInput struct {
	AuthorName  string `json:"authorName"`
	AuthorImage string `json:"authorImage"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

func (uc *AnnouncementUseCase) CreateAnnouncement(ctx context.Context, input CreateAnnouncementInput) (*entity.Announcement, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, errors.Validation("Title and description are required")
	}

	announcement := &entity.Announcement{
		ID:          uuid.New().String(),
		AuthorName:  input.AuthorName,
		AuthorImage: input.AuthorImage,
		Title:       input.Title,
		Description: input.Description,
		CreatedAt:   time.Now(),
	}

	if err := uc.announcementRepo.Create(ctx, announcement); err != nil {
		return nil, errors.Internal("Failed to create announcement", err)
	}

	return announcement, nil
}

func (uc *AnnouncementUseCase) ListAnnouncements(ctx context.Context) ([]*entity.Announcement, error) {
	return uc.announcementRepo.List(ctx)
}
