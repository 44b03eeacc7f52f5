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

type CommentUseCase struct {
	commentRepo repository.CommentRepository
	reportRepo  repository.ReportRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

func NewCommentUseCase(
	commentRepo repository.CommentRepository,
	reportRepo repository.ReportRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) *CommentUseCase {
	return &CommentUseCase{
		commentRepo: commentRepo,
		reportRepo:  reportRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

type AddCommentInput struct {
	PostID      string `json:"postId" validate:"required"`
	CommentText string `json:"commentText"`
}

func (uc *CommentUseCase) AddComment(ctx context.Context, commenterEmail string, input AddCommentInput) (*entity.Comment, error) {
	if commenterEmail == "" {
		return nil, errors.Unauthorized("Sign in to comment", nil)
	}
	if strings.TrimSpace(input.CommentText) == "" {
		return nil, errors.EmptyInput("Comment text cannot be empty")
	}

	commenter, err := uc.userRepo.GetByEmail(ctx, commenterEmail)
	if err != nil {
		return nil, errors.Unauthorized("Unknown account", err)
	}
	if commenter.Suspended(time.Now()) {
		return nil, errors.Forbidden("Your account is suspended", nil)
	}

	if _, err := uc.postRepo.GetByID(ctx, input.PostID); err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		ID:             uuid.New().String(),
		PostID:         input.PostID,
		CommenterEmail: commenterEmail,
		CommentText:    input.CommentText,
		CreatedAt:      time.Now(),
	}

	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		return nil, errors.Internal("Failed to create comment", err)
	}

	return comment, nil
}

func (uc *CommentUseCase) ListByPost(ctx context.Context, postID string) ([]*entity.Comment, error) {
	return uc.commentRepo.ListByPost(ctx, postID)
}

type ReportCommentInput struct {
	PostID         string `json:"postId" validate:"required"`
	CommentID      string `json:"commentId" validate:"required"`
	CommentText    string `json:"commentText"`
	CommenterEmail string `json:"commenterEmail"`
	Feedback       string `json:"feedback"`
}

// ReportComment files a complaint with one of the fixed feedback options.
// The comment text is snapshotted into the report so moderators still see it
// if the comment later disappears.
func (uc *CommentUseCase) ReportComment(ctx context.Context, reporterEmail string, input ReportCommentInput) (*entity.CommentReport, error) {
	if reporterEmail == "" {
		return nil, errors.Unauthorized("Sign in to report", nil)
	}
	if !entity.ValidReportFeedback(input.Feedback) {
		return nil, errors.MissingFeedback("Select a feedback option before reporting")
	}

	report := &entity.CommentReport{
		ID:             uuid.New().String(),
		PostID:         input.PostID,
		CommentID:      input.CommentID,
		CommentText:    input.CommentText,
		CommenterEmail: input.CommenterEmail,
		ReportedBy:     reporterEmail,
		Feedback:       input.Feedback,
		ReportedAt:     time.Now(),
	}

	if report.CommentText == "" {
		if comment, err := uc.commentRepo.GetByID(ctx, input.CommentID); err == nil {
			report.CommentText = comment.CommentText
			if report.CommenterEmail == "" {
				report.CommenterEmail = comment.CommenterEmail
			}
		}
	}

	if err := uc.reportRepo.Create(ctx, report); err != nil {
		return nil, errors.Internal("Failed to file report", err)
	}

	return report, nil
}

// ListReports returns reports newest-first for the admin dashboard.
func (uc *CommentUseCase) ListReports(ctx context.Context, limit, offset int) ([]*entity.CommentReport, int64, error) {
	return uc.reportRepo.List(ctx, limit, offset)
}
