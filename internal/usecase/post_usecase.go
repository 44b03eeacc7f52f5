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

// FreePostLimit is how many posts a Bronze member may create before being
// asked to upgrade.
const FreePostLimit = 5

const (
	VoteUp   = "upvote"
	VoteDown = "downvote"
)

type PostUseCase struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository
}

func NewPostUseCase(postRepo repository.PostRepository, commentRepo repository.CommentRepository, userRepo repository.UserRepository) *PostUseCase {
	return &PostUseCase{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
	}
}

type CreatePostInput struct {
	AuthorName  string `json:"authorName"`
	AuthorImage string `json:"authorImage"`
	PostTitle   string `json:"postTitle" validate:"required"`
	Description string `json:"postDescription" validate:"required"`
	Tag         string `json:"tag" validate:"required"`
}

func (uc *PostUseCase) CreatePost(ctx context.Context, authorEmail string, input CreatePostInput) (*entity.Post, error) {
	author, err := uc.userRepo.GetByEmail(ctx, authorEmail)
	if err != nil {
		return nil, errors.Unauthorized("Unknown author", err)
	}

	if author.Suspended(time.Now()) {
		return nil, errors.Forbidden("Your account is suspended", nil)
	}

	if strings.TrimSpace(input.PostTitle) == "" ||
		strings.TrimSpace(input.Description) == "" ||
		strings.TrimSpace(input.Tag) == "" {
		return nil, errors.Validation("Title, description and tag are required")
	}

	if author.Badge == entity.BadgeBronze {
		count, err := uc.postRepo.CountByAuthor(ctx, authorEmail)
		if err != nil {
			return nil, errors.Internal("Failed to count posts", err)
		}
		if count >= FreePostLimit {
			return nil, errors.QuotaExceeded("Free members can create up to 5 posts. Become a member to post more.")
		}
	}

	post := &entity.Post{
		ID:              uuid.New().String(),
		AuthorEmail:     author.Email,
		AuthorName:      input.AuthorName,
		AuthorImage:     input.AuthorImage,
		PostTitle:       input.PostTitle,
		PostDescription: input.Description,
		Tag:             input.Tag,
		UpVote:          0,
		DownVote:        0,
		CreatedAt:       time.Now(),
	}
	if post.AuthorName == "" {
		post.AuthorName = author.FullName
	}
	if post.AuthorImage == "" {
		post.AuthorImage = author.PhotoURL
	}

	if err := uc.postRepo.Create(ctx, post); err != nil {
		return nil, errors.Internal("Failed to create post", err)
	}

	return post, nil
}

func (uc *PostUseCase) GetPost(ctx context.Context, id string) (*entity.Post, error) {
	return uc.postRepo.GetByID(ctx, id)
}

func (uc *PostUseCase) ListPosts(ctx context.Context, filter repository.PostFilter, limit, offset int) ([]*entity.Post, int64, error) {
	return uc.postRepo.List(ctx, filter, limit, offset)
}

func (uc *PostUseCase) SearchPosts(ctx context.Context, query string, limit, offset int) ([]*entity.Post, int64, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return uc.postRepo.List(ctx, repository.PostFilter{}, limit, offset)
	}
	return uc.postRepo.Search(ctx, query, limit, offset)
}

// Vote bumps the matching counter by one. Counters only ever grow, and the
// update is a plain read-modify-write, so two simultaneous votes can land as
// one; the feed tolerates an approximate score.
func (uc *PostUseCase) Vote(ctx context.Context, postID, voterEmail, voteType string) (*entity.Post, error) {
	if voterEmail == "" {
		return nil, errors.Unauthorized("Sign in to vote", nil)
	}
	if voteType != VoteUp && voteType != VoteDown {
		return nil, errors.Validation("Vote type must be upvote or downvote")
	}

	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	switch voteType {
	case VoteUp:
		post.UpVote++
	case VoteDown:
		post.DownVote++
	}

	if err := uc.postRepo.Update(ctx, post); err != nil {
		return nil, errors.Internal("Failed to record vote", err)
	}

	return post, nil
}

// DeletePost removes the author's own post. Comments under it are left in
// place; the comment listing is keyed by post id, so they simply become
// unreachable from the UI.
func (uc *PostUseCase) DeletePost(ctx context.Context, postID, requesterEmail string) error {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.AuthorEmail != requesterEmail {
		return errors.Forbidden("You can only delete your own posts", nil)
	}

	return uc.postRepo.Delete(ctx, postID)
}

func (uc *PostUseCase) CommentCount(ctx context.Context, postID string) (int64, error) {
	return uc.commentRepo.CountByPost(ctx, postID)
}
