package handler

import (
	"github.com/labstack/echo/v4"

	"codecircle/internal/adapter/api/middleware"
	"codecircle/internal/domain/repository"
	"codecircle/internal/usecase"
	"codecircle/pkg/response"
	"codecircle/pkg/utils"
)

type PostHandler struct {
	postUseCase *usecase.PostUseCase
}

func NewPostHandler(postUseCase *usecase.PostUseCase) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
	}
}

type createPostRequest struct {
	AuthorName  string `json:"authorName"`
	AuthorImage string `json:"authorImage" validate:"omitempty,url"`
	PostTitle   string `json:"postTitle" validate:"required"`
	Description string `json:"postDescription" validate:"required"`
	Tag         string `json:"tag" validate:"required"`
}

func (h *PostHandler) CreatePost(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	post, err := h.postUseCase.CreatePost(c.Request().Context(), middleware.EmailFromContext(c), usecase.CreatePostInput{
		AuthorName:  req.AuthorName,
		AuthorImage: req.AuthorImage,
		PostTitle:   req.PostTitle,
		Description: req.Description,
		Tag:         req.Tag,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, post)
}

// ListPosts serves the home feed. ?popular=true sorts by vote score,
// ?author= narrows to one author's posts.
func (h *PostHandler) ListPosts(c echo.Context) error {
	defaultSize := 5
	filter := repository.PostFilter{
		AuthorEmail: c.QueryParam("author"),
		Popular:     c.QueryParam("popular") == "true",
	}
	if filter.AuthorEmail != "" {
		defaultSize = 10
	}
	params := utils.GetPaginationParams(c, defaultSize)

	posts, total, err := h.postUseCase.ListPosts(c.Request().Context(), filter, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, posts, total, params.Page, params.PageSize)
}

func (h *PostHandler) SearchPosts(c echo.Context) error {
	params := utils.GetPaginationParams(c, 5)

	posts, total, err := h.postUseCase.SearchPosts(c.Request().Context(), c.QueryParam("q"), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, posts, total, params.Page, params.PageSize)
}

func (h *PostHandler) GetPost(c echo.Context) error {
	post, err := h.postUseCase.GetPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, post)
}

type voteRequest struct {
	VoteType string `json:"voteType" validate:"required,oneof=upvote downvote"`
}

func (h *PostHandler) Vote(c echo.Context) error {
	var req voteRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	post, err := h.postUseCase.Vote(c.Request().Context(), c.Param("id"), middleware.EmailFromContext(c), req.VoteType)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, post)
}

func (h *PostHandler) DeletePost(c echo.Context) error {
	if err := h.postUseCase.DeletePost(c.Request().Context(), c.Param("id"), middleware.EmailFromContext(c)); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{
		"deleted": true,
	})
}

func (h *PostHandler) CommentCount(c echo.Context) error {
	count, err := h.postUseCase.CommentCount(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]int64{
		"count": count,
	})
}
