package handler

import (
	"github.com/labstack/echo/v4"

	"codecircle/internal/adapter/api/middleware"
	"codecircle/internal/usecase"
	"codecircle/pkg/response"
)

type CommentHandler struct {
	commentUseCase *usecase.CommentUseCase
}

func NewCommentHandler(commentUseCase *usecase.CommentUseCase) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
	}
}

type addCommentRequest struct {
	PostID      string `json:"postId" validate:"required"`
	CommentText string `json:"commentText"`
}

func (h *CommentHandler) AddComment(c echo.Context) error {
	var req addCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	comment, err := h.commentUseCase.AddComment(c.Request().Context(), middleware.EmailFromContext(c), usecase.AddCommentInput{
		PostID:      req.PostID,
		CommentText: req.CommentText,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, comment)
}

func (h *CommentHandler) ListByPost(c echo.Context) error {
	comments, err := h.commentUseCase.ListByPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, comments)
}

type reportCommentRequest struct {
	PostID         string `json:"postId" validate:"required"`
	CommentID      string `json:"commentId" validate:"required"`
	CommentText    string `json:"commentText"`
	CommenterEmail string `json:"commenterEmail" validate:"omitempty,email"`
	Feedback       string `json:"feedback"`
}

func (h *CommentHandler) ReportComment(c echo.Context) error {
	var req reportCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	report, err := h.commentUseCase.ReportComment(c.Request().Context(), middleware.EmailFromContext(c), usecase.ReportCommentInput{
		PostID:         req.PostID,
		CommentID:      req.CommentID,
		CommentText:    req.CommentText,
		CommenterEmail: req.CommenterEmail,
		Feedback:       req.Feedback,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, report)
}
