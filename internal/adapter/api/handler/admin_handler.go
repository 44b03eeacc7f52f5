package handler

import (
	"github.com/labstack/echo/v4"

	"codecircle/internal/usecase"
	"codecircle/pkg/response"
	"codecircle/pkg/utils"
)

// AdminHandler covers the moderation actions behind the admin dashboard:
// the report queue and the per-account warning, snooze and delete buttons.
type AdminHandler struct {
	moderationUseCase *usecase.ModerationUseCase
	commentUseCase    *usecase.CommentUseCase
}

func NewAdminHandler(moderationUseCase *usecase.ModerationUseCase, commentUseCase *usecase.CommentUseCase) *AdminHandler {
	return &AdminHandler{
		moderationUseCase: moderationUseCase,
		commentUseCase:    commentUseCase,
	}
}

func (h *AdminHandler) ListReports(c echo.Context) error {
	params := utils.GetPaginationParams(c, 10)

	reports, total, err := h.commentUseCase.ListReports(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, reports, total, params.Page, params.PageSize)
}

type moderationTargetRequest struct {
	UserEmail string `json:"userEmail" validate:"required,email"`
}

func (h *AdminHandler) GiveWarning(c echo.Context) error {
	var req moderationTargetRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	notification, err := h.moderationUseCase.GiveWarning(c.Request().Context(), req.UserEmail)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, notification)
}

func (h *AdminHandler) SnoozeAccount(c echo.Context) error {
	var req moderationTargetRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.moderationUseCase.SnoozeAccount(c.Request().Context(), req.UserEmail)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *AdminHandler) DeleteAccount(c echo.Context) error {
	email := c.Param("email")

	if err := h.moderationUseCase.DeleteAccount(c.Request().Context(), email); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{
		"deleted": true,
	})
}
