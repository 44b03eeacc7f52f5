package handler

import (
	"github.com/labstack/echo/v4"

	"codecircle/internal/adapter/api/middleware"
	"codecircle/internal/usecase"
	"codecircle/pkg/response"
	"codecircle/pkg/utils"
)

type NotificationHandler struct {
	notificationUseCase *usecase.NotificationUseCase
}

func NewNotificationHandler(notificationUseCase *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
	}
}

// FetchMailbox returns the active mailbox. Fetching counts as reading: every
// entry is marked read once the list is served.
func (h *NotificationHandler) FetchMailbox(c echo.Context) error {
	notifications, err := h.notificationUseCase.FetchMailbox(c.Request().Context(), middleware.EmailFromContext(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, notifications)
}

func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	if err := h.notificationUseCase.MarkAllRead(c.Request().Context(), middleware.EmailFromContext(c)); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]bool{
		"read": true,
	})
}

func (h *NotificationHandler) ArchiveAll(c echo.Context) error {
	if err := h.notificationUseCase.ArchiveAll(c.Request().Context(), middleware.EmailFromContext(c)); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]bool{
		"archived": true,
	})
}

func (h *NotificationHandler) ListArchive(c echo.Context) error {
	params := utils.GetPaginationParams(c, 10)

	notifications, total, err := h.notificationUseCase.ListArchive(c.Request().Context(), middleware.EmailFromContext(c), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, notifications, total, params.Page, params.PageSize)
}

func (h *NotificationHandler) DeleteArchived(c echo.Context) error {
	if err := h.notificationUseCase.DeleteArchived(c.Request().Context(), middleware.EmailFromContext(c), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]bool{
		"deleted": true,
	})
}
