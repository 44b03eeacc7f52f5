package handler

import (
	"github.com/labstack/echo/v4"

	"codecircle/internal/usecase"
	"codecircle/pkg/response"
)

type AnnouncementHandler struct {
	announcementUseCase *usecase.AnnouncementUseCase
}

func NewAnnouncementHandler(announcementUseCase *usecase.AnnouncementUseCase) *AnnouncementHandler {
	return &AnnouncementHandler{
		announcementUseCase: announcementUseCase,
	}
}

type createAnnouncementRequest struct {
	AuthorName  string `json:"authorName"`
	AuthorImage string `json:"authorImage" validate:"omitempty,url"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

func (h *AnnouncementHandler) CreateAnnouncement(c echo.Context) error {
	var req createAnnouncementRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	announcement, err := h.announcementUseCase.CreateAnnouncement(c.Request().Context(), usecase.CreateAnnouncementInput{
		AuthorName:  req.AuthorName,
		AuthorImage: req.AuthorImage,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, announcement)
}

func (h *AnnouncementHandler) ListAnnouncements(c echo.Context) error {
	announcements, err := h.announcementUseCase.ListAnnouncements(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, announcements)
}
