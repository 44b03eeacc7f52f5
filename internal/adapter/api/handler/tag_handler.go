package handler

import (
	"github.com/labstack/echo/v4"

	"codecircle/internal/usecase"
	"codecircle/pkg/response"
)

type TagHandler struct {
	tagUseCase *usecase.TagUseCase
}

func NewTagHandler(tagUseCase *usecase.TagUseCase) *TagHandler {
	return &TagHandler{
		tagUseCase: tagUseCase,
	}
}

type createTagRequest struct {
	Tag string `json:"tag" validate:"required"`
}

func (h *TagHandler) CreateTag(c echo.Context) error {
	var req createTagRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	tag, err := h.tagUseCase.CreateTag(c.Request().Context(), req.Tag)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, tag)
}

func (h *TagHandler) ListTags(c echo.Context) error {
	tags, err := h.tagUseCase.ListTags(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, tags)
}
