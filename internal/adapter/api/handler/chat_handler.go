package handler

import (
	"github.com/labstack/echo/v4"

	"codecircle/internal/adapter/api/middleware"
	"codecircle/internal/usecase"
	"codecircle/pkg/response"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

type sendMessageRequest struct {
	SenderName  string `json:"senderName"`
	SenderImage string `json:"senderImage" validate:"omitempty,url"`
	Text        string `json:"text"`
	ReplyTo     string `json:"replyTo"`
}

func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.chatUseCase.SendMessage(c.Request().Context(), middleware.EmailFromContext(c), usecase.SendMessageInput{
		SenderName:  req.SenderName,
		SenderImage: req.SenderImage,
		Text:        req.Text,
		ReplyTo:     req.ReplyTo,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

// ListMessages serves the poll endpoint the chat page refreshes on an
// interval.
func (h *ChatHandler) ListMessages(c echo.Context) error {
	messages, err := h.chatUseCase.ListMessages(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, messages)
}
