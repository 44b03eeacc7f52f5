package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"codecircle/internal/domain/entity"
	"codecircle/internal/domain/repository"
	"codecircle/pkg/errors"
	"codecircle/pkg/logger"
)

// Chat send limits: a short burst is fine, sustained flooding is not.
const (
	chatBurst      = 10
	chatRefillRate = 1
	chatRefillTime = 3 * time.Second
)

type ChatUseCase struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	broadcaster ChatBroadcaster
	limiter     RateLimiter
}

func NewChatUseCase(
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
	broadcaster ChatBroadcaster,
	limiter RateLimiter,
) *ChatUseCase {
	return &ChatUseCase{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		broadcaster: broadcaster,
		limiter:     limiter,
	}
}

type SendMessageInput struct {
	SenderName  string `json:"senderName"`
	SenderImage string `json:"senderImage"`
	Text        string `json:"text"`
	ReplyTo     string `json:"replyTo"`
}

func (uc *ChatUseCase) SendMessage(ctx context.Context, senderEmail string, input SendMessageInput) (*entity.Message, error) {
	if senderEmail == "" {
		return nil, errors.Unauthorized("Sign in to chat", nil)
	}
	if strings.TrimSpace(input.Text) == "" {
		return nil, errors.EmptyInput("Message text cannot be empty")
	}

	sender, err := uc.userRepo.GetByEmail(ctx, senderEmail)
	if err != nil {
		return nil, errors.Unauthorized("Unknown account", err)
	}
	if sender.Suspended(time.Now()) {
		return nil, errors.Forbidden("Your account is suspended", nil)
	}

	if allowed, wait := uc.limiter.Allow(senderEmail, chatBurst, chatRefillRate, chatRefillTime); !allowed {
		return nil, errors.TooManyRequests("Slow down; try again in " + wait.Round(time.Second).String())
	}

	message := &entity.Message{
		ID:          uuid.New().String(),
		SenderEmail: senderEmail,
		SenderName:  input.SenderName,
		SenderImage: input.SenderImage,
		Text:        input.Text,
		ReplyTo:     input.ReplyTo,
		CreatedAt:   time.Now(),
	}
	if message.SenderName == "" {
		message.SenderName = sender.FullName
	}
	if message.SenderImage == "" {
		message.SenderImage = sender.PhotoURL
	}

	if err := uc.messageRepo.Create(ctx, message); err != nil {
		return nil, errors.Internal("Failed to send message", err)
	}

	if uc.broadcaster != nil {
		payload, err := json.Marshal(message)
		if err != nil {
			logger.Warn("Failed to marshal chat message %s: %v", message.ID, err)
		} else {
			uc.broadcaster.Broadcast(payload)
		}
	}

	return message, nil
}

// ListMessages returns the full chat history; the client polls this on an
// interval.
func (uc *ChatUseCase) ListMessages(ctx context.Context) ([]*entity.Message, error) {
	return uc.messageRepo.List(ctx)
}
