package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"codecircle/internal/adapter/api/middleware"
	"codecircle/internal/usecase"
	"codecircle/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type registerRequest struct {
	UID      string `json:"uid"`
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"fullName" validate:"required"`
	PhotoURL string `json:"photoURL" validate:"omitempty,url"`
}

// Register upserts the app profile after a provider sign-in.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.authUseCase.RegisterUser(c.Request().Context(), usecase.RegisterUserInput{
		UID:      req.UID,
		Email:    req.Email,
		FullName: req.FullName,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, user)
}

type sessionTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// SessionToken exchanges a known email for a signed API session token.
func (h *AuthHandler) SessionToken(c echo.Context) error {
	var req sessionTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	token, err := h.authUseCase.SessionToken(c.Request().Context(), req.Email)
	if err != nil {
		return response.Error(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
		Secure:   true,
	})

	return response.Success(c, map[string]string{
		"token": token,
	})
}

func (h *AuthHandler) Me(c echo.Context) error {
	email := middleware.EmailFromContext(c)

	user, err := h.authUseCase.GetUserByEmail(c.Request().Context(), email)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}
