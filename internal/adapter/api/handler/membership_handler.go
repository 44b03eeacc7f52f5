package handler

import (
	"github.com/labstack/echo/v4"

	"codecircle/internal/adapter/api/middleware"
	"codecircle/internal/usecase"
	"codecircle/pkg/errors"
	"codecircle/pkg/response"
	"codecircle/pkg/utils"
)

type MembershipHandler struct {
	membershipUseCase *usecase.MembershipUseCase
}

func NewMembershipHandler(membershipUseCase *usecase.MembershipUseCase) *MembershipHandler {
	return &MembershipHandler{
		membershipUseCase: membershipUseCase,
	}
}

func (h *MembershipHandler) ListPlans(c echo.Context) error {
	plans, err := h.membershipUseCase.ListPlans(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, plans)
}

func (h *MembershipHandler) GetPlan(c echo.Context) error {
	plan, err := h.membershipUseCase.GetPlan(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, plan)
}

type paymentIntentRequest struct {
	AmountInCents int64  `json:"amountInCents" validate:"required,gt=0"`
	MembershipID  string `json:"membershipid" validate:"required"`
}

func (h *MembershipHandler) CreatePaymentIntent(c echo.Context) error {
	var req paymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	intent, err := h.membershipUseCase.CreatePaymentIntent(c.Request().Context(), middleware.EmailFromContext(c), usecase.PaymentIntentInput{
		AmountInCents: req.AmountInCents,
		MembershipID:  req.MembershipID,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"clientSecret": intent.ClientSecret,
	})
}

type recordPaymentRequest struct {
	UserEmail     string `json:"userEmail" validate:"required,email"`
	UserID        string `json:"userId"`
	PlanID        string `json:"planId" validate:"required"`
	PlanTitle     string `json:"planTitle" validate:"required"`
	Amount        int64  `json:"amount" validate:"required,gt=0"`
	TransactionID string `json:"transactionId" validate:"required"`
}

func (h *MembershipHandler) RecordPayment(c echo.Context) error {
	var req recordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if req.UserEmail != middleware.EmailFromContext(c) {
		return response.Error(c, errors.Forbidden("You can only record your own payments", nil))
	}

	payment, err := h.membershipUseCase.RecordPayment(c.Request().Context(), usecase.RecordPaymentInput{
		UserEmail:     req.UserEmail,
		UserID:        req.UserID,
		PlanID:        req.PlanID,
		PlanTitle:     req.PlanTitle,
		Amount:        req.Amount,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, payment)
}

// ListAllPayments backs the admin revenue table.
func (h *MembershipHandler) ListAllPayments(c echo.Context) error {
	params := utils.GetPaginationParams(c, 10)

	payments, total, err := h.membershipUseCase.ListPayments(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, payments, total, params.Page, params.PageSize)
}

// ListMyPayments returns the caller's payment history.
func (h *MembershipHandler) ListMyPayments(c echo.Context) error {
	payments, err := h.membershipUseCase.ListPaymentsByEmail(c.Request().Context(), middleware.EmailFromContext(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, payments)
}
