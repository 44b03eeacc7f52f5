package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"codecircle/internal/domain/entity"
	"codecircle/internal/domain/repository"
	"codecircle/internal/domain/service"
	"codecircle/pkg/errors"
	"codecircle/pkg/logger"
)

type MembershipUseCase struct {
	planRepo    repository.MembershipPlanRepository
	paymentRepo repository.PaymentRepository
	userRepo    repository.UserRepository
	gateway     service.PaymentGatewayService
}

func NewMembershipUseCase(
	planRepo repository.MembershipPlanRepository,
	paymentRepo repository.PaymentRepository,
	userRepo repository.UserRepository,
	gateway service.PaymentGatewayService,
) *MembershipUseCase {
	return &MembershipUseCase{
		planRepo:    planRepo,
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		gateway:     gateway,
	}
}

func (uc *MembershipUseCase) ListPlans(ctx context.Context) ([]*entity.MembershipPlan, error) {
	return uc.planRepo.List(ctx)
}

func (uc *MembershipUseCase) GetPlan(ctx context.Context, id string) (*entity.MembershipPlan, error) {
	return uc.planRepo.GetByID(ctx, id)
}

type PaymentIntentInput struct {
	AmountInCents int64  `json:"amountInCents" validate:"required,gt=0"`
	MembershipID  string `json:"membershipid" validate:"required"`
}

// CreatePaymentIntent opens a charge at the payment gateway for a membership
// plan and returns the client secret the card form needs.
func (uc *MembershipUseCase) CreatePaymentIntent(ctx context.Context, userEmail string, input PaymentIntentInput) (*service.PaymentIntentResponse, error) {
	if input.AmountInCents <= 0 {
		return nil, errors.Validation("Amount must be positive")
	}

	if _, err := uc.planRepo.GetByID(ctx, input.MembershipID); err != nil {
		return nil, err
	}

	intent, err := uc.gateway.CreatePaymentIntent(ctx, service.PaymentIntentRequest{
		AmountInCents: input.AmountInCents,
		Currency:      "usd",
		PlanID:        input.MembershipID,
		UserEmail:     userEmail,
	})
	if err != nil {
		return nil, errors.Internal("Failed to create payment intent", err)
	}

	return intent, nil
}

type RecordPaymentInput struct {
	UserEmail     string `json:"userEmail" validate:"required,email"`
	UserID        string `json:"userId"`
	PlanID        string `json:"planId" validate:"required"`
	PlanTitle     string `json:"planTitle" validate:"required"`
	Amount        int64  `json:"amount" validate:"required,gt=0"`
	TransactionID string `json:"transactionId" validate:"required"`
}

// RecordPayment stores a confirmed charge and upgrades the payer's badge when
// the plan is a membership. Duplicate submissions are not rejected here; the
// badge write is idempotent either way.
func (uc *MembershipUseCase) RecordPayment(ctx context.Context, input RecordPaymentInput) (*entity.Payment, error) {
	payment := &entity.Payment{
		ID:            uuid.New().String(),
		UserEmail:     input.UserEmail,
		UserID:        input.UserID,
		PlanID:        input.PlanID,
		PlanTitle:     input.PlanTitle,
		Amount:        input.Amount,
		Currency:      "USD",
		TransactionID: input.TransactionID,
		CreatedAt:     time.Now(),
	}

	if err := uc.paymentRepo.Create(ctx, payment); err != nil {
		return nil, errors.Internal("Failed to record payment", err)
	}

	if payment.UpgradesBadge() {
		user, err := uc.userRepo.GetByEmail(ctx, input.UserEmail)
		if err != nil {
			logger.Warn("Payment %s recorded but payer %s not found for badge upgrade", payment.ID, input.UserEmail)
			return payment, nil
		}
		if user.Badge != entity.BadgeGold {
			user.Badge = entity.BadgeGold
			user.UpdatedAt = time.Now()
			if err := uc.userRepo.Update(ctx, user); err != nil {
				return nil, errors.Internal("Failed to upgrade badge", err)
			}
		}
	}

	return payment, nil
}

func (uc *MembershipUseCase) ListPaymentsByEmail(ctx context.Context, userEmail string) ([]*entity.Payment, error) {
	return uc.paymentRepo.ListByEmail(ctx, userEmail)
}

func (uc *MembershipUseCase) ListPayments(ctx context.Context, limit, offset int) ([]*entity.Payment, int64, error) {
	return uc.paymentRepo.List(ctx, limit, offset)
}
