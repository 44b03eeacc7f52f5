package repository

import (
	"context"

	"codecircle/internal/domain/entity"
)

type MembershipPlanRepository interface {
	GetByID(ctx context.Context, id string) (*entity.MembershipPlan, error)
	List(ctx context.Context) ([]*entity.MembershipPlan, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	ListByEmail(ctx context.Context, userEmail string) ([]*entity.Payment, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Payment, int64, error)
}
