package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"codecircle/internal/domain/entity"
	"codecircle/internal/domain/repository"
	"codecircle/pkg/errors"

	"github.com/google/uuid"
)

type firestoreMembershipPlanRepository struct {
	client *firestore.Client
}

func NewFirestoreMembershipPlanRepository(client *firestore.Client) repository.MembershipPlanRepository {
	return &firestoreMembershipPlanRepository{
		client: client,
	}
}

func (r *firestoreMembershipPlanRepository) GetByID(ctx context.Context, id string) (*entity.MembershipPlan, error) {
	doc, err := r.client.Collection("membershipPlans").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Membership plan", err)
		}
		return nil, errors.Internal("Failed to get membership plan", err)
	}

	var plan entity.MembershipPlan
	if err := doc.DataTo(&plan); err != nil {
		return nil, errors.Internal("Failed to parse membership plan data", err)
	}

	return &plan, nil
}

func (r *firestoreMembershipPlanRepository) List(ctx context.Context) ([]*entity.MembershipPlan, error) {
	iter := r.client.Collection("membershipPlans").Documents(ctx)

	var plans []*entity.MembershipPlan
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list membership plans", err)
		}

		var plan entity.MembershipPlan
		if err := doc.DataTo(&plan); err != nil {
			return nil, errors.Internal("Failed to parse membership plan data", err)
		}
		plans = append(plans, &plan)
	}

	return plans, nil
}

type firestorePaymentRepository struct {
	client *firestore.Client
}

func NewFirestorePaymentRepository(client *firestore.Client) repository.PaymentRepository {
	return &firestorePaymentRepository{
		client: client,
	}
}

func (r *firestorePaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("payments").Doc(payment.ID).Set(ctx, payment)
	if err != nil {
		return errors.Internal("Failed to create payment", err)
	}

	return nil
}

func (r *firestorePaymentRepository) ListByEmail(ctx context.Context, userEmail string) ([]*entity.Payment, error) {
	query := r.client.Collection("payments").Where("userEmail", "==", userEmail)
	iter := query.Documents(ctx)

	var payments []*entity.Payment
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list payments", err)
		}

		var payment entity.Payment
		if err := doc.DataTo(&payment); err != nil {
			return nil, errors.Internal("Failed to parse payment data", err)
		}
		payments = append(payments, &payment)
	}

	return payments, nil
}

func (r *firestorePaymentRepository) List(ctx context.Context, limit, offset int) ([]*entity.Payment, int64, error) {
	query := r.client.Collection("payments").Query

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count payments", err)
	}
	total := int64(len(countDocs))

	query = query.OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var payments []*entity.Payment

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to list payments", err)
		}

		var payment entity.Payment
		if err := doc.DataTo(&payment); err != nil {
			return nil, 0, errors.Internal("Failed to parse payment data", err)
		}
		payments = append(payments, &payment)
	}

	return payments, total, nil
}
