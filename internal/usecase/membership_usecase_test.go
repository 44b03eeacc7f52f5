package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codecircle/internal/domain/entity"
	"codecircle/pkg/errors"
)

func newMembershipUseCaseForTest() (*MembershipUseCase, *memPaymentRepo, *memUserRepo, *fakeGateway) {
	planRepo := newMemPlanRepo(
		&entity.MembershipPlan{ID: "plan-monthly", Title: "Monthly Membership", Cost: 9.99},
		&entity.MembershipPlan{ID: "plan-yearly", Title: "Yearly Membership", Cost: 99.99},
	)
	paymentRepo := newMemPaymentRepo()
	userRepo := newMemUserRepo()
	gateway := &fakeGateway{}
	return NewMembershipUseCase(planRepo, paymentRepo, userRepo, gateway), paymentRepo, userRepo, gateway
}

func TestCreatePaymentIntentForKnownPlan(t *testing.T) {
	uc, _, _, gateway := newMembershipUseCaseForTest()

	intent, err := uc.CreatePaymentIntent(context.Background(), "buyer@example.com", PaymentIntentInput{
		AmountInCents: 999,
		MembershipID:  "plan-monthly",
	})
	require.NoError(t, err)
	assert.Equal(t, "pi_test_secret", intent.ClientSecret)
	assert.Equal(t, int64(999), gateway.lastRequest.AmountInCents)
	assert.Equal(t, "plan-monthly", gateway.lastRequest.PlanID)
}

func TestCreatePaymentIntentUnknownPlan(t *testing.T) {
	uc, _, _, _ := newMembershipUseCaseForTest()

	_, err := uc.CreatePaymentIntent(context.Background(), "buyer@example.com", PaymentIntentInput{
		AmountInCents: 999,
		MembershipID:  "plan-imaginary",
	})
	assert.Error(t, err)
}

func TestRecordPaymentUpgradesBadgeForMembershipPlans(t *testing.T) {
	for _, planTitle := range []string{"Monthly Membership", "Yearly Membership"} {
		uc, paymentRepo, userRepo, _ := newMembershipUseCaseForTest()
		ctx := context.Background()
		seedUser(t, userRepo, "buyer@example.com", entity.BadgeBronze)

		payment, err := uc.RecordPayment(ctx, RecordPaymentInput{
			UserEmail:     "buyer@example.com",
			PlanID:        "plan-monthly",
			PlanTitle:     planTitle,
			Amount:        999,
			TransactionID: "pi_123",
		})
		require.NoError(t, err)
		assert.Equal(t, "USD", payment.Currency)

		user, err := userRepo.GetByEmail(ctx, "buyer@example.com")
		require.NoError(t, err)
		assert.Equal(t, entity.BadgeGold, user.Badge, "plan %q should upgrade the badge", planTitle)

		stored, err := paymentRepo.ListByEmail(ctx, "buyer@example.com")
		require.NoError(t, err)
		assert.Len(t, stored, 1)
	}
}

func TestRecordPaymentLeavesBadgeForOtherPlans(t *testing.T) {
	uc, _, userRepo, _ := newMembershipUseCaseForTest()
	ctx := context.Background()
	seedUser(t, userRepo, "buyer@example.com", entity.BadgeBronze)

	_, err := uc.RecordPayment(ctx, RecordPaymentInput{
		UserEmail:     "buyer@example.com",
		PlanID:        "plan-donation",
		PlanTitle:     "One-time Donation",
		Amount:        500,
		TransactionID: "pi_456",
	})
	require.NoError(t, err)

	user, err := userRepo.GetByEmail(ctx, "buyer@example.com")
	require.NoError(t, err)
	assert.Equal(t, entity.BadgeBronze, user.Badge)
}

func TestRecordPaymentSurvivesMissingPayer(t *testing.T) {
	uc, paymentRepo, _, _ := newMembershipUseCaseForTest()
	ctx := context.Background()

	payment, err := uc.RecordPayment(ctx, RecordPaymentInput{
		UserEmail:     "ghost@example.com",
		PlanID:        "plan-yearly",
		PlanTitle:     "Yearly Membership",
		Amount:        9999,
		TransactionID: "pi_789",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, payment.ID)

	stored, err := paymentRepo.ListByEmail(ctx, "ghost@example.com")
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestBadgeUpgradeUnlocksPostQuota(t *testing.T) {
	userRepo := newMemUserRepo()
	postRepo := newMemPostRepo()
	postUC := NewPostUseCase(postRepo, newMemCommentRepo(), userRepo)
	membershipUC := NewMembershipUseCase(
		newMemPlanRepo(&entity.MembershipPlan{ID: "plan-yearly", Title: "Yearly Membership", Cost: 99.99}),
		newMemPaymentRepo(),
		userRepo,
		&fakeGateway{},
	)

	ctx := context.Background()
	seedUser(t, userRepo, "writer@example.com", entity.BadgeBronze)

	for i := 0; i < FreePostLimit; i++ {
		_, err := postUC.CreatePost(ctx, "writer@example.com", CreatePostInput{
			PostTitle:   fmt.Sprintf("Post %d", i),
			Description: "body",
			Tag:         "go",
		})
		require.NoError(t, err)
	}

	blocked := CreatePostInput{
		PostTitle:   "Over the limit",
		Description: "body",
		Tag:         "go",
	}
	_, err := postUC.CreatePost(ctx, "writer@example.com", blocked)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "QUOTA_EXCEEDED"))

	_, err = membershipUC.RecordPayment(ctx, RecordPaymentInput{
		UserEmail:     "writer@example.com",
		PlanID:        "plan-yearly",
		PlanTitle:     "Yearly Membership",
		Amount:        9999,
		TransactionID: "pi_upgrade",
	})
	require.NoError(t, err)

	// The same create that was just rejected goes through after the upgrade.
	_, err = postUC.CreatePost(ctx, "writer@example.com", blocked)
	require.NoError(t, err)

	count, err := postRepo.CountByAuthor(ctx, "writer@example.com")
	require.NoError(t, err)
	assert.Equal(t, FreePostLimit+1, count)
}
