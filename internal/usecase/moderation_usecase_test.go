package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codecircle/internal/domain/entity"
)

func newModerationUseCaseForTest() (*ModerationUseCase, *memUserRepo, *memReportRepo, *memNotificationRepo, *fakeIdentityProvider) {
	userRepo := newMemUserRepo()
	reportRepo := newMemReportRepo()
	notificationRepo := newMemNotificationRepo()
	identity := newFakeIdentityProvider()
	uc := NewModerationUseCase(userRepo, reportRepo, notificationRepo, identity)
	return uc, userRepo, reportRepo, notificationRepo, identity
}

func TestGiveWarningDeliversFixedMessage(t *testing.T) {
	uc, _, _, notificationRepo, _ := newModerationUseCaseForTest()
	ctx := context.Background()

	notification, err := uc.GiveWarning(ctx, "target@example.com")
	require.NoError(t, err)
	assert.Equal(t, entity.NotificationTypeWarning, notification.Type)
	assert.Equal(t, WarningMessage, notification.Message)
	assert.False(t, notification.IsRead)

	active, err := notificationRepo.ListActive(ctx, "target@example.com")
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestWarningsStack(t *testing.T) {
	uc, _, _, notificationRepo, _ := newModerationUseCaseForTest()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := uc.GiveWarning(ctx, "repeat@example.com")
		require.NoError(t, err)
	}

	active, err := notificationRepo.ListActive(ctx, "repeat@example.com")
	require.NoError(t, err)
	assert.Len(t, active, 3)
}

func TestSnoozeRestartsWindow(t *testing.T) {
	uc, userRepo, _, _, _ := newModerationUseCaseForTest()
	ctx := context.Background()
	seedUser(t, userRepo, "target@example.com", entity.BadgeBronze)

	first, err := uc.SnoozeAccount(ctx, "target@example.com")
	require.NoError(t, err)
	require.NotNil(t, first.SnoozeUntil)
	assert.WithinDuration(t, time.Now().Add(SnoozeDuration), *first.SnoozeUntil, time.Minute)
	assert.True(t, first.Suspended(time.Now()))

	time.Sleep(10 * time.Millisecond)

	second, err := uc.SnoozeAccount(ctx, "target@example.com")
	require.NoError(t, err)
	require.NotNil(t, second.SnoozeUntil)
	// The new deadline replaces the old one rather than stacking on top.
	assert.True(t, second.SnoozeUntil.After(*first.SnoozeUntil))
	assert.WithinDuration(t, time.Now().Add(SnoozeDuration), *second.SnoozeUntil, time.Minute)
}

func TestDeleteAccountPurgesOwnReportsOnly(t *testing.T) {
	uc, userRepo, reportRepo, _, identity := newModerationUseCaseForTest()
	ctx := context.Background()
	seedUser(t, userRepo, "target@example.com", entity.BadgeBronze)

	// One report the target filed, one filed against them.
	require.NoError(t, reportRepo.Create(ctx, &entity.CommentReport{
		ID:         "filed-by-target",
		ReportedBy: "target@example.com",
		Feedback:   "Spam or Promotion",
		ReportedAt: time.Now(),
	}))
	require.NoError(t, reportRepo.Create(ctx, &entity.CommentReport{
		ID:             "filed-against-target",
		CommenterEmail: "target@example.com",
		ReportedBy:     "someone@example.com",
		Feedback:       "Offensive Language",
		ReportedAt:     time.Now(),
	}))

	require.NoError(t, uc.DeleteAccount(ctx, "target@example.com"))

	_, err := userRepo.GetByEmail(ctx, "target@example.com")
	assert.Error(t, err)

	assert.Equal(t, []string{"uid-target@example.com"}, identity.deleted)

	reports, total, err := reportRepo.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, reports, 1)
	assert.Equal(t, "filed-against-target", reports[0].ID)
}

func TestDeleteAccountUnknownUser(t *testing.T) {
	uc, _, _, _, _ := newModerationUseCaseForTest()

	err := uc.DeleteAccount(context.Background(), "ghost@example.com")
	assert.Error(t, err)
}
