package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUserSuspended(t *testing.T) {
	now := time.Now()

	user := &User{}
	assert.False(t, user.Suspended(now))

	past := now.Add(-time.Hour)
	user.SnoozeUntil = &past
	assert.False(t, user.Suspended(now))

	future := now.Add(time.Hour)
	user.SnoozeUntil = &future
	assert.True(t, user.Suspended(now))
}

func TestPaymentUpgradesBadge(t *testing.T) {
	cases := []struct {
		title    string
		upgrades bool
	}{
		{"Monthly Membership", true},
		{"Yearly Membership", true},
		{"YEARLY DEAL", true},
		{"One-time Donation", false},
		{"", false},
	}

	for _, tc := range cases {
		payment := &Payment{PlanTitle: tc.title}
		assert.Equal(t, tc.upgrades, payment.UpgradesBadge(), "plan title %q", tc.title)
	}
}

func TestPostScore(t *testing.T) {
	post := &Post{UpVote: 7, DownVote: 3}
	assert.Equal(t, 4, post.Score())
}

func TestValidReportFeedback(t *testing.T) {
	for _, option := range ReportFeedbackOptions {
		assert.True(t, ValidReportFeedback(option))
	}
	assert.False(t, ValidReportFeedback("Just Bad"))
	assert.False(t, ValidReportFeedback(""))
}
