package entity

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	BadgeBronze = "Bronze"
	BadgeGold   = "Gold"
)

type User struct {
	ID       string `json:"id" firestore:"id"`
	UID      string `json:"uid" firestore:"uid"`
	Email    string `json:"email" firestore:"email"`
	FullName string `json:"fullName" firestore:"fullName"`
	PhotoURL string `json:"photoURL,omitempty" firestore:"photoURL,omitempty"`

	// Role and badge are independent axes: an admin is not
	// automatically Gold and a Gold member is not an admin.
	Role  string `json:"role" firestore:"role"`
	Badge string `json:"badge" firestore:"badge"`

	// SnoozeUntil in the future means the account is suspended.
	SnoozeUntil *time.Time `json:"snoozeUntil,omitempty" firestore:"snoozeUntil,omitempty"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// Suspended reports whether the account is inside an active snooze window.
func (u *User) Suspended(now time.Time) bool {
	return u.SnoozeUntil != nil && u.SnoozeUntil.After(now)
}
