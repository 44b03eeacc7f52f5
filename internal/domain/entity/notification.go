package entity

import (
	"time"
)

// Notification lives in the active mailbox until the owner clears it,
// at which point it moves to the archive collection.
type Notification struct {
	ID        string    `json:"id" firestore:"id"`
	UserEmail string    `json:"userEmail" firestore:"userEmail"`
	Type      string    `json:"type" firestore:"type"`
	Message   string    `json:"message" firestore:"message"`
	IsRead    bool      `json:"isRead" firestore:"isRead"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}

const NotificationTypeWarning = "warning"
