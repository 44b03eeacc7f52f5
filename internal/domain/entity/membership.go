package entity

import (
	"strings"
	"time"
)

type MembershipPlan struct {
	ID       string   `json:"id" firestore:"id"`
	Title    string   `json:"title" firestore:"title"`
	Cost     float64  `json:"cost" firestore:"cost"`
	Features []string `json:"features" firestore:"features"`
}

type Payment struct {
	ID            string    `json:"id" firestore:"id"`
	UserEmail     string    `json:"userEmail" firestore:"userEmail"`
	UserID        string    `json:"userId" firestore:"userId"`
	PlanID        string    `json:"planId" firestore:"planId"`
	PlanTitle     string    `json:"planTitle" firestore:"planTitle"`
	Amount        int64     `json:"amount" firestore:"amount"` // cents
	Currency      string    `json:"currency" firestore:"currency"`
	TransactionID string    `json:"transactionId" firestore:"transactionId"`
	CreatedAt     time.Time `json:"createdAt" firestore:"createdAt"`
}

// UpgradesBadge reports whether a payment for this plan title raises the
// payer to the Gold badge. Only the membership plans do; one-off products
// would not.
func (p *Payment) UpgradesBadge() bool {
	title := strings.ToLower(p.PlanTitle)
	return strings.Contains(title, "yearly") || strings.Contains(title, "monthly")
}
