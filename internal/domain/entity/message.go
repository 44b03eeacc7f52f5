package entity

import (
	"time"
)

// Message is a community chat message. The SPA re-fetches the full list on a
// fixed interval, so ordering beyond what the store returns is not promised.
type Message struct {
	ID          string    `json:"id" firestore:"id"`
	SenderEmail string    `json:"senderEmail" firestore:"senderEmail"`
	SenderName  string    `json:"senderName" firestore:"senderName"`
	SenderImage string    `json:"senderImage,omitempty" firestore:"senderImage,omitempty"`
	Text        string    `json:"text" firestore:"text"`
	ReplyTo     string    `json:"replyTo,omitempty" firestore:"replyTo,omitempty"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
}
