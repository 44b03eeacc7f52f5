package entity

import (
	"time"
)

type Announcement struct {
	ID          string    `json:"id" firestore:"id"`
	AuthorName  string    `json:"authorName" firestore:"authorName"`
	AuthorImage string    `json:"authorImage,omitempty" firestore:"authorImage,omitempty"`
	Title       string    `json:"title" firestore:"title"`
	Description string    `json:"description" firestore:"description"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
}
