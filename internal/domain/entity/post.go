package entity

import (
	"time"
)

type Post struct {
	ID              string    `json:"id" firestore:"id"`
	AuthorEmail     string    `json:"authorEmail" firestore:"authorEmail"`
	AuthorName      string    `json:"authorName" firestore:"authorName"`
	AuthorImage     string    `json:"authorImage,omitempty" firestore:"authorImage,omitempty"`
	PostTitle       string    `json:"postTitle" firestore:"postTitle"`
	PostDescription string    `json:"postDescription" firestore:"postDescription"`
	Tag             string    `json:"tag" firestore:"tag"`
	UpVote          int       `json:"upVote" firestore:"upVote"`
	DownVote        int       `json:"downVote" firestore:"downVote"`
	CreatedAt       time.Time `json:"createdAt" firestore:"createdAt"`
}

// Score is the popularity ordering key for the feed.
func (p *Post) Score() int {
	return p.UpVote - p.DownVote
}
