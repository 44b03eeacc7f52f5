package entity

import (
	"time"
)

type Comment struct {
	ID             string    `json:"id" firestore:"id"`
	PostID         string    `json:"postId" firestore:"postId"`
	CommenterEmail string    `json:"commenterEmail" firestore:"commenterEmail"`
	CommentText    string    `json:"commentText" firestore:"commentText"`
	CreatedAt      time.Time `json:"createdAt" firestore:"createdAt"`
}

// Feedback options a reporter can attach to a comment report.
var ReportFeedbackOptions = []string{
	"Offensive Language",
	"Spam or Promotion",
	"Irrelevant Comment",
}

// CommentReport is a user-filed complaint against a specific comment.
// CommentText is a snapshot taken at report time.
type CommentReport struct {
	ID             string    `json:"id" firestore:"id"`
	PostID         string    `json:"postId" firestore:"postId"`
	CommentID      string    `json:"commentId" firestore:"commentId"`
	CommentText    string    `json:"commentText" firestore:"commentText"`
	CommenterEmail string    `json:"commenterEmail" firestore:"commenterEmail"`
	ReportedBy     string    `json:"reportedBy" firestore:"reportedBy"`
	Feedback       string    `json:"feedback" firestore:"feedback"`
	ReportedAt     time.Time `json:"reportedAt" firestore:"reportedAt"`
}

func ValidReportFeedback(feedback string) bool {
	for _, option := range ReportFeedbackOptions {
		if feedback == option {
			return true
		}
	}
	return false
}
