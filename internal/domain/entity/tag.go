package entity

type Tag struct {
	ID  string `json:"id" firestore:"id"`
	Tag string `json:"tag" firestore:"tag"`
}
