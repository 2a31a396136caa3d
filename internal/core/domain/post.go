package domain

import "time"

// Post is a piece of content published by a user. Many posts per user.
type Post struct {
	ID        int64     `json:"id" bson:"_id,omitempty"`
	Body      string    `json:"body" bson:"body" validate:"required"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
	UserID    int64     `json:"userId" bson:"user_id"`
}
