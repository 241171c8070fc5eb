package models

import "time"

const (
	TestStatusApproved = "approved"
	TestStatusDraft    = "draft"
	TestStatusArchived = "archived"
)

type Test struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

type User struct {
	ID                 string    `bson:"_id,omitempty" json:"id"`
	Name               string    `bson:"name" json:"name"`
	Email              string    `bson:"email" json:"email"`
	RegistrationSource string    `bson:"registration_source" json:"registration_source"`
	CreatedAt          time.Time `bson:"created_at" json:"created_at"`
}

// Conversation is an AI-chat conversation opened by a learner. Only its
// creation time matters here; the dashboard counts conversations per period.
type Conversation struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
