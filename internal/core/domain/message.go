package domain

import "time"

// Message is a directed message between two users, optionally scoped to a
// project. Workflow notifications share this schema; they differ from
// user-composed messages only by authorship.
type Message struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	SenderID   string    `json:"sender_id" bson:"sender_id"`
	ReceiverID string    `json:"receiver_id" bson:"receiver_id"`
	ProjectID  string    `json:"project_id,omitempty" bson:"project_id,omitempty"`
	Body       string    `json:"message" bson:"message"`
	Read       bool      `json:"read" bson:"read"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}
