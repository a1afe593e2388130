package entity

import "time"

const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ChatMessage is a single turn of a session's conversation with the assistant.
type ChatMessage struct {
	ID        string    `json:"id" bson:"_id"`
	SessionID string    `json:"session_id" bson:"session_id"`
	Role      string    `json:"role" bson:"role"`
	Text      string    `json:"text" bson:"text"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// ChatReply is returned to the client after a message round trip.
type ChatReply struct {
	Question *ChatMessage `json:"question,omitempty"`
	Answer   ChatMessage  `json:"answer"`
	Failed   bool         `json:"failed"`
}
