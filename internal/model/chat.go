package model

import "time"

type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is one line of the assistant transcript.
type ChatMessage struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
	UserID     string    `gorm:"type:varchar(64);index" json:"user_id"`
	Role       ChatRole  `gorm:"type:varchar(16)" json:"role"`
	Content    string    `gorm:"type:text" json:"content"`
	ActionType string    `gorm:"type:varchar(32)" json:"action_type,omitempty"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
