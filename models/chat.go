package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageType distinguishes chat message payloads
type MessageType string

const (
	MessageText   MessageType = "text"
	MessageImage  MessageType = "image"
	MessageSystem MessageType = "system"
)

// ChatSession pairs two users, optionally around a listing. Modeled for the
// schema; chat endpoints are out of scope.
type ChatSession struct {
	ID               string     `gorm:"type:char(36);primaryKey" json:"id"`
	User1ID          string     `gorm:"type:char(36);not null;index" json:"user1_id"`
	User2ID          string     `gorm:"type:char(36);not null;index" json:"user2_id"`
	BookID           *string    `gorm:"type:char(36)" json:"book_id,omitempty"`
	LastMessage      *string    `gorm:"type:text" json:"last_message,omitempty"`
	LastMessageAt    *time.Time `json:"last_message_at,omitempty"`
	UnreadCountUser1 int        `gorm:"default:0" json:"unread_count_user1"`
	UnreadCountUser2 int        `gorm:"default:0" json:"unread_count_user2"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// TableName specifies the table name for the ChatSession model
func (ChatSession) TableName() string {
	return "chat_sessions"
}

// BeforeCreate assigns a UUID primary key if none was set
func (s *ChatSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// ChatMessage is a single message within a session
type ChatMessage struct {
	ID          string      `gorm:"type:char(36);primaryKey" json:"id"`
	SessionID   string      `gorm:"type:char(36);not null;index" json:"session_id"`
	SenderID    string      `gorm:"type:char(36);not null" json:"sender_id"`
	MessageType MessageType `gorm:"size:20;default:'text'" json:"message_type"`
	Content     string      `gorm:"type:text;not null" json:"content"`
	ImageURL    *string     `gorm:"size:500" json:"image_url,omitempty"`
	IsRead      bool        `gorm:"default:false" json:"is_read"`
	ReadAt      *time.Time  `json:"read_at,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

// TableName specifies the table name for the ChatMessage model
func (ChatMessage) TableName() string {
	return "chat_messages"
}

// BeforeCreate assigns a UUID primary key if none was set
func (m *ChatMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
