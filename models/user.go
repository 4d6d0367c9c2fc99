package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered student on the platform
type User struct {
	ID                string    `gorm:"type:char(36);primaryKey" json:"id"`
	StudentID         string    `gorm:"size:20;uniqueIndex;not null" json:"student_id"`
	Name              string    `gorm:"size:50;not null" json:"name"`
	Email             *string   `gorm:"size:100;uniqueIndex" json:"email,omitempty"`
	Phone             string    `gorm:"size:20;not null" json:"phone"`
	AvatarURL         *string   `gorm:"size:500" json:"avatar_url,omitempty"`
	HashedPassword    string    `gorm:"size:128" json:"-"` // one-way digest, never verified in current scope
	CreditScore       int       `gorm:"default:100" json:"credit_score"`
	TotalTransactions int       `gorm:"default:0" json:"total_transactions"`
	PositiveReviews   int       `gorm:"default:0" json:"positive_reviews"`
	NegativeReviews   int       `gorm:"default:0" json:"negative_reviews"`
	IsActive          bool      `gorm:"default:true" json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns a UUID primary key if none was set
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
