package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Favorite bookmarks a listing for a user
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"type:char(36);not null;index" json:"user_id"`
	BookID    string    `gorm:"type:char(36);not null;index" json:"book_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for the Favorite model
func (Favorite) TableName() string {
	return "favorites"
}

// ReviewRole is which side of the transaction wrote the review
type ReviewRole string

const (
	ReviewAsBuyer   ReviewRole = "buyer"
	ReviewAsSeller  ReviewRole = "seller"
	ReviewAsCourier ReviewRole = "courier"
)

// Review is post-transaction feedback between participants
type Review struct {
	ID          string     `gorm:"type:char(36);primaryKey" json:"id"`
	OrderID     string     `gorm:"type:char(36);not null;index" json:"order_id"`
	ReviewerID  string     `gorm:"type:char(36);not null" json:"reviewer_id"`
	ReviewedID  string     `gorm:"type:char(36);not null" json:"reviewed_id"`
	BookID      *string    `gorm:"type:char(36)" json:"book_id,omitempty"`
	Role        ReviewRole `gorm:"size:20;not null" json:"role"`
	Rating      int        `gorm:"not null" json:"rating"`
	Content     *string    `gorm:"type:text" json:"content,omitempty"`
	IsAnonymous bool       `gorm:"default:false" json:"is_anonymous"`
	CreatedAt   time.Time  `json:"created_at"`
}

// TableName specifies the table name for the Review model
func (Review) TableName() string {
	return "reviews"
}

// BeforeCreate assigns a UUID primary key if none was set
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// Announcement is a platform notice authored by an admin user
type Announcement struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	AuthorID  string    `gorm:"type:char(36);not null" json:"author_id"`
	IsPinned  bool      `gorm:"default:false" json:"is_pinned"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	PublishAt time.Time `json:"publish_at"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for the Announcement model
func (Announcement) TableName() string {
	return "announcements"
}
