package models

import "time"

// BookCategory is a flat-or-nested listing category
type BookCategory struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:50;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	ParentID    *uint     `gorm:"index" json:"parent_id,omitempty"`
	SortOrder   int       `gorm:"default:0" json:"sort_order"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for the BookCategory model
func (BookCategory) TableName() string {
	return "book_categories"
}

// BookImage is a gallery image attached to a listing
type BookImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BookID    string    `gorm:"type:char(36);not null;index" json:"book_id"`
	ImageURL  string    `gorm:"size:500;not null" json:"image_url"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	IsPrimary bool      `gorm:"default:false" json:"is_primary"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for the BookImage model
func (BookImage) TableName() string {
	return "book_images"
}
