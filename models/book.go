package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ConditionLevel describes the physical condition of a listed book
type ConditionLevel string

const (
	ConditionExcellent ConditionLevel = "excellent"
	ConditionGood      ConditionLevel = "good"
	ConditionFair      ConditionLevel = "fair"
	ConditionPoor      ConditionLevel = "poor"
)

// BookStatus tracks a book through the order lifecycle
type BookStatus string

const (
	BookAvailable BookStatus = "available"
	BookReserved  BookStatus = "reserved"
	BookSold      BookStatus = "sold"
	BookOffShelf  BookStatus = "off_shelf"
)

// Book represents a secondhand book listing
type Book struct {
	ID                   string          `gorm:"type:char(36);primaryKey" json:"id"`
	ISBN                 string          `gorm:"size:20;not null" json:"isbn"`
	Title                string          `gorm:"size:200;not null" json:"title"`
	Author               string          `gorm:"size:100;not null" json:"author"`
	Publisher            *string         `gorm:"size:100" json:"publisher,omitempty"`
	PublishYear          *int            `json:"publish_year,omitempty"`
	Edition              *string         `gorm:"size:50" json:"edition,omitempty"`
	CategoryID           *uint           `gorm:"index" json:"category_id,omitempty"`
	CoverImage           *string         `gorm:"size:500" json:"cover_image,omitempty"`
	Description          *string         `gorm:"type:text" json:"description,omitempty"`
	OriginalPrice        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"original_price"`
	SellingPrice         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"selling_price"`
	ConditionLevel       ConditionLevel  `gorm:"size:20;not null" json:"condition_level"`
	ConditionDescription *string         `gorm:"type:text" json:"condition_description,omitempty"`
	SellerID             string          `gorm:"type:char(36);not null;index" json:"seller_id"`
	Seller               User            `gorm:"foreignKey:SellerID" json:"seller"`
	Status               BookStatus      `gorm:"size:20;not null;default:'available'" json:"status"`
	ViewCount            int             `gorm:"default:0" json:"view_count"`
	FavoriteCount        int             `gorm:"default:0" json:"favorite_count"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// TableName specifies the table name for the Book model
func (Book) TableName() string {
	return "books"
}

// BeforeCreate assigns a UUID primary key if none was set
func (b *Book) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
