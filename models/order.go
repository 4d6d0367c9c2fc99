package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus tracks an order through its lifecycle. Transitions are
// permissive: any status may be written over any prior status.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPaid      OrderStatus = "paid"
	OrderShipping  OrderStatus = "shipping"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
	OrderRefunded  OrderStatus = "refunded"
)

// DeliveryMethod is how buyer and seller exchange the book
type DeliveryMethod string

const (
	DeliveryMeetup  DeliveryMethod = "meetup"
	DeliveryCourier DeliveryMethod = "delivery"
)

// PaymentMethod is the buyer's declared payment channel (no gateway integration)
type PaymentMethod string

const (
	PaymentWechat PaymentMethod = "wechat"
	PaymentAlipay PaymentMethod = "alipay"
	PaymentCash   PaymentMethod = "cash"
)

// PaymentStatus tracks payment progress independently of order status
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// Order represents a purchase of a single book
type Order struct {
	ID             string          `gorm:"type:char(36);primaryKey" json:"id"`
	OrderNumber    string          `gorm:"size:50;uniqueIndex;not null" json:"order_number"`
	BookID         string          `gorm:"type:char(36);not null;index" json:"book_id"`
	Book           Book            `gorm:"foreignKey:BookID" json:"book"`
	BuyerID        string          `gorm:"type:char(36);not null;index" json:"buyer_id"`
	Buyer          User            `gorm:"foreignKey:BuyerID" json:"buyer"`
	SellerID       string          `gorm:"type:char(36);not null;index" json:"seller_id"`
	Seller         User            `gorm:"foreignKey:SellerID" json:"seller"`
	BookPrice      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"book_price"`
	DeliveryFee    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"delivery_fee"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Status         OrderStatus     `gorm:"size:20;not null;default:'pending'" json:"status"`
	DeliveryMethod DeliveryMethod  `gorm:"size:20;not null" json:"delivery_method"`
	MeetupLocation *string         `gorm:"size:200" json:"meetup_location,omitempty"`
	MeetupTime     *time.Time      `json:"meetup_time,omitempty"`
	PaymentMethod  *PaymentMethod  `gorm:"size:20" json:"payment_method,omitempty"`
	PaymentStatus  PaymentStatus   `gorm:"size:20;not null;default:'pending'" json:"payment_status"`
	PaidAt         *time.Time      `json:"paid_at,omitempty"`
	CompletedAt    *time.Time      `json:"completed_at,omitempty"`
	CancelledAt    *time.Time      `json:"cancelled_at,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// BeforeCreate assigns a UUID primary key if none was set
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
