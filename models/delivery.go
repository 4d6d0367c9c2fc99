package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CourierStatus is the approval state of a courier application
type CourierStatus string

const (
	CourierPending   CourierStatus = "pending"
	CourierApproved  CourierStatus = "approved"
	CourierRejected  CourierStatus = "rejected"
	CourierSuspended CourierStatus = "suspended"
)

// Courier is a student approved to run deliveries. Modeled for the schema;
// no endpoint dispatches couriers.
type Courier struct {
	ID              string          `gorm:"type:char(36);primaryKey" json:"id"`
	UserID          string          `gorm:"type:char(36);not null;uniqueIndex" json:"user_id"`
	User            User            `gorm:"foreignKey:UserID" json:"user"`
	IDCardNumber    string          `gorm:"size:20;not null" json:"id_card_number"`
	Status          CourierStatus   `gorm:"size:20;not null;default:'pending'" json:"status"`
	TotalOrders     int             `gorm:"default:0" json:"total_orders"`
	CompletedOrders int             `gorm:"default:0" json:"completed_orders"`
	Rating          decimal.Decimal `gorm:"type:decimal(3,2);default:5.0" json:"rating"`
	IsOnline        bool            `gorm:"default:false" json:"is_online"`
	LastOnlineTime  *time.Time      `json:"last_online_time,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// TableName specifies the table name for the Courier model
func (Courier) TableName() string {
	return "couriers"
}

// BeforeCreate assigns a UUID primary key if none was set
func (c *Courier) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// DeliveryTaskStatus tracks a delivery from acceptance to handover
type DeliveryTaskStatus string

const (
	DeliveryTaskPending    DeliveryTaskStatus = "pending"
	DeliveryTaskAccepted   DeliveryTaskStatus = "accepted"
	DeliveryTaskPickedUp   DeliveryTaskStatus = "picked_up"
	DeliveryTaskDelivering DeliveryTaskStatus = "delivering"
	DeliveryTaskDelivered  DeliveryTaskStatus = "delivered"
	DeliveryTaskCancelled  DeliveryTaskStatus = "cancelled"
)

// DeliveryTask is a courier assignment for a delivery-method order.
// Modeled for the schema; no endpoint creates tasks.
type DeliveryTask struct {
	ID               string             `gorm:"type:char(36);primaryKey" json:"id"`
	OrderID          string             `gorm:"type:char(36);not null;index" json:"order_id"`
	Order            Order              `gorm:"foreignKey:OrderID" json:"-"`
	CourierID        *string            `gorm:"type:char(36);index" json:"courier_id,omitempty"`
	PickupLocation   string             `gorm:"size:200;not null" json:"pickup_location"`
	DeliveryLocation string             `gorm:"size:200;not null" json:"delivery_location"`
	DeliveryFee      decimal.Decimal    `gorm:"type:decimal(10,2);not null;default:0" json:"delivery_fee"`
	Status           DeliveryTaskStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	PickupCode       *string            `gorm:"size:10" json:"pickup_code,omitempty"`
	DeliveryCode     *string            `gorm:"size:10" json:"delivery_code,omitempty"`
	AcceptedAt       *time.Time         `json:"accepted_at,omitempty"`
	PickedUpAt       *time.Time         `json:"picked_up_at,omitempty"`
	DeliveredAt      *time.Time         `json:"delivered_at,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

// TableName specifies the table name for the DeliveryTask model
func (DeliveryTask) TableName() string {
	return "delivery_tasks"
}

// BeforeCreate assigns a UUID primary key if none was set
func (d *DeliveryTask) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
