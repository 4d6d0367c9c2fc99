package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Inaglyite/secondhand-books-api/config"
	"github.com/Inaglyite/secondhand-books-api/models"
	"github.com/Inaglyite/secondhand-books-api/utils"
)

// courierDeliveryFee is the flat surcharge for courier delivery; meetup is free
var courierDeliveryFee = decimal.NewFromInt(5)

var (
	errBookNotFound     = errors.New("book not found")
	errBookNotAvailable = errors.New("book not available")
	errBuyerNotFound    = errors.New("buyer not found")
	errSellerNotFound   = errors.New("seller not found")
)

// CreateOrderRequest represents the request body for placing an order
type CreateOrderRequest struct {
	BookID         string  `json:"book_id" binding:"required"`
	BuyerID        string  `json:"buyer_id" binding:"required"`
	DeliveryMethod string  `json:"delivery_method" binding:"required,oneof=meetup delivery"`
	MeetupLocation *string `json:"meetup_location"`
	MeetupTime     *string `json:"meetup_time"`
	PaymentMethod  *string `json:"payment_method" binding:"omitempty,oneof=wechat alipay cash"`
}

// UpdateOrderRequest represents the request body for an order status update
type UpdateOrderRequest struct {
	Status        string  `json:"status" binding:"required,oneof=pending confirmed paid shipping completed cancelled refunded"`
	PaymentStatus *string `json:"payment_status" binding:"omitempty,oneof=pending paid failed refunded"`
}

// parseMeetupTime accepts RFC 3339 or the zone-less form emitted by
// datetime-local inputs
func parseMeetupTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", value)
}

// CreateOrder handles POST /api/orders - places an order and reserves the book.
// The order insert and the reservation commit in one transaction, and the
// reservation is a conditional update so two buyers racing for the same book
// cannot both succeed.
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data: "+err.Error())
		return
	}

	var meetupTime *time.Time
	if req.MeetupTime != nil && *req.MeetupTime != "" {
		t, err := parseMeetupTime(*req.MeetupTime)
		if err != nil {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "meetup_time is not a valid ISO-8601 timestamp")
			return
		}
		meetupTime = &t
	}

	db := config.GetDB()

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var book models.Book
		if err := tx.First(&book, "id = ?", req.BookID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errBookNotFound
			}
			return err
		}
		if book.Status != models.BookAvailable {
			return errBookNotAvailable
		}

		var buyer models.User
		if err := tx.First(&buyer, "id = ?", req.BuyerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errBuyerNotFound
			}
			return err
		}
		var seller models.User
		if err := tx.First(&seller, "id = ?", book.SellerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errSellerNotFound
			}
			return err
		}

		deliveryFee := decimal.Zero
		if models.DeliveryMethod(req.DeliveryMethod) != models.DeliveryMeetup {
			deliveryFee = courierDeliveryFee
		}

		order = models.Order{
			OrderNumber:    utils.GenerateOrderNumber(time.Now()),
			BookID:         book.ID,
			BuyerID:        buyer.ID,
			SellerID:       seller.ID,
			BookPrice:      book.SellingPrice,
			DeliveryFee:    deliveryFee,
			TotalAmount:    book.SellingPrice.Add(deliveryFee),
			Status:         models.OrderPending,
			DeliveryMethod: models.DeliveryMethod(req.DeliveryMethod),
			MeetupLocation: req.MeetupLocation,
			MeetupTime:     meetupTime,
			PaymentStatus:  models.PaymentPending,
		}
		if req.PaymentMethod != nil {
			pm := models.PaymentMethod(*req.PaymentMethod)
			order.PaymentMethod = &pm
		}

		// Conditional reservation: only flips available -> reserved, so a
		// concurrent order that won the race makes this one fail instead of
		// double-booking
		res := tx.Model(&models.Book{}).
			Where("id = ? AND status = ?", book.ID, models.BookAvailable).
			Update("status", models.BookReserved)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errBookNotAvailable
		}

		return tx.Create(&order).Error
	})

	switch {
	case errors.Is(err, errBookNotFound):
		respondError(c, http.StatusNotFound, "BOOK_NOT_FOUND", "Book not found")
		return
	case errors.Is(err, errBookNotAvailable):
		respondError(c, http.StatusConflict, "BOOK_NOT_AVAILABLE", "Book is not available for ordering")
		return
	case errors.Is(err, errBuyerNotFound):
		respondError(c, http.StatusNotFound, "BUYER_NOT_FOUND", "Buyer not found")
		return
	case errors.Is(err, errSellerNotFound):
		respondError(c, http.StatusNotFound, "SELLER_NOT_FOUND", "Seller not found")
		return
	case err != nil:
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create order")
		return
	}

	if err := db.Preload("Book").Preload("Buyer").Preload("Seller").First(&order, "id = ?", order.ID).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load order details")
		return
	}

	respondData(c, http.StatusCreated, order)
}

// ListOrders handles GET /api/orders - up to 100 orders, newest first,
// with buyer_id/seller_id/status filters combined with AND
func ListOrders(c *gin.Context) {
	db := config.GetDB()

	query := db.Preload("Book").Preload("Buyer").Preload("Seller")
	if buyerID := c.Query("buyer_id"); buyerID != "" {
		query = query.Where("buyer_id = ?", buyerID)
	}
	if sellerID := c.Query("seller_id"); sellerID != "" {
		query = query.Where("seller_id = ?", sellerID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	if err := query.Order("created_at DESC").Limit(100).Find(&orders).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to list orders")
		return
	}

	respondData(c, http.StatusOK, orders)
}

// GetOrder handles GET /api/orders/:id
func GetOrder(c *gin.Context) {
	db := config.GetDB()

	var order models.Order
	if err := db.Preload("Book").Preload("Buyer").Preload("Seller").First(&order, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load order")
		return
	}

	respondData(c, http.StatusOK, order)
}

// applyOrderStatus overwrites the order status (and payment status if given)
// and runs the book cascades in one transaction. Used by both the JSON API
// and the admin console.
func applyOrderStatus(db *gorm.DB, order *models.Order, newStatus models.OrderStatus, paymentStatus *string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{"status": newStatus}
		if paymentStatus != nil {
			updates["payment_status"] = *paymentStatus
		}

		switch newStatus {
		case models.OrderCompleted:
			updates["completed_at"] = time.Now()
			// Completion marks the book sold regardless of its prior status
			if err := tx.Model(&models.Book{}).
				Where("id = ?", order.BookID).
				Update("status", models.BookSold).Error; err != nil {
				return err
			}
		case models.OrderCancelled:
			updates["cancelled_at"] = time.Now()
			// Release the reservation, but never clobber a book already
			// sold or pulled off the shelf by another path
			if err := tx.Model(&models.Book{}).
				Where("id = ? AND status = ?", order.BookID, models.BookReserved).
				Update("status", models.BookAvailable).Error; err != nil {
				return err
			}
		}

		return tx.Model(order).Updates(updates).Error
	})
}

// UpdateOrder handles PATCH /api/orders/:id - overwrites the status (any
// transition is accepted) and cascades to the book on completion/cancellation
func UpdateOrder(c *gin.Context) {
	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data: "+err.Error())
		return
	}

	db := config.GetDB()

	var order models.Order
	if err := db.First(&order, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load order")
		return
	}

	if err := applyOrderStatus(db, &order, models.OrderStatus(req.Status), req.PaymentStatus); err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update order")
		return
	}

	if err := db.Preload("Book").Preload("Buyer").Preload("Seller").First(&order, "id = ?", order.ID).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load order details")
		return
	}

	respondData(c, http.StatusOK, order)
}

// DeleteOrder handles DELETE /api/orders/:id - hard delete; a still-reserved
// book is released back to available
func DeleteOrder(c *gin.Context) {
	db := config.GetDB()

	var order models.Order
	if err := db.First(&order, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load order")
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Book{}).
			Where("id = ? AND status = ?", order.BookID, models.BookReserved).
			Update("status", models.BookAvailable).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete order")
		return
	}

	respondData(c, http.StatusOK, gin.H{"deleted": order.ID})
}
