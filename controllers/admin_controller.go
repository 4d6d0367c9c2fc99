package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Inaglyite/secondhand-books-api/config"
	"github.com/Inaglyite/secondhand-books-api/models"
)

// The admin console is a thin HTML view over the same entity operations as
// the JSON API. Every POST redirects back to the listing it came from.

// AdminDashboard handles GET /admin
func AdminDashboard(c *gin.Context) {
	db := config.GetDB()

	var users, books, orders int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Book{}).Count(&books)
	db.Model(&models.Order{}).Count(&orders)

	c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{
		"Users":  users,
		"Books":  books,
		"Orders": orders,
	})
}

// AdminUsers handles GET /admin/users
func AdminUsers(c *gin.Context) {
	db := config.GetDB()

	var users []models.User
	db.Order("created_at DESC").Limit(100).Find(&users)

	c.HTML(http.StatusOK, "admin_users.html", gin.H{"Users": users})
}

// AdminCreateUser handles POST /admin/users
func AdminCreateUser(c *gin.Context) {
	db := config.GetDB()

	studentID := c.PostForm("student_id")
	name := c.PostForm("name")
	phone := c.PostForm("phone")
	password := c.PostForm("password")

	if studentID != "" && name != "" && phone != "" && password != "" {
		var existing models.User
		if err := db.Where("student_id = ?", studentID).First(&existing).Error; err != nil {
			digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err == nil {
				db.Create(&models.User{
					StudentID:      studentID,
					Name:           name,
					Phone:          phone,
					HashedPassword: string(digest),
					CreditScore:    100,
					IsActive:       true,
				})
			}
		}
	}

	c.Redirect(http.StatusSeeOther, "/admin/users")
}

// AdminToggleUser handles POST /admin/users/:id/toggle
func AdminToggleUser(c *gin.Context) {
	db := config.GetDB()

	var user models.User
	if err := db.First(&user, "id = ?", c.Param("id")).Error; err == nil {
		db.Model(&user).Update("is_active", !user.IsActive)
	}

	c.Redirect(http.StatusSeeOther, "/admin/users")
}

// AdminDeleteUser handles POST /admin/users/:id/delete
func AdminDeleteUser(c *gin.Context) {
	db := config.GetDB()
	db.Delete(&models.User{}, "id = ?", c.Param("id"))
	c.Redirect(http.StatusSeeOther, "/admin/users")
}

// AdminBooks handles GET /admin/books
func AdminBooks(c *gin.Context) {
	db := config.GetDB()

	var books []models.Book
	db.Order("created_at DESC").Limit(50).Find(&books)

	c.HTML(http.StatusOK, "admin_books.html", gin.H{"Books": books})
}

// AdminSetBookStatus handles POST /admin/books/:id/status
func AdminSetBookStatus(c *gin.Context) {
	db := config.GetDB()

	status := models.BookStatus(c.PostForm("status"))
	switch status {
	case models.BookAvailable, models.BookReserved, models.BookSold, models.BookOffShelf:
		db.Model(&models.Book{}).Where("id = ?", c.Param("id")).Update("status", status)
	}

	c.Redirect(http.StatusSeeOther, "/admin/books")
}

// AdminDeleteBook handles POST /admin/books/:id/delete
func AdminDeleteBook(c *gin.Context) {
	db := config.GetDB()
	db.Delete(&models.Book{}, "id = ?", c.Param("id"))
	c.Redirect(http.StatusSeeOther, "/admin/books")
}

// AdminOrders handles GET /admin/orders
func AdminOrders(c *gin.Context) {
	db := config.GetDB()

	var orders []models.Order
	db.Preload("Book").Order("created_at DESC").Limit(100).Find(&orders)

	c.HTML(http.StatusOK, "admin_orders.html", gin.H{"Orders": orders})
}

// AdminSetOrderStatus handles POST /admin/orders/:id/status - drives the same
// cascade logic as the JSON API
func AdminSetOrderStatus(c *gin.Context) {
	db := config.GetDB()

	status := models.OrderStatus(c.PostForm("status"))
	switch status {
	case models.OrderPending, models.OrderConfirmed, models.OrderPaid, models.OrderShipping,
		models.OrderCompleted, models.OrderCancelled, models.OrderRefunded:
		var order models.Order
		if err := db.First(&order, "id = ?", c.Param("id")).Error; err == nil {
			_ = applyOrderStatus(db, &order, status, nil)
		}
	}

	c.Redirect(http.StatusSeeOther, "/admin/orders")
}

// AdminDeleteOrder handles POST /admin/orders/:id/delete - releases a
// still-reserved book like the API delete
func AdminDeleteOrder(c *gin.Context) {
	db := config.GetDB()

	var order models.Order
	if err := db.First(&order, "id = ?", c.Param("id")).Error; err == nil {
		_ = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.Book{}).
				Where("id = ? AND status = ?", order.BookID, models.BookReserved).
				Update("status", models.BookAvailable).Error; err != nil {
				return err
			}
			return tx.Delete(&order).Error
		})
	}

	c.Redirect(http.StatusSeeOther, "/admin/orders")
}
