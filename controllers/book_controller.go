package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Inaglyite/secondhand-books-api/config"
	"github.com/Inaglyite/secondhand-books-api/models"
)

// CreateBookRequest represents the request body for listing a book
type CreateBookRequest struct {
	ISBN           string           `json:"isbn" binding:"required"`
	Title          string           `json:"title" binding:"required"`
	Author         string           `json:"author" binding:"required"`
	OriginalPrice  *decimal.Decimal `json:"original_price" binding:"required"`
	SellingPrice   *decimal.Decimal `json:"selling_price" binding:"required"`
	ConditionLevel string           `json:"condition_level" binding:"required,oneof=excellent good fair poor"`
	SellerID       string           `json:"seller_id" binding:"required"`
	Description    *string          `json:"description"`
}

// UpdateBookRequest represents the request body for a partial book update
type UpdateBookRequest struct {
	ISBN           *string          `json:"isbn"`
	Title          *string          `json:"title"`
	Author         *string          `json:"author"`
	Publisher      *string          `json:"publisher"`
	PublishYear    *int             `json:"publish_year"`
	Edition        *string          `json:"edition"`
	CoverImage     *string          `json:"cover_image"`
	Description    *string          `json:"description"`
	OriginalPrice  *decimal.Decimal `json:"original_price"`
	SellingPrice   *decimal.Decimal `json:"selling_price"`
	ConditionLevel *string          `json:"condition_level" binding:"omitempty,oneof=excellent good fair poor"`
}

// SetBookStatusRequest represents the request body for a status overwrite
type SetBookStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=available reserved sold off_shelf"`
}

// ListBooks handles GET /api/books - up to 50 books, newest first, with an
// optional case-insensitive substring match on title, author or ISBN
func ListBooks(c *gin.Context) {
	db := config.GetDB()

	query := db.Preload("Seller")
	if q := c.Query("q"); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(author) LIKE ? OR LOWER(isbn) LIKE ?",
			like, like, like,
		)
	}

	var books []models.Book
	if err := query.Order("created_at DESC").Limit(50).Find(&books).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to list books")
		return
	}

	respondData(c, http.StatusOK, books)
}

// GetBook handles GET /api/books/:id
func GetBook(c *gin.Context) {
	db := config.GetDB()

	var book models.Book
	if err := db.Preload("Seller").First(&book, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "BOOK_NOT_FOUND", "Book not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load book")
		return
	}

	respondData(c, http.StatusOK, book)
}

// CreateBook handles POST /api/books - lists a book as available
func CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data: "+err.Error())
		return
	}

	db := config.GetDB()

	var seller models.User
	if err := db.First(&seller, "id = ?", req.SellerID).Error; err != nil {
		respondError(c, http.StatusBadRequest, "SELLER_NOT_FOUND", "Seller not found")
		return
	}

	book := models.Book{
		ISBN:           req.ISBN,
		Title:          req.Title,
		Author:         req.Author,
		OriginalPrice:  *req.OriginalPrice,
		SellingPrice:   *req.SellingPrice,
		ConditionLevel: models.ConditionLevel(req.ConditionLevel),
		Description:    req.Description,
		SellerID:       req.SellerID,
		Status:         models.BookAvailable,
	}

	if err := db.Create(&book).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create book")
		return
	}

	if err := db.Preload("Seller").First(&book, "id = ?", book.ID).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load book details")
		return
	}

	respondData(c, http.StatusCreated, book)
}

// UpdateBook handles PATCH /api/books/:id - applies only the supplied fields
func UpdateBook(c *gin.Context) {
	var req UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data: "+err.Error())
		return
	}

	db := config.GetDB()

	var book models.Book
	if err := db.First(&book, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "BOOK_NOT_FOUND", "Book not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load book")
		return
	}

	updates := make(map[string]interface{})
	if req.ISBN != nil {
		updates["isbn"] = *req.ISBN
	}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Author != nil {
		updates["author"] = *req.Author
	}
	if req.Publisher != nil {
		updates["publisher"] = *req.Publisher
	}
	if req.PublishYear != nil {
		updates["publish_year"] = *req.PublishYear
	}
	if req.Edition != nil {
		updates["edition"] = *req.Edition
	}
	if req.CoverImage != nil {
		updates["cover_image"] = *req.CoverImage
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.OriginalPrice != nil {
		updates["original_price"] = *req.OriginalPrice
	}
	if req.SellingPrice != nil {
		updates["selling_price"] = *req.SellingPrice
	}
	if req.ConditionLevel != nil {
		updates["condition_level"] = *req.ConditionLevel
	}

	if len(updates) > 0 {
		if err := db.Model(&book).Updates(updates).Error; err != nil {
			respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update book")
			return
		}
	}

	respondData(c, http.StatusOK, book)
}

// DeleteBook handles DELETE /api/books/:id - hard delete. Orders referencing
// the book are left untouched.
func DeleteBook(c *gin.Context) {
	db := config.GetDB()

	var book models.Book
	if err := db.First(&book, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "BOOK_NOT_FOUND", "Book not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load book")
		return
	}

	if err := db.Delete(&book).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete book")
		return
	}

	respondData(c, http.StatusOK, gin.H{"deleted": book.ID})
}

// SetBookStatus handles PATCH /api/books/:id/status - unconditional status
// overwrite, no transition validation
func SetBookStatus(c *gin.Context) {
	var req SetBookStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data: "+err.Error())
		return
	}

	db := config.GetDB()

	var book models.Book
	if err := db.First(&book, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "BOOK_NOT_FOUND", "Book not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load book")
		return
	}

	if err := db.Model(&book).Update("status", models.BookStatus(req.Status)).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update book status")
		return
	}

	respondData(c, http.StatusOK, book)
}
