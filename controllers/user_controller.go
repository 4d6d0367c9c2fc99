package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Inaglyite/secondhand-books-api/config"
	"github.com/Inaglyite/secondhand-books-api/models"
)

// CreateUserRequest represents the request body for registering a user
type CreateUserRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

// UpdateUserRequest represents the request body for a partial user update
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	IsActive *bool   `json:"is_active"`
}

// CreateUser handles POST /api/users - registers a new user
func CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data: "+err.Error())
		return
	}

	db := config.GetDB()

	// Uniqueness pre-check on student_id
	var existing models.User
	if err := db.Where("student_id = ?", req.StudentID).First(&existing).Error; err == nil {
		respondError(c, http.StatusBadRequest, "STUDENT_ID_EXISTS", "student_id already registered")
		return
	}

	// Only the one-way digest is ever stored
	digest, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "HASH_ERROR", "Failed to hash password")
		return
	}

	user := models.User{
		StudentID:      req.StudentID,
		Name:           req.Name,
		Phone:          req.Phone,
		HashedPassword: string(digest),
		CreditScore:    100,
		IsActive:       true,
	}

	if err := db.Create(&user).Error; err != nil {
		// Backstop for a racing registration slipping past the pre-check
		// (works with both MySQL and SQLite)
		errMsg := strings.ToLower(err.Error())
		if strings.Contains(errMsg, "duplicate") || strings.Contains(errMsg, "unique") {
			respondError(c, http.StatusBadRequest, "STUDENT_ID_EXISTS", "student_id already registered")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create user")
		return
	}

	respondData(c, http.StatusCreated, user)
}

// ListUsers handles GET /api/users - up to 100 users, newest first
func ListUsers(c *gin.Context) {
	db := config.GetDB()

	var users []models.User
	if err := db.Order("created_at DESC").Limit(100).Find(&users).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to list users")
		return
	}

	respondData(c, http.StatusOK, users)
}

// UpdateUser handles PATCH /api/users/:id - applies only the supplied fields
func UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data: "+err.Error())
		return
	}

	db := config.GetDB()

	var user models.User
	if err := db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load user")
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := db.Model(&user).Updates(updates).Error; err != nil {
			respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update user")
			return
		}
	}

	respondData(c, http.StatusOK, user)
}

// DeleteUser handles DELETE /api/users/:id - hard delete
func DeleteUser(c *gin.Context) {
	db := config.GetDB()

	var user models.User
	if err := db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load user")
		return
	}

	if err := db.Delete(&user).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete user")
		return
	}

	respondData(c, http.StatusOK, gin.H{"deleted": user.ID})
}
