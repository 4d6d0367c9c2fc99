package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Inaglyite/secondhand-books-api/config"
	"github.com/Inaglyite/secondhand-books-api/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := config.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.SetHTMLTemplate(AdminTemplates())
	return router
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func patchJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req, _ := http.NewRequest("PATCH", path, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func doRequest(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Response is not valid JSON: %v", err)
	}
	return response
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	response := decodeBody(t, w)
	errObj, ok := response["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("Response has no error object: %s", w.Body.String())
	}
	code, _ := errObj["code"].(string)
	return code
}

func userRoutes() *gin.Engine {
	router := setupTestRouter()
	router.POST("/api/users", CreateUser)
	router.GET("/api/users", ListUsers)
	router.PATCH("/api/users/:id", UpdateUser)
	router.DELETE("/api/users/:id", DeleteUser)
	return router
}

func TestCreateUser(t *testing.T) {
	config.SetDB(setupTestDB(t))
	router := userRoutes()

	w := postJSON(router, "/api/users", gin.H{
		"student_id": "s1",
		"name":       "Alice",
		"phone":      "13800000000",
		"password":   "hunter2",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	response := decodeBody(t, w)
	assert.Equal(t, true, response["success"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "s1", data["student_id"])
	assert.Equal(t, float64(100), data["credit_score"])
	assert.NotEmpty(t, data["id"])

	// Only the one-way digest may be stored
	var user models.User
	assert.NoError(t, config.GetDB().Where("student_id = ?", "s1").First(&user).Error)
	assert.NotEqual(t, "hunter2", user.HashedPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte("hunter2")))
}

func TestCreateUserDuplicateStudentID(t *testing.T) {
	config.SetDB(setupTestDB(t))
	router := userRoutes()

	body := gin.H{"student_id": "s1", "name": "Alice", "phone": "123", "password": "pw"}
	assert.Equal(t, http.StatusCreated, postJSON(router, "/api/users", body).Code)

	w := postJSON(router, "/api/users", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "STUDENT_ID_EXISTS", errorCode(t, w))
}

func TestCreateUserValidation(t *testing.T) {
	config.SetDB(setupTestDB(t))
	router := userRoutes()

	w := postJSON(router, "/api/users", gin.H{"student_id": "s1", "name": "Alice"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, w))
}

func TestListUsersNewestFirstCapped(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)
	router := userRoutes()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 105; i++ {
		user := models.User{
			StudentID: fmt.Sprintf("s%03d", i),
			Name:      fmt.Sprintf("User %03d", i),
			Phone:     "123",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		assert.NoError(t, db.Create(&user).Error)
	}

	w := doRequest(router, "GET", "/api/users")
	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].([]interface{})
	assert.Len(t, data, 100)
	first := data[0].(map[string]interface{})
	assert.Equal(t, "s104", first["student_id"], "newest user should come first")
}

func TestUpdateUserPartial(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)
	router := userRoutes()

	user := models.User{StudentID: "s1", Name: "Alice", Phone: "111", IsActive: true}
	assert.NoError(t, db.Create(&user).Error)

	w := patchJSON(router, "/api/users/"+user.ID, gin.H{"name": "Alicia", "is_active": false})
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.User
	assert.NoError(t, db.First(&updated, "id = ?", user.ID).Error)
	assert.Equal(t, "Alicia", updated.Name)
	assert.Equal(t, "111", updated.Phone, "unsupplied field must not change")
	assert.False(t, updated.IsActive)
}

func TestUpdateUserNotFound(t *testing.T) {
	config.SetDB(setupTestDB(t))
	router := userRoutes()

	w := patchJSON(router, "/api/users/nope", gin.H{"name": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "USER_NOT_FOUND", errorCode(t, w))
}

func TestDeleteUser(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)
	router := userRoutes()

	user := models.User{StudentID: "s1", Name: "Alice", Phone: "111"}
	assert.NoError(t, db.Create(&user).Error)

	w := doRequest(router, "DELETE", "/api/users/"+user.ID)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(0), count, "delete must be a hard delete")
}

func TestDeleteUserNotFound(t *testing.T) {
	config.SetDB(setupTestDB(t))
	router := userRoutes()

	w := doRequest(router, "DELETE", "/api/users/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "USER_NOT_FOUND", errorCode(t, w))
}
