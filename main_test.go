package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Inaglyite/secondhand-books-api/config"
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

// TestHealthCheck is a unit test for the healthCheck handler function
func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	healthCheck(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err, "Response should be valid JSON")
	assert.Equal(t, "ok", response["status"])
	assert.Len(t, response, 1, "Health response carries exactly one field")
}

// TestHealthEndpointIntegration tests /api/health with full routing
func TestHealthEndpointIntegration(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.SetDB(setupTestDB(t))
	router := setupRouter()

	req, _ := http.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

// TestDebugInfo tests /api/debug/info entity counts
func TestDebugInfo(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.SetDB(setupTestDB(t))
	router := setupRouter()

	req, _ := http.NewRequest("GET", "/api/debug/info", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, float64(0), response["users"])
	assert.Equal(t, float64(0), response["books"])
}

// TestHealthEndpointMethod tests that only GET is routed
func TestHealthEndpointMethod(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.SetDB(setupTestDB(t))
	router := setupRouter()

	req, _ := http.NewRequest("POST", "/api/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
