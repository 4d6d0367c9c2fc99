package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Inaglyite/secondhand-books-api/config"
	"github.com/Inaglyite/secondhand-books-api/models"
)

func adminRoutes() *gin.Engine {
	router := setupTestRouter()
	admin := router.Group("/admin")
	admin.GET("", AdminDashboard)
	admin.GET("/users", AdminUsers)
	admin.POST("/users", AdminCreateUser)
	admin.POST("/users/:id/toggle", AdminToggleUser)
	admin.POST("/users/:id/delete", AdminDeleteUser)
	admin.GET("/books", AdminBooks)
	admin.POST("/books/:id/status", AdminSetBookStatus)
	admin.POST("/books/:id/delete", AdminDeleteBook)
	admin.GET("/orders", AdminOrders)
	admin.POST("/orders/:id/status", AdminSetOrderStatus)
	admin.POST("/orders/:id/delete", AdminDeleteOrder)
	return router
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAdminDashboard(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)
	router := adminRoutes()
	createTestUser(t, db, "s1")

	w := doRequest(router, "GET", "/admin")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Users: 1")
}

func TestAdminUsersPage(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)
	router := adminRoutes()
	createTestUser(t, db, "s1")

	w := doRequest(router, "GET", "/admin/users")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "User s1")
}

func TestAdminCreateUserRedirects(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)
	router := adminRoutes()

	w := postForm(router, "/admin/users", url.Values{
		"student_id": {"s9"},
		"name":       {"Admin Made"},
		"phone":      {"123"},
		"password":   {"pw"},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/users", w.Header().Get("Location"))

	var user models.User
	assert.NoError(t, db.Where("student_id = ?", "s9").First(&user).Error)
	assert.NotEqual(t, "pw", user.HashedPassword)
}

func TestAdminToggleUser(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)
	router := adminRoutes()
	user := createTestUser(t, db, "s1")

	w := postForm(router, "/admin/users/"+user.ID+"/toggle", url.Values{})
	assert.Equal(t, http.StatusSeeOther, w.Code)

	var toggled models.User
	assert.NoError(t, db.First(&toggled, "id = ?", user.ID).Error)
	assert.False(t, toggled.IsActive)
}

func TestAdminDeleteUser(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)
	router := adminRoutes()
	user := createTestUser(t, db, "s1")

	w := postForm(router, "/admin/users/"+user.ID+"/delete", url.Values{})
	assert.Equal(t, http.StatusSeeOther, w.Code)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestAdminSetBookStatus(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)
	router := adminRoutes()
	seller := createTestUser(t, db, "s1")
	book := createTestBook(t, db, seller, "Algorithms", "25.00")

	w := postForm(router, "/admin/books/"+book.ID+"/status", url.Values{"status": {"off_shelf"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)

	var updated models.Book
	assert.NoError(t, db.First(&updated, "id = ?", book.ID).Error)
	assert.Equal(t, models.BookOffShelf, updated.Status)

	// Unknown values are ignored, not written
	w = postForm(router, "/admin/books/"+book.ID+"/status", url.Values{"status": {"vaporized"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.NoError(t, db.First(&updated, "id = ?", book.ID).Error)
	assert.Equal(t, models.BookOffShelf, updated.Status)
}

func TestAdminSetOrderStatusCascades(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)
	router := adminRoutes()
	seller := createTestUser(t, db, "s1")
	buyer := createTestUser(t, db, "s2")
	book := createTestBook(t, db, seller, "Algorithms", "30.00")

	orderAPI := orderRoutes()
	w := postJSON(orderAPI, "/api/orders", gin.H{"book_id": book.ID, "buyer_id": buyer.ID, "delivery_method": "meetup"})
	assert.Equal(t, http.StatusCreated, w.Code)
	orderID := decodeBody(t, w)["data"].(map[string]interface{})["id"].(string)

	wf := postForm(router, "/admin/orders/"+orderID+"/status", url.Values{"status": {"completed"}})
	assert.Equal(t, http.StatusSeeOther, wf.Code)

	var sold models.Book
	assert.NoError(t, db.First(&sold, "id = ?", book.ID).Error)
	assert.Equal(t, models.BookSold, sold.Status, "admin completion cascades like the API")
}

func TestAdminDeleteOrderReleasesReservedBook(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)
	router := adminRoutes()
	seller := createTestUser(t, db, "s1")
	buyer := createTestUser(t, db, "s2")
	book := createTestBook(t, db, seller, "Algorithms", "30.00")

	orderAPI := orderRoutes()
	w := postJSON(orderAPI, "/api/orders", gin.H{"book_id": book.ID, "buyer_id": buyer.ID, "delivery_method": "meetup"})
	orderID := decodeBody(t, w)["data"].(map[string]interface{})["id"].(string)

	wf := postForm(router, "/admin/orders/"+orderID+"/delete", url.Values{})
	assert.Equal(t, http.StatusSeeOther, wf.Code)

	var released models.Book
	assert.NoError(t, db.First(&released, "id = ?", book.ID).Error)
	assert.Equal(t, models.BookAvailable, released.Status)
}

func TestAdminOrdersPage(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)
	router := adminRoutes()
	seller := createTestUser(t, db, "s1")
	buyer := createTestUser(t, db, "s2")
	book := createTestBook(t, db, seller, "Algorithms", "30.00")

	orderAPI := orderRoutes()
	w := postJSON(orderAPI, "/api/orders", gin.H{"book_id": book.ID, "buyer_id": buyer.ID, "delivery_method": "meetup"})
	assert.Equal(t, http.StatusCreated, w.Code)

	page := doRequest(router, "GET", "/admin/orders")
	assert.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "Algorithms")
}
