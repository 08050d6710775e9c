package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tourism-backend/middleware"
	"tourism-backend/models"
	"tourism-backend/services"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return gdb, mock
}

func bookingTestRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	auth := services.NewAuthService(db)
	bookings := services.NewBookingService(db, services.NewCatalogService(db))
	ctrl := NewBookingController(bookings, auth)

	r := gin.New()
	guarded := r.Group("/api/bookings", middleware.RequireAuth(auth, models.RoleUser))
	guarded.GET("/new", ctrl.NewBooking)
	guarded.POST("", ctrl.CreateBooking)
	guarded.GET("/confirmation", ctrl.Confirmation)
	return r
}

func expectUserSession(mock sqlmock.Sqlmock, accountID string) {
	mock.ExpectQuery("SELECT .* FROM `sessions`").
		WillReturnRows(sqlmock.NewRows([]string{"token", "account_id", "expires_at", "created_at"}).
			AddRow("tok", accountID, time.Now().Add(time.Hour), time.Now()))
	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "role"}).
			AddRow(accountID, "Asha Menon", "user"))
}

func authedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "tok"})
	return req
}

func TestNewBookingIncompleteTupleRedirectsHome(t *testing.T) {
	db, mock := newMockDB(t)
	router := bookingTestRouter(t, db)

	expectUserSession(mock, "user-1")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(http.MethodGet,
		"/api/bookings/new?type=hotel&id=hotel-tea-valley", ""))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	// Nothing beyond session resolution touched the database.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewBookingCompleteTupleResolvesItem(t *testing.T) {
	db, mock := newMockDB(t)
	router := bookingTestRouter(t, db)

	expectUserSession(mock, "user-1")
	mock.ExpectQuery("SELECT .* FROM `hotels`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(http.MethodGet,
		"/api/bookings/new?type=hotel&id=hotel-tea-valley&startDate=2024-06-01&endDate=2024-06-03&adults=2&children=1&totalAmount=9000", ""))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Tea Valley Resort")
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestCreateBookingReturnsConfirmationURL(t *testing.T) {
	db, mock := newMockDB(t)
	router := bookingTestRouter(t, db)

	expectUserSession(mock, "user-1")
	mock.ExpectExec("INSERT INTO `bookings`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	// Account lookup for the confirmation email misses; the booking stands.
	mock.ExpectQuery("SELECT .* FROM `accounts`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	body := `{"booking_type":"hotel","item_id":"hotel-tea-valley",
		"start_date":"2024-06-01","end_date":"2024-06-03",
		"adults":2,"children":1,"total_amount":9000}`

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(http.MethodPost, "/api/bookings", body))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "/booking/confirmation?id=")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingRejectsIncompletePayload(t *testing.T) {
	db, mock := newMockDB(t)
	router := bookingTestRouter(t, db)

	expectUserSession(mock, "user-1")

	body := `{"booking_type":"hotel","item_id":"hotel-tea-valley","total_amount":9000}`

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(http.MethodPost, "/api/bookings", body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfirmationMissingIDRedirectsHome(t *testing.T) {
	db, mock := newMockDB(t)
	router := bookingTestRouter(t, db)

	expectUserSession(mock, "user-1")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(http.MethodGet, "/api/bookings/confirmation", ""))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestConfirmationForeignBookingIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	router := bookingTestRouter(t, db)

	expectUserSession(mock, "user-1")
	mock.ExpectQuery("SELECT .* FROM `bookings`").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "booking_type", "item_id",
			"start_date", "end_date", "adults", "children",
			"total_amount", "status", "payment_status",
		}).AddRow("b1", "someone-else", "hotel", "hotel-tea-valley",
			"2024-06-01", "2024-06-03", 2, 1, 9000, "pending", "pending"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(http.MethodGet, "/api/bookings/confirmation?id=b1", ""))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
