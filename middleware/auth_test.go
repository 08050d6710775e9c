package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

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

func expectSession(mock sqlmock.Sqlmock, accountID string) {
	mock.ExpectQuery("SELECT .* FROM `sessions`").
		WillReturnRows(sqlmock.NewRows([]string{"token", "account_id", "expires_at", "created_at"}).
			AddRow("tok", accountID, time.Now().Add(time.Hour), time.Now()))
}

func expectProfile(mock sqlmock.Sqlmock, accountID string, role models.UserRole) {
	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "role"}).
			AddRow(accountID, "Asha Menon", string(role)))
}

func guardedRequest(t *testing.T, guard gin.HandlerFunc, withToken bool) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", guard, func(c *gin.Context) {
		user, ok := CurrentUser(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": user.ID})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected?tab=upcoming", nil)
	if withToken {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok"})
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAuthRedirectsAnonymousToLogin(t *testing.T) {
	db, _ := newMockDB(t)
	auth := services.NewAuthService(db)

	w := guardedRequest(t, RequireAuth(auth, ""), false)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?returnUrl=%2Fprotected%3Ftab%3Dupcoming", w.Header().Get("Location"))
}

func TestRequireAuthAdminMismatchRedirectsHome(t *testing.T) {
	db, mock := newMockDB(t)
	auth := services.NewAuthService(db)

	expectSession(mock, "acct-1")
	expectProfile(mock, "acct-1", models.RoleUser)

	w := guardedRequest(t, RequireAuth(auth, models.RoleAdmin), true)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestRequireAuthUserMismatchRedirectsToAdmin(t *testing.T) {
	db, mock := newMockDB(t)
	auth := services.NewAuthService(db)

	expectSession(mock, "acct-1")
	expectProfile(mock, "acct-1", models.RoleAdmin)

	w := guardedRequest(t, RequireAuth(auth, models.RoleUser), true)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
}

func TestRequireAuthInjectsUser(t *testing.T) {
	db, mock := newMockDB(t)
	auth := services.NewAuthService(db)

	expectSession(mock, "acct-1")
	expectProfile(mock, "acct-1", models.RoleUser)

	w := guardedRequest(t, RequireAuth(auth, models.RoleUser), true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "acct-1")
}

func TestRequireAdminAreaSignsOutNonAdmin(t *testing.T) {
	db, mock := newMockDB(t)
	auth := services.NewAuthService(db)

	expectSession(mock, "acct-1")
	expectProfile(mock, "acct-1", models.RoleUser)
	// Fresh role check, then sign-out of the stale session.
	expectProfile(mock, "acct-1", models.RoleUser)
	mock.ExpectExec("DELETE FROM `sessions`").
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := guardedRequest(t, RequireAdminArea(auth), true)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin-login?error=not_admin", w.Header().Get("Location"))
	assert.NoError(t, mock.ExpectationsWereMet())

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	cleared := false
	for _, cookie := range cookies {
		if cookie.Name == SessionCookieName && cookie.Value == "" && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "session cookie should be cleared")
}

func TestRequireAdminAreaSignsOutOnLookupError(t *testing.T) {
	db, mock := newMockDB(t)
	auth := services.NewAuthService(db)

	expectSession(mock, "acct-1")
	expectProfile(mock, "acct-1", models.RoleAdmin)
	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnError(assert.AnError)
	mock.ExpectExec("DELETE FROM `sessions`").
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := guardedRequest(t, RequireAdminArea(auth), true)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin-login?error=server_error", w.Header().Get("Location"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequireAdminAreaPassesAdmin(t *testing.T) {
	db, mock := newMockDB(t)
	auth := services.NewAuthService(db)

	expectSession(mock, "acct-1")
	expectProfile(mock, "acct-1", models.RoleAdmin)
	expectProfile(mock, "acct-1", models.RoleAdmin)

	w := guardedRequest(t, RequireAdminArea(auth), true)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTokenFromRequestPrefersCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookie-token"})
	req.Header.Set("Authorization", "Bearer header-token")

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	assert.Equal(t, "cookie-token", TokenFromRequest(c))

	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.Header.Set("Authorization", "Bearer header-token")
	c2, _ := gin.CreateTestContext(httptest.NewRecorder())
	c2.Request = req2
	assert.Equal(t, "header-token", TokenFromRequest(c2))
}
