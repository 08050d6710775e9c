package services

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"tourism-backend/models"
)

func sessionRow(token, accountID string, expiresAt time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"token", "account_id", "expires_at", "created_at"}).
		AddRow(token, accountID, expiresAt, time.Now())
}

func TestResolveSessionAnonymousWhenNoToken(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewAuthService(db)

	assert.Nil(t, svc.ResolveSession(""))
}

func TestResolveSessionAnonymousWhenUnknownToken(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db)

	mock.ExpectQuery("SELECT .* FROM `sessions`").
		WillReturnRows(sqlmock.NewRows([]string{"token"}))

	assert.Nil(t, svc.ResolveSession("nope"))
}

func TestResolveSessionAnonymousOnBackendError(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db)

	mock.ExpectQuery("SELECT .* FROM `sessions`").
		WillReturnError(errors.New("connection refused"))

	// Backend failures read as "no session", never as any role.
	assert.Nil(t, svc.ResolveSession("tok"))
}

func TestResolveSessionExpiredIsAnonymous(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db)

	mock.ExpectQuery("SELECT .* FROM `sessions`").
		WillReturnRows(sessionRow("tok", "acct-1", time.Now().Add(-time.Hour)))

	assert.Nil(t, svc.ResolveSession("tok"))
}

func TestResolveSessionUsesProfileRole(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db)

	mock.ExpectQuery("SELECT .* FROM `sessions`").
		WillReturnRows(sessionRow("tok", "acct-1", time.Now().Add(time.Hour)))
	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "role"}).
			AddRow("acct-1", "Asha Menon", "admin"))

	data := svc.ResolveSession("tok")
	require.NotNil(t, data)
	assert.Equal(t, "acct-1", data.User.ID)
	assert.Equal(t, models.RoleAdmin, data.User.Role)
	assert.Equal(t, "Asha Menon", data.User.FullName)
}

func TestResolveSessionSynthesizesMissingProfile(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db)

	mock.ExpectQuery("SELECT .* FROM `sessions`").
		WillReturnRows(sessionRow("tok", "acct-1", time.Now().Add(time.Hour)))
	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnError(errors.New("table 'tourism_db.users' doesn't exist"))
	mock.ExpectQuery("SELECT .* FROM `accounts`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "full_name"}).
			AddRow("acct-1", "asha@example.com", "Asha Menon"))

	data := svc.ResolveSession("tok")
	require.NotNil(t, data)
	assert.Equal(t, "acct-1", data.User.ID)
	assert.Equal(t, "Asha Menon", data.User.FullName)
	// A synthesized profile is never privileged.
	assert.Equal(t, models.RoleUser, data.User.Role)
}

func accountRow(id, email, password string) *sqlmock.Rows {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return sqlmock.NewRows([]string{"id", "email", "password_hash", "full_name"}).
		AddRow(id, email, string(hash), "Asha Menon")
}

func TestSignInWithPasswordWrongPassword(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db)

	mock.ExpectQuery("SELECT .* FROM `accounts`").
		WillReturnRows(accountRow("acct-1", "asha@example.com", "right-password"))

	_, _, err := svc.SignInWithPassword("asha@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignInWithPasswordUnknownEmail(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db)

	mock.ExpectQuery("SELECT .* FROM `accounts`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, _, err := svc.SignInWithPassword("nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignInWithPasswordIssuesSession(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db)

	mock.ExpectQuery("SELECT .* FROM `accounts`").
		WillReturnRows(accountRow("acct-1", "asha@example.com", "secret"))
	mock.ExpectExec("INSERT INTO `sessions`").
		WillReturnResult(sqlmock.NewResult(1, 1))

	sess, acct, err := svc.SignInWithPassword("Asha@Example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "acct-1", acct.ID)
	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, "acct-1", sess.AccountID)
	assert.True(t, sess.ExpiresAt.After(time.Now()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSignOutDeletesSession(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db)

	mock.ExpectExec("DELETE FROM `sessions`").
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc.SignOut("tok")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLookupRolePropagatesError(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db)

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnError(errors.New("boom"))

	_, err := svc.LookupRole("acct-1")
	assert.Error(t, err)
}
