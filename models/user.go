package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// Account is the credential record owned by the auth service. The password
// hash never leaves services; handlers only ever see User.
type Account struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:150" json:"email"`
	PasswordHash string    `gorm:"size:255" json:"-"`
	FullName     string    `gorm:"size:255" json:"full_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// User is the profile row, keyed 1:1 with an Account by id. The row may not
// exist yet (profile table provisioned after auth); callers get a transient
// User synthesized from the account in that case, so this struct is always
// well-formed from a handler's point of view.
type User struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	FullName    string    `gorm:"size:255" json:"full_name"`
	PhoneNumber *string   `gorm:"size:32" json:"phone_number"`
	Address     *string   `gorm:"size:255" json:"address"`
	City        *string   `gorm:"size:100" json:"city"`
	State       *string   `gorm:"size:100" json:"state"`
	Country     *string   `gorm:"size:100" json:"country"`
	PostalCode  *string   `gorm:"size:20" json:"postal_code"`
	Role        UserRole  `gorm:"size:16;default:user" json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Session is an opaque bearer token with an expiry. Issued on login,
// deleted on logout or when an admin role check fails.
type Session struct {
	Token     string    `gorm:"primaryKey;size:128" json:"-"`
	AccountID string    `gorm:"index;size:36" json:"account_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Session) Expired() bool {
	return !s.ExpiresAt.IsZero() && s.ExpiresAt.Before(time.Now())
}
