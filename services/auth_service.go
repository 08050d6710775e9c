package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	mysqldrv "github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tourism-backend/models"
	"tourism-backend/utils"
)

const DefaultSessionTTL = 7 * 24 * time.Hour

// AuthService owns accounts, sessions and the profile lookup behind them.
// It is the only code that touches password hashes or session rows.
type AuthService struct {
	DB         *gorm.DB
	SessionTTL time.Duration
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db, SessionTTL: DefaultSessionTTL}
}

// SessionData is the resolved identity passed down to handlers. User is
// always well-formed when SessionData is non-nil, even if the profile row
// does not exist yet.
type SessionData struct {
	Session models.Session
	User    models.User
}

func isDuplicateKey(err error) bool {
	var myErr *mysqldrv.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1062 {
		return true
	}
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique")
}

func (s *AuthService) createAccount(email, password, fullName string, role models.UserRole) (models.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	fullName = strings.TrimSpace(fullName)
	if email == "" || password == "" || fullName == "" {
		return models.Account{}, errors.New("email, password and full name are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Account{}, fmt.Errorf("hash password: %w", err)
	}

	acct := models.Account{Email: email, PasswordHash: string(hash), FullName: fullName}
	if err := s.DB.Create(&acct).Error; err != nil {
		if isDuplicateKey(err) {
			return models.Account{}, ErrEmailTaken
		}
		return models.Account{}, fmt.Errorf("create account: %w", err)
	}

	profile := models.User{ID: acct.ID, FullName: fullName, Role: role}
	if err := s.DB.Create(&profile).Error; err != nil {
		// The account exists either way; the resolver synthesizes a
		// profile until the row can be created.
		return models.Account{}, fmt.Errorf("create profile: %w", err)
	}
	return acct, nil
}

// SignUp registers a regular user: an account plus a profile row with
// role=user.
func (s *AuthService) SignUp(email, password, fullName string) (models.Account, error) {
	return s.createAccount(email, password, fullName, models.RoleUser)
}

// CreateAdmin provisions an admin account. Exposed only through the admin
// provisioning endpoint.
func (s *AuthService) CreateAdmin(email, password, fullName string) (models.Account, error) {
	return s.createAccount(email, password, fullName, models.RoleAdmin)
}

// SignInWithPassword verifies credentials and issues a fresh session token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) SignInWithPassword(email, password string) (models.Session, models.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var acct models.Account
	if err := s.DB.Where("email = ?", email).First(&acct).Error; err != nil {
		return models.Session{}, models.Account{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)) != nil {
		return models.Session{}, models.Account{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return models.Session{}, models.Account{}, fmt.Errorf("generate session token: %w", err)
	}
	sess := models.Session{
		Token:     token,
		AccountID: acct.ID,
		ExpiresAt: time.Now().Add(s.SessionTTL),
	}
	if err := s.DB.Create(&sess).Error; err != nil {
		return models.Session{}, models.Account{}, fmt.Errorf("create session: %w", err)
	}
	return sess, acct, nil
}

// SignOut invalidates a session token. Unknown tokens are a no-op.
func (s *AuthService) SignOut(token string) {
	if token == "" {
		return
	}
	if err := s.DB.Delete(&models.Session{}, "token = ?", token).Error; err != nil {
		log.Printf("auth: failed to delete session: %v", err)
	}
}

// ResolveSession maps a bearer token to the caller's identity. Any backend
// error reads as "no session": the resolver fails closed to anonymous,
// never open to a role. When the profile row is missing it synthesizes a
// transient role=user profile from the account metadata so downstream code
// always receives a well-formed User alongside a live session.
func (s *AuthService) ResolveSession(token string) *SessionData {
	if token == "" {
		return nil
	}

	var sess models.Session
	if err := s.DB.Where("token = ?", token).First(&sess).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("auth: session lookup failed: %v", err)
		}
		return nil
	}
	if sess.Expired() {
		return nil
	}

	var user models.User
	if err := s.DB.Where("id = ?", sess.AccountID).First(&user).Error; err != nil {
		name := "User"
		var acct models.Account
		if aerr := s.DB.Where("id = ?", sess.AccountID).First(&acct).Error; aerr == nil && acct.FullName != "" {
			name = acct.FullName
		}
		now := time.Now()
		user = models.User{
			ID:        sess.AccountID,
			FullName:  name,
			Role:      models.RoleUser,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	return &SessionData{Session: sess, User: user}
}

// LookupRole re-queries the role directly from storage, bypassing anything
// cached on the request. The admin guard and the admin login path use it so
// a stale privileged session never passes on old data.
func (s *AuthService) LookupRole(accountID string) (models.UserRole, error) {
	var user models.User
	if err := s.DB.Select("role").Where("id = ?", accountID).First(&user).Error; err != nil {
		return "", err
	}
	return user.Role, nil
}

// AccountByID fetches the auth account, used for contact details such as the
// confirmation email address.
func (s *AuthService) AccountByID(id string) (models.Account, error) {
	var acct models.Account
	if err := s.DB.Where("id = ?", id).First(&acct).Error; err != nil {
		return models.Account{}, err
	}
	return acct, nil
}
