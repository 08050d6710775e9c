package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tourism-backend/middleware"
	"tourism-backend/models"
	"tourism-backend/services"
	"tourism-backend/utils"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

type registerPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Register creates a user account plus its profile row.
func (ctrl *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if payload.Email == "" || payload.Password == "" || payload.FullName == "" {
		utils.JSONError(c, http.StatusBadRequest, "all fields are required")
		return
	}

	acct, err := ctrl.Auth.SignUp(payload.Email, payload.Password, payload.FullName)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			utils.JSONError(c, http.StatusConflict, "email already registered")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "registration failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Registration successful! You can now log in.",
		"data": gin.H{
			"id":        acct.ID,
			"email":     acct.Email,
			"full_name": acct.FullName,
		},
	})
}

// Login verifies credentials and issues a session cookie. With role=admin it
// additionally re-checks the role fresh from storage and signs the new
// session straight back out when the check fails, so a failed admin login
// never leaves a privileged cookie behind.
func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if payload.Email == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "email and password are required")
		return
	}

	sess, acct, err := ctrl.Auth.SignInWithPassword(payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "login failed")
		return
	}

	if strings.EqualFold(strings.TrimSpace(payload.Role), string(models.RoleAdmin)) {
		role, rerr := ctrl.Auth.LookupRole(acct.ID)
		if rerr != nil {
			ctrl.Auth.SignOut(sess.Token)
			utils.JSONError(c, http.StatusForbidden, "user not found or database error")
			return
		}
		if role != models.RoleAdmin {
			ctrl.Auth.SignOut(sess.Token)
			utils.JSONError(c, http.StatusForbidden, "you do not have admin privileges")
			return
		}
	}

	middleware.SetSessionCookie(c, sess.Token, ctrl.Auth.SessionTTL)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   sess.Token,
		"user": gin.H{
			"id":        acct.ID,
			"email":     acct.Email,
			"full_name": acct.FullName,
		},
	})
}

// Logout invalidates the session. Non-script clients posting a form get a
// redirect home; API clients get JSON.
func (ctrl *AuthController) Logout(c *gin.Context) {
	token := middleware.TokenFromRequest(c)
	ctrl.Auth.SignOut(token)
	middleware.ClearSessionCookie(c)

	if strings.Contains(c.GetHeader("Accept"), "text/html") {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "signed out"})
}

// Me returns the resolved profile for the current session.
func (ctrl *AuthController) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "not signed in")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}
