package middleware

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tourism-backend/models"
	"tourism-backend/services"
	"tourism-backend/utils"
)

const (
	SessionCookieName = "tb_session"

	ctxSessionKey = "currentSession"
	ctxUserKey    = "currentUser"
)

// TokenFromRequest extracts the session token from the cookie or, for
// API clients, a bearer Authorization header.
func TokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}
	authz := c.GetHeader("Authorization")
	if strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
	}
	return ""
}

func cookieSecure() bool {
	return strings.EqualFold(utils.EnvOrDefault("COOKIE_SECURE", "false"), "true")
}

func SetSessionCookie(c *gin.Context, token string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, int(ttl.Seconds()), "/", "", cookieSecure(), true)
}

func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", cookieSecure(), true)
}

// CurrentUser returns the resolved profile injected by a guard.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}

func CurrentSession(c *gin.Context) (models.Session, bool) {
	v, ok := c.Get(ctxSessionKey)
	if !ok {
		return models.Session{}, false
	}
	sess, ok := v.(models.Session)
	return sess, ok
}

func redirectAbort(c *gin.Context, target string) {
	c.Redirect(http.StatusFound, target)
	c.Abort()
}

// RequireAuth resolves the caller's session once per request and injects
// {session, user} into the context; handlers never re-derive it. With
// expectedRole == "" any authenticated caller passes. Anonymous callers are
// redirected to /login with a returnUrl. Role mismatches use the configured
// targets: an admin-expected failure goes to "/" and a user-expected failure
// to "/admin". The asymmetry is inherited behavior kept configurable pending
// product clarification.
func RequireAuth(auth *services.AuthService, expectedRole models.UserRole) gin.HandlerFunc {
	adminMismatch := utils.EnvOrDefault("GUARD_ADMIN_MISMATCH_REDIRECT", "/")
	userMismatch := utils.EnvOrDefault("GUARD_USER_MISMATCH_REDIRECT", "/admin")

	return func(c *gin.Context) {
		data := auth.ResolveSession(TokenFromRequest(c))
		if data == nil {
			returnURL := url.QueryEscape(c.Request.URL.RequestURI())
			redirectAbort(c, "/login?returnUrl="+returnURL)
			return
		}
		if expectedRole != "" && data.User.Role != expectedRole {
			if expectedRole == models.RoleAdmin {
				redirectAbort(c, adminMismatch)
			} else {
				redirectAbort(c, userMismatch)
			}
			return
		}
		c.Set(ctxSessionKey, data.Session)
		c.Set(ctxUserKey, data.User)
		c.Next()
	}
}

// RequireAdminArea guards the admin space. It deliberately does not reuse
// RequireAuth: the session is re-derived here and the role re-queried
// straight from storage in the current request, and on any lookup failure or
// role mismatch the session is signed out before redirecting so a stale
// privileged cookie cannot linger.
func RequireAdminArea(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFromRequest(c)
		data := auth.ResolveSession(token)
		if data == nil {
			redirectAbort(c, "/admin-login?redirect="+url.QueryEscape(c.Request.URL.RequestURI()))
			return
		}

		role, err := auth.LookupRole(data.Session.AccountID)
		if err != nil {
			auth.SignOut(token)
			ClearSessionCookie(c)
			redirectAbort(c, "/admin-login?error=server_error")
			return
		}
		if role != models.RoleAdmin {
			auth.SignOut(token)
			ClearSessionCookie(c)
			redirectAbort(c, "/admin-login?error=not_admin")
			return
		}

		c.Set(ctxSessionKey, data.Session)
		c.Set(ctxUserKey, data.User)
		c.Next()
	}
}
