package auth

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	SessionCookieName = "notes_session"
	sessionKeyUser    = "username"

	// ContextUserKey is where RequireLogin places the authenticated
	// username for downstream handlers.
	ContextUserKey = "auth.user"
)

// SessionMaxAgeSeconds is the cookie lifetime: one hour.
const SessionMaxAgeSeconds = 3600

// LoginSession records the authenticated username in the session cookie.
func LoginSession(c *gin.Context, username string) error {
	session := sessions.Default(c)
	session.Set(sessionKeyUser, username)
	return session.Save()
}

// ClearSession drops all session state for the requesting browser.
func ClearSession(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	_ = session.Save()
}

// SessionUser returns the username held by the session, if any.
func SessionUser(c *gin.Context) (string, bool) {
	session := sessions.Default(c)
	user, ok := session.Get(sessionKeyUser).(string)
	return user, ok && user != ""
}

// RequireLogin guards routes that reveal or mutate a user's notes.
// A request without a valid session gets its session cleared and is
// redirected to the login page.
func RequireLogin(loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := SessionUser(c)
		if !ok {
			ClearSession(c)
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}
		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the username placed in the context by RequireLogin.
func CurrentUser(c *gin.Context) string {
	user, _ := c.Get(ContextUserKey)
	name, _ := user.(string)
	return name
}
