package httpHandler

import (
	"errors"
	"net/http"
	"notes-lab/auth"
	"notes-lab/usecases"

	"github.com/gin-gonic/gin"
)

type SecureAuthHandler struct {
	users  *usecases.UserUseCase
	tokens auth.TokenStore
}

func NewSecureAuthHandler(users *usecases.UserUseCase, tokens auth.TokenStore) *SecureAuthHandler {
	return &SecureAuthHandler{users: users, tokens: tokens}
}

// LoginPage handles GET /secure/. An already logged-in browser goes
// straight to its notes.
func (h *SecureAuthHandler) LoginPage(c *gin.Context) {
	if _, ok := auth.SessionUser(c); ok {
		c.Redirect(http.StatusFound, "/secure/notes")
		return
	}
	token, ok := mintToken(c, h.tokens)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "secure_login.html", gin.H{"csrf_token": token})
}

// Login handles POST /secure/login.
func (h *SecureAuthHandler) Login(c *gin.Context) {
	if !consumeCSRF(c, h.tokens) {
		return
	}

	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.users.Authenticate(username, password)
	if err != nil {
		if errors.Is(err, usecases.ErrInvalidCredentials) {
			token, ok := mintToken(c, h.tokens)
			if !ok {
				return
			}
			c.HTML(http.StatusOK, "secure_login.html", gin.H{
				"error":      "Invalid credentials",
				"csrf_token": token,
			})
			return
		}
		c.String(http.StatusInternalServerError, "login failed")
		return
	}

	if err := auth.LoginSession(c, user.Username); err != nil {
		c.String(http.StatusInternalServerError, "failed to save session")
		return
	}
	c.Redirect(http.StatusFound, "/secure/notes")
}

// Logout handles GET /secure/logout. The session is cleared
// unconditionally.
func (h *SecureAuthHandler) Logout(c *gin.Context) {
	auth.ClearSession(c)
	c.Redirect(http.StatusFound, "/secure/")
}

// RegisterPage handles GET /secure/register.
func (h *SecureAuthHandler) RegisterPage(c *gin.Context) {
	token, ok := mintToken(c, h.tokens)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "secure_register.html", gin.H{"csrf_token": token})
}

// Register handles POST /secure/register.
func (h *SecureAuthHandler) Register(c *gin.Context) {
	if !consumeCSRF(c, h.tokens) {
		return
	}

	username := c.PostForm("username")
	password := c.PostForm("password")

	_, err := h.users.Register(username, password)
	if err != nil {
		if errors.Is(err, usecases.ErrUsernameTaken) {
			token, ok := mintToken(c, h.tokens)
			if !ok {
				return
			}
			c.HTML(http.StatusOK, "secure_register.html", gin.H{
				"error":      "Username already taken.",
				"csrf_token": token,
			})
			return
		}
		c.String(http.StatusInternalServerError, "registration failed")
		return
	}
	c.Redirect(http.StatusFound, "/secure/")
}
