package httpHandler

import (
	"net/http"
	"notes-lab/auth"

	"github.com/gin-gonic/gin"
)

// mintToken issues a fresh CSRF token for a form-rendering GET.
// Every rendered form gets its own token; each is good for one POST.
func mintToken(c *gin.Context, tokens auth.TokenStore) (string, bool) {
	token, err := tokens.Mint(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to issue CSRF token")
		c.Abort()
		return "", false
	}
	return token, true
}

// consumeCSRF validates and consumes the csrf_token form field. A
// missing or unknown token rejects the request outright.
func consumeCSRF(c *gin.Context, tokens auth.TokenStore) bool {
	if !tokens.Consume(c.Request.Context(), c.PostForm("csrf_token")) {
		c.String(http.StatusForbidden, "CSRF token missing or invalid")
		c.Abort()
		return false
	}
	return true
}
