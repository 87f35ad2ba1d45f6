package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/registration-api/pkg/response"
)

// BasicAuth guards a route group with a single username/password pair.
// Credentials are compared in constant time regardless of which part
// mismatches.
func BasicAuth(username, password string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, pass, ok := c.Request.BasicAuth()
		if !ok || !constantTimeEqual(user, username) || !constantTimeEqual(pass, password) {
			c.Header("WWW-Authenticate", `Basic realm="restricted"`)
			response.AbortError[any](c, http.StatusUnauthorized, "invalid credentials", nil)
			return
		}
		c.Next()
	}
}

func constantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
