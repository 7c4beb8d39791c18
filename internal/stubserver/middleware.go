package stubserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/abelgk/crately/internal/domain/contract"
)

// AuthMiddleware verifies the bearer token and stores the subject claim as
// userID on the request context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			ErrorHandler(c, http.StatusUnauthorized, "Missing bearer token")
			c.Abort()
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			ErrorHandler(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}

		sub, err := token.Claims.GetSubject()
		if err != nil || sub == "" {
			ErrorHandler(c, http.StatusUnauthorized, "Token carries no subject")
			c.Abort()
			return
		}
		c.Set("userID", sub)
		c.Next()
	}
}

// CSRFMiddleware issues the anti-forgery cookie on safe requests and, on
// mutating requests, rejects any call whose X-CSRF-Token header does not
// match the cookie value.
func CSRFMiddleware(cookieName string, uuidgen contract.IUUIDGenerator) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(cookieName)

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			if err != nil || cookie == "" {
				c.SetCookie(cookieName, uuidgen.NewUUID(), 0, "/", "", false, false)
			}
			c.Next()
			return
		}

		if err != nil || cookie == "" {
			ErrorHandler(c, http.StatusForbidden, "Missing anti-forgery cookie")
			c.Abort()
			return
		}
		if c.GetHeader("X-CSRF-Token") != cookie {
			ErrorHandler(c, http.StatusForbidden, "Anti-forgery token mismatch")
			c.Abort()
			return
		}
		c.Next()
	}
}
