package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rizkyfahmi/todoauth/pkg/helpers"
	"github.com/rizkyfahmi/todoauth/pkg/response"
)

const CtxUserIDKey = "userID"

// Auth validates the Authorization bearer header and injects the token's
// subject into the Gin context. Every failure mode (missing header, wrong
// scheme, bad signature, expired token, missing subject) collapses to 401;
// only the detail string differs.
func Auth(tokens *helpers.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, found := strings.Cut(header, " ")
		if header == "" || !found || !strings.EqualFold(scheme, "Bearer") {
			response.AbortDetail(c, http.StatusUnauthorized, "Missing bearer token")
			return
		}
		sub, err := tokens.Parse(strings.TrimSpace(token))
		if err != nil {
			if errors.Is(err, helpers.ErrTokenExpired) {
				response.AbortDetail(c, http.StatusUnauthorized, "Token expired")
			} else {
				response.AbortDetail(c, http.StatusUnauthorized, "Invalid token")
			}
			return
		}
		if sub == "" {
			response.AbortDetail(c, http.StatusUnauthorized, "Invalid token: missing subject")
			return
		}
		c.Set(CtxUserIDKey, sub)
		c.Next()
	}
}
