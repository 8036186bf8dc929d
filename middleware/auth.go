package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	utils "github.com/phillip/pet-adoption-go/utils"
)

const (
	// SessionCookie is the cookie carrying the signed session token.
	SessionCookie = "token"

	emailKey  = "email"
	claimsKey = "claims"
)

// TokenVerifier is satisfied by *utils.TokenManager.
type TokenVerifier interface {
	Verify(token string) (*utils.SessionClaims, error)
}

// AuthMiddleware rejects the request with 401 unless the session cookie holds
// a valid token. A rejected request never reaches the next handler.
func AuthMiddleware(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			unauthorized(c)
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set(emailKey, claims.Email)
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// CurrentEmail is the email of the authenticated caller, or "".
func CurrentEmail(c *gin.Context) string {
	return c.GetString(emailKey)
}

func CurrentClaims(c *gin.Context) (*utils.SessionClaims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*utils.SessionClaims)
	return claims, ok
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
}
