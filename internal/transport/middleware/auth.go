package middleware

import (
	"net/http"
	"strings"

	"github.com/cmvn/prestamos-gota-a-gota/pkg/auth"

	"github.com/gin-gonic/gin"
)

const (
	authorizationHeader = "Authorization"
	usuarioIDKey        = "usuario_id"
	rolIDKey            = "rol_id"
)

// Auth validates the bearer token and stores the caller identity on the
// request context.
func Auth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authorizationHeader)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header"})
			return
		}

		claims, err := tokens.Parse(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(usuarioIDKey, claims.UsuarioID)
		c.Set(rolIDKey, claims.RolID)
		c.Next()
	}
}

// UsuarioID returns the authenticated caller id set by Auth.
func UsuarioID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(usuarioIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
