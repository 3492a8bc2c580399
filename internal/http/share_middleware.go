package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"persona-lab/internal/service"
)

const shareClaimsKey = "share_claims"

// ShareAuthMiddleware valida el token JWT de validador y guarda sus claims.
func ShareAuthMiddleware(tokens *service.ShareTokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokens == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "share tokens not configured"})
			c.Abort()
			return
		}

		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}

		token := strings.TrimSpace(header[len("Bearer "):])
		claims, err := tokens.Parse(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(shareClaimsKey, claims)
		c.Next()
	}
}

// GetShareClaims obtiene los claims del validador desde el contexto.
func GetShareClaims(c *gin.Context) (service.ShareClaims, bool) {
	val, ok := c.Get(shareClaimsKey)
	if !ok {
		return service.ShareClaims{}, false
	}
	claims, ok := val.(service.ShareClaims)
	return claims, ok
}
