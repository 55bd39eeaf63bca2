package auth

import (
	"net/http"
	"strings"

	"ems-backend/internal/database/models"

	"github.com/gin-gonic/gin"
)

// ContextActorKey is the gin context key the resolved actor is stored under
const ContextActorKey = "actor"

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates JWT tokens, resolves the acting user and sets it on
// the request context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		actor, err := m.service.ResolveActor(claims)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown or inactive user"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set(ContextActorKey, actor)

		c.Next()
	}
}

// ActorFromContext returns the authenticated user set by RequireAuth
func ActorFromContext(c *gin.Context) (*models.User, bool) {
	value, ok := c.Get(ContextActorKey)
	if !ok {
		return nil, false
	}
	actor, ok := value.(*models.User)
	return actor, ok
}
