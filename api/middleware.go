package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/peacekuria/smartmove/internal/domain"
	"github.com/peacekuria/smartmove/internal/service/auth"
)

const actorKey = "actor"

// Authenticate resolves the bearer token into an actor on the context. With
// required=false an absent token passes through as anonymous; a present but
// invalid token is always rejected.
func Authenticate(service auth.AuthUseCase, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			if required {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
				return
			}
			c.Next()
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if token == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "malformed authorization header"})
			return
		}

		actor, err := service.ParseToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(actorKey, actor)
		c.Next()
	}
}

// RequireRoles gates a route on the actor's role via the pure capability
// check; it never panics and denial is a plain 401/403 response.
func RequireRoles(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := Actor(c)
		if actor == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		if !domain.Allowed(actor.Role, roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied for role " + string(actor.Role)})
			return
		}
		c.Next()
	}
}

// Actor returns the authenticated actor, or nil for anonymous requests.
func Actor(c *gin.Context) *domain.UserSnapshot {
	v, ok := c.Get(actorKey)
	if !ok {
		return nil
	}
	actor, ok := v.(*domain.UserSnapshot)
	if !ok {
		return nil
	}
	return actor
}
