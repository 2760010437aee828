package middleware

import (
	"elearn_backend/internal/config"
	"elearn_backend/internal/repository"
	"elearn_backend/internal/util"
	"strings"

	"github.com/gin-gonic/gin"
)

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// AuthMiddleware is the identity resolver: it turns a presented bearer token
// into a verified user record loaded from the store, and fails closed. A
// token whose user has vanished since issuance is rejected the same way as
// an invalid token. Handlers obtain the identity via util.CurrentUser only.
func AuthMiddleware(cfg *config.Config, userRepo *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

// TryAuthMiddleware resolves identity when a valid token is presented but
// lets anonymous requests through. Used by catalog listings that decorate
// results for logged-in callers.
func TryAuthMiddleware(cfg *config.Config, userRepo *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.Next()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			c.Next()
			return
		}

		if user, err := userRepo.FindByID(claims.UserID); err == nil {
			c.Set("user", user)
		}
		c.Next()
	}
}
