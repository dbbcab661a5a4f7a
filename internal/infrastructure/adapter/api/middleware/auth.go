package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerr "github.com/sohhamm/personal-finance-app/internal/domain/error"
	coreport "github.com/sohhamm/personal-finance-app/internal/domain/port/core"
	"github.com/sohhamm/personal-finance-app/internal/domain/port/usecase"
	"github.com/sohhamm/personal-finance-app/internal/infrastructure/adapter/api/dto"
	"github.com/sohhamm/personal-finance-app/internal/infrastructure/adapter/cache"
)

// UserIDKey is the context key the authenticated user's ID is stored under
const UserIDKey = "userID"

// Auth middleware verifies the bearer token and resolves the calling user.
// Resolved users are cached so repeated requests skip the database lookup.
func Auth(authUseCase usecase.AuthUseCase, userCache *cache.UserCache, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Err(
				domainerr.ErrorCode(domainerr.ErrUnauthorized),
				"Missing or malformed Authorization header",
			))
			return
		}

		userID, err := authUseCase.VerifyAccessToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Err(
				domainerr.ErrorCode(domainerr.ErrUnauthorized),
				"Invalid or expired token",
			))
			return
		}

		// Confirm the user still exists; the cache absorbs the lookup on
		// repeat requests
		if userCache.Get(userID) == nil {
			user, err := authUseCase.GetProfile(c.Request.Context(), userID)
			if err != nil {
				logger.Warn("Token valid but user lookup failed", map[string]any{
					"user_id": userID.String(),
					"error":   err.Error(),
				})
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Err(
					domainerr.ErrorCode(domainerr.ErrUnauthorized),
					"Invalid or expired token",
				))
				return
			}
			userCache.Set(user)
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// UserID extracts the authenticated user's ID from the request context
func UserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}

// bearerToken extracts the token from the Authorization header
func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}
