package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerr "github.com/sohhamm/personal-finance-app/internal/domain/error"
	coreport "github.com/sohhamm/personal-finance-app/internal/domain/port/core"
	"github.com/sohhamm/personal-finance-app/internal/infrastructure/adapter/api/dto"
	"github.com/sohhamm/personal-finance-app/internal/infrastructure/adapter/api/middleware"
)

// respondError maps a domain error to its HTTP status and writes the
// failure envelope. Internal failures never leak their message.
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	code := domainerr.ErrorCode(err)

	switch {
	case domainerr.IsValidationError(err):
		c.JSON(http.StatusBadRequest, dto.Err(code, err.Error()))
	case domainerr.IsUnauthorizedError(err):
		c.JSON(http.StatusUnauthorized, dto.Err(code, err.Error()))
	case domainerr.IsNotFoundError(err):
		c.JSON(http.StatusNotFound, dto.Err(code, err.Error()))
	case domainerr.IsConflictError(err):
		c.JSON(http.StatusConflict, dto.Err(code, err.Error()))
	default:
		logger.Error("Request failed", map[string]any{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
			"error":  err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.Err(
			domainerr.ErrorCode(domainerr.ErrInternalServer),
			"Internal server error",
		))
	}
}

// respondBindError writes a validation failure for a malformed request body
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.Err(
		domainerr.ErrorCode(domainerr.ErrValidation),
		"Invalid request format: "+err.Error(),
	))
}

// authenticatedUser pulls the caller's user ID set by the auth middleware.
// A missing ID means a route was wired without the middleware.
func authenticatedUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Err(
			domainerr.ErrorCode(domainerr.ErrUnauthorized),
			"Authentication required",
		))
	}
	return userID, ok
}

// pathUUID parses a UUID path parameter
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Err(
			domainerr.ErrorCode(domainerr.ErrValidation),
			"Invalid "+name+" format",
		))
		return uuid.Nil, false
	}
	return id, true
}
