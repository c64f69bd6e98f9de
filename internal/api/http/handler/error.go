package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avolkov/webauth-server/internal/model"
)

// handleError maps pipeline errors to transport responses in one place.
// Internal detail never reaches the body.
func handleError(c *gin.Context, err error) {
	var validationErr *model.ValidationError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"errors": validationErr.Fields})
	case errors.Is(err, model.ErrDuplicateEmail):
		// Does not reveal which column collided.
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
	case errors.Is(err, model.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
	case errors.Is(err, model.ErrTokenMalformed),
		errors.Is(err, model.ErrTokenSignatureInvalid),
		errors.Is(err, model.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, model.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
