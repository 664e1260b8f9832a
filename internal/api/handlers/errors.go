package handlers

import (
	"errors"
	"net/http"

	apperrors "league-manager-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP status codes
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrMatchAlreadyStarted),
		errors.Is(err, apperrors.ErrMatchFinished),
		errors.Is(err, apperrors.ErrMatchDayIncomplete),
		errors.Is(err, apperrors.ErrPlayerAlreadyInRoster),
		errors.Is(err, apperrors.ErrSeasonInactive):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
