package handlers

import (
	"errors"
	"net/http"

	"video-link-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrVideoNotFound),
		errors.Is(err, domain.ErrArtifactNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrMissingRequiredFields),
		errors.Is(err, domain.ErrMalformedBatch),
		errors.Is(err, domain.ErrEmptyBatch),
		errors.Is(err, domain.ErrInvalidFileName),
		errors.Is(err, domain.ErrCompositionSource):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Timeout
	case errors.Is(err, domain.ErrIngestTimeout):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": err.Error()})

	// Partial cascade failure: the caller must learn the records are gone
	// but the backing file is not.
	case errors.Is(err, domain.ErrFileRemoval):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
