package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"video-link-service/internal/adapters/primary/http/dto"
)

// Composite synthesizes a preview image from the base and webcam sources and
// returns the PNG bytes directly; nothing is stored server-side.
func (h *Handler) Composite(c *gin.Context) {
	var req dto.CompositeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := h.compositorSvc.Composite(c.Request.Context(), req.BaseImageURL, req.WebcamImageURL)
	if err != nil {
		log.WithError(err).Error("composite preview failed")
		mapDomainError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", data)
}
