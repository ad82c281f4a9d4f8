package handlers

import (
	"io"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"video-link-service/internal/adapters/primary/http/dto"
	"video-link-service/internal/core/domain"
)

func (h *Handler) ListArtifacts(c *gin.Context) {
	artifacts, err := h.lifecycleSvc.ListArtifacts(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("list artifacts failed")
		mapDomainError(c, err)
		return
	}
	if artifacts == nil {
		artifacts = []*domain.ArtifactRecord{}
	}
	c.JSON(http.StatusOK, artifacts)
}

// DeleteArtifact cascades: the artifact record, every video it produced, and
// the backing file.
func (h *Handler) DeleteArtifact(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid artifact id"})
		return
	}

	if err := h.lifecycleSvc.DeleteArtifact(c.Request.Context(), id); err != nil {
		log.WithField("artifactId", id).WithError(err).Error("delete artifact failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Artifact deleted successfully"})
}

func (h *Handler) DownloadArtifact(c *gin.Context) {
	name := c.Param("name")
	f, err := h.lifecycleSvc.OpenArtifactFile(name)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	defer f.Close()

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, f); err != nil {
		log.WithField("name", name).WithError(err).Warn("artifact download interrupted")
	}
}
