package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"video-link-service/internal/adapters/primary/http/dto"
	"video-link-service/internal/core/domain"
)

func (h *Handler) GenerateVideo(c *gin.Context) {
	var req dto.CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	video := &domain.VideoRecord{
		Name:           req.Name,
		WebsiteURL:     req.WebsiteURL,
		VideoURL:       req.VideoURL,
		TimeFullScreen: req.TimeFullScreen,
		Image:          req.Image,
	}
	_, link, err := h.videoSvc.Create(c.Request.Context(), video)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateVideoResponse{Link: link})
}

func (h *Handler) GetVideo(c *gin.Context) {
	video, err := h.videoSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, video)
}

func (h *Handler) ListVideos(c *gin.Context) {
	videos, err := h.videoSvc.List(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("list videos failed")
		mapDomainError(c, err)
		return
	}
	if videos == nil {
		videos = []*domain.VideoRecord{}
	}
	c.JSON(http.StatusOK, videos)
}

func (h *Handler) DeleteVideo(c *gin.Context) {
	if err := h.videoSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Video deleted successfully"})
}
