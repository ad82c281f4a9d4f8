package handlers

import (
	"video-link-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	videoSvc      *services.VideoService
	ingestSvc     *services.IngestService
	lifecycleSvc  *services.LifecycleService
	compositorSvc *services.CompositorService
}

func New(
	videoSvc *services.VideoService,
	ingestSvc *services.IngestService,
	lifecycleSvc *services.LifecycleService,
	compositorSvc *services.CompositorService,
) *Handler {
	return &Handler{
		videoSvc:      videoSvc,
		ingestSvc:     ingestSvc,
		lifecycleSvc:  lifecycleSvc,
		compositorSvc: compositorSvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Videos
	r.POST("/generate", h.GenerateVideo)
	r.GET("/video/:id", h.GetVideo)
	r.GET("/videos", h.ListVideos)
	r.DELETE("/video/:id", h.DeleteVideo)

	// Bulk ingestion and artifacts
	r.POST("/generate-bulk", h.GenerateBulk)
	r.GET("/csv-files", h.ListArtifacts)
	r.DELETE("/csv-files/:id", h.DeleteArtifact)
	r.GET("/downloads/:name", h.DownloadArtifact)

	// Preview compositor
	r.POST("/composite", h.Composite)
}
