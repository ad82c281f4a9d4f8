package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"video-link-service/internal/adapters/primary/http/dto"
)

// maxUploadBytes caps how much of a bulk upload is read into memory.
const maxUploadBytes = 16 << 20

// GenerateBulk accepts a multipart CSV upload under the "file" field and an
// optional "fileName" override used to name the generated artifact.
func (h *Handler) GenerateBulk(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expected a CSV upload in the 'file' field"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	// Read one byte past the cap so an oversized upload is rejected instead
	// of being truncated to a smaller batch that would still parse.
	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(data) > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "upload exceeds the 16MB limit"})
		return
	}

	fileName := c.PostForm("fileName")
	if fileName == "" {
		fileName = fileHeader.Filename
	}

	result, err := h.ingestSvc.CreateBulk(c.Request.Context(), data, fileName)
	if err != nil {
		log.WithField("fileName", fileName).WithError(err).Error("bulk generation failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.BulkGenerateResponse{
		Links:        result.Links,
		DownloadLink: result.DownloadLink,
	})
}
