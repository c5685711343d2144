package handlers

import (
	"io"
	"net/http"

	"serenefit-backend/models"
	"serenefit-backend/store"
	"serenefit-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ServiceVideoHandler serves uploaded per-service videos. Payloads are stored
// alongside the record; listings never include the bytes.
type ServiceVideoHandler struct {
	Store *store.ServiceVideoStore
}

// ListVideos returns video metadata, filtered by ?service_id when given.
// Internal errors degrade to an empty list so the public page still renders.
func (h *ServiceVideoHandler) ListVideos(c *gin.Context) {
	if serviceID := c.Query("service_id"); serviceID != "" {
		c.JSON(http.StatusOK, h.Store.ByService(serviceID))
		return
	}
	c.JSON(http.StatusOK, h.Store.All())
}

// StreamVideo serves the raw payload with the stored content type.
func (h *ServiceVideoHandler) StreamVideo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid video id"})
		return
	}

	video, err := h.Store.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
		return
	}

	contentType := video.ContentType
	if contentType == "" {
		contentType = "video/mp4"
	}
	c.Data(http.StatusOK, contentType, video.VideoData)
}

// UploadVideo validates and stores a video for a service. Duration is probed
// from the container and the thumbnail taken from an optional client-supplied
// frame; both degrade to empty placeholders without failing the upload.
func (h *ServiceVideoHandler) UploadVideo(c *gin.Context) {
	serviceID := c.PostForm("service_id")
	if serviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "service_id is required"})
		return
	}

	fileHeader, err := c.FormFile("video")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Video file is required"})
		return
	}

	if err := utils.ValidateVideoUpload(fileHeader); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open uploaded file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}

	video := models.ServiceVideo{
		ServiceID:   serviceID,
		Title:       c.PostForm("title"),
		VideoData:   data,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Thumbnail:   c.PostForm("thumbnail"),
		Duration:    utils.ProbeVideoDuration(data),
	}

	if err := h.Store.Add(&video); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save video"})
		return
	}

	// Echo metadata only; the payload is fetched via the stream endpoint.
	video.VideoData = nil
	c.JSON(http.StatusCreated, video)
}

// DeleteVideo removes a video; absent ids still return OK.
func (h *ServiceVideoHandler) DeleteVideo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid video id"})
		return
	}

	if err := h.Store.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete video"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Video deleted successfully"})
}
