package handlers

import (
	"net/http"

	"serenefit-backend/models"
	"serenefit-backend/store"
	"serenefit-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MediaHandler serves the home page video carousel and the video testimonial
// list. Video URLs may be external embeds or data URLs; neither is fetched or
// validated server-side.
type MediaHandler struct {
	Store *store.MediaStore
}

func (h *MediaHandler) GetHomeVideos(c *gin.Context) {
	videos, err := h.Store.HomeVideos()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch videos"})
		return
	}
	c.JSON(http.StatusOK, videos)
}

func (h *MediaHandler) CreateHomeVideo(c *gin.Context) {
	var req struct {
		VideoURL  string `json:"video_url" binding:"required"`
		Title     string `json:"title"`
		Thumbnail string `json:"thumbnail"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	video := models.HomeVideo{VideoURL: req.VideoURL, Title: req.Title, Thumbnail: req.Thumbnail}
	if err := h.Store.AddHomeVideo(&video); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add video"})
		return
	}
	c.JSON(http.StatusCreated, video)
}

func (h *MediaHandler) UpdateHomeVideo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid video id"})
		return
	}

	video, err := h.Store.GetHomeVideo(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
		return
	}

	var req struct {
		VideoURL  *string `json:"video_url"`
		Title     *string `json:"title"`
		Thumbnail *string `json:"thumbnail"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if req.VideoURL != nil {
		video.VideoURL = *req.VideoURL
	}
	if req.Title != nil {
		video.Title = *req.Title
	}
	if req.Thumbnail != nil {
		video.Thumbnail = *req.Thumbnail
	}

	if err := h.Store.SaveHomeVideo(&video); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update video"})
		return
	}
	c.JSON(http.StatusOK, video)
}

func (h *MediaHandler) DeleteHomeVideo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid video id"})
		return
	}
	if err := h.Store.DeleteHomeVideo(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete video"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Video deleted successfully"})
}

func (h *MediaHandler) GetVideoTestimonials(c *gin.Context) {
	videos, err := h.Store.VideoTestimonials()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch testimonials"})
		return
	}
	c.JSON(http.StatusOK, videos)
}

func (h *MediaHandler) CreateVideoTestimonial(c *gin.Context) {
	var req struct {
		VideoURL    string `json:"video_url" binding:"required"`
		ServiceName string `json:"service_name"`
		Thumbnail   string `json:"thumbnail"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	video := models.VideoTestimonial{VideoURL: req.VideoURL, ServiceName: req.ServiceName, Thumbnail: req.Thumbnail}
	if err := h.Store.AddVideoTestimonial(&video); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add testimonial"})
		return
	}
	c.JSON(http.StatusCreated, video)
}

func (h *MediaHandler) UpdateVideoTestimonial(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid testimonial id"})
		return
	}

	video, err := h.Store.GetVideoTestimonial(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
		return
	}

	var req struct {
		VideoURL    *string `json:"video_url"`
		ServiceName *string `json:"service_name"`
		Thumbnail   *string `json:"thumbnail"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if req.VideoURL != nil {
		video.VideoURL = *req.VideoURL
	}
	if req.ServiceName != nil {
		video.ServiceName = *req.ServiceName
	}
	if req.Thumbnail != nil {
		video.Thumbnail = *req.Thumbnail
	}

	if err := h.Store.SaveVideoTestimonial(&video); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update testimonial"})
		return
	}
	c.JSON(http.StatusOK, video)
}

func (h *MediaHandler) DeleteVideoTestimonial(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid testimonial id"})
		return
	}
	if err := h.Store.DeleteVideoTestimonial(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete testimonial"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted successfully"})
}
