package handlers

import (
	"net/http"
	"strconv"

	"serenefit-backend/firebase"
	"serenefit-backend/store"
	"serenefit-backend/utils"

	"github.com/gin-gonic/gin"
)

// TestimonialImageHandler serves the per-service testimonial image galleries.
type TestimonialImageHandler struct {
	Store   *store.TestimonialImageStore
	Storage firebase.StorageClient
}

// GetImages returns one service's gallery when ?service_id is given, otherwise
// every gallery grouped by service.
func (h *TestimonialImageHandler) GetImages(c *gin.Context) {
	if serviceID := c.Query("service_id"); serviceID != "" {
		images, err := h.Store.ByService(serviceID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch images"})
			return
		}
		c.JSON(http.StatusOK, store.ServiceImages{ServiceID: serviceID, Images: images})
		return
	}

	grouped, err := h.Store.Grouped()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch images"})
		return
	}
	c.JSON(http.StatusOK, grouped)
}

// AddImage uploads a new gallery image for a service. The first add creates
// the gallery.
func (h *TestimonialImageHandler) AddImage(c *gin.Context) {
	serviceID := c.PostForm("service_id")
	if serviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "service_id is required"})
		return
	}

	imageURL, ok := h.uploadImage(c)
	if !ok {
		return
	}

	img, err := h.Store.Add(serviceID, imageURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add image"})
		return
	}
	c.JSON(http.StatusCreated, img)
}

// ReplaceImage swaps the image at a position in a service's gallery.
func (h *TestimonialImageHandler) ReplaceImage(c *gin.Context) {
	serviceID := c.Param("serviceId")
	position, err := strconv.Atoi(c.Param("position"))
	if err != nil || position < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid position"})
		return
	}

	imageURL, ok := h.uploadImage(c)
	if !ok {
		return
	}

	old, err := h.Store.ReplaceAt(serviceID, position, imageURL)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if objectPath, pathErr := utils.ExtractObjectPath(old); pathErr == nil {
		_ = h.Storage.DeleteFile(objectPath)
	}

	c.JSON(http.StatusOK, gin.H{"service_id": serviceID, "position": position, "image_url": imageURL})
}

// RemoveImage deletes the image at a position; later images shift down.
func (h *TestimonialImageHandler) RemoveImage(c *gin.Context) {
	serviceID := c.Param("serviceId")
	position, err := strconv.Atoi(c.Param("position"))
	if err != nil || position < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid position"})
		return
	}

	removed, err := h.Store.RemoveAt(serviceID, position)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if objectPath, pathErr := utils.ExtractObjectPath(removed); pathErr == nil {
		_ = h.Storage.DeleteFile(objectPath)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Image removed successfully"})
}

// uploadImage validates and stores the multipart "image" file, responding with
// the appropriate error itself when something is wrong.
func (h *TestimonialImageHandler) uploadImage(c *gin.Context) (string, bool) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
		return "", false
	}

	if err := utils.ValidateImageUpload(fileHeader); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open uploaded file"})
		return "", false
	}
	defer file.Close()

	imageURL, err := h.Storage.UploadTestimonialImage(file, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Image upload failed"})
		return "", false
	}
	return imageURL, true
}
