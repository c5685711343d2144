package handlers

import (
	"net/http"
	"strconv"

	"serenefit-backend/firebase"
	"serenefit-backend/store"
	"serenefit-backend/utils"

	"github.com/gin-gonic/gin"
)

// ImageCalendarHandler serves the image-based calendar page. Updates arrive as
// multipart forms because they may carry the calendar picture.
type ImageCalendarHandler struct {
	Store   *store.ImageCalendarStore
	Storage firebase.StorageClient
}

func (h *ImageCalendarHandler) Get(c *gin.Context) {
	cal, err := h.Store.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch calendar"})
		return
	}
	c.JSON(http.StatusOK, cal)
}

func (h *ImageCalendarHandler) Update(c *gin.Context) {
	cal, err := h.Store.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch calendar"})
		return
	}

	if v := c.PostForm("weekday_timings"); v != "" {
		cal.WeekdayTimings = v
	}
	if v := c.PostForm("weekend_timings"); v != "" {
		cal.WeekendTimings = v
	}
	if v := c.PostForm("month"); v != "" {
		cal.Month = v
	}
	for i, field := range []string{"count1", "count2", "count3"} {
		v := c.PostForm(field)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Class counts must be non-negative numbers"})
			return
		}
		switch i {
		case 0:
			cal.ClassCounts.Count1 = n
		case 1:
			cal.ClassCounts.Count2 = n
		case 2:
			cal.ClassCounts.Count3 = n
		}
	}

	// The calendar image is replaced wholesale; the previous object is removed
	// once the new upload succeeds.
	if fileHeader, err := c.FormFile("image"); err == nil {
		if err := utils.ValidateImageUpload(fileHeader); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open uploaded file"})
			return
		}
		defer file.Close()

		imageURL, err := h.Storage.UploadCalendarImage(file, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Image upload failed"})
			return
		}

		if cal.CalendarImage != "" {
			if objectPath, pathErr := utils.ExtractObjectPath(cal.CalendarImage); pathErr == nil {
				_ = h.Storage.DeleteFile(objectPath)
			}
		}
		cal.CalendarImage = imageURL
	}

	saved, err := h.Store.Save(cal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save calendar"})
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *ImageCalendarHandler) Reset(c *gin.Context) {
	fresh, oldImage, err := h.Store.Reset()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset calendar"})
		return
	}

	if oldImage != "" {
		if objectPath, pathErr := utils.ExtractObjectPath(oldImage); pathErr == nil {
			_ = h.Storage.DeleteFile(objectPath)
		}
	}

	c.JSON(http.StatusOK, fresh)
}
