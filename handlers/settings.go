package handlers

import (
	"net/http"

	"serenefit-backend/models"
	"serenefit-backend/store"
	"serenefit-backend/utils"

	"github.com/gin-gonic/gin"
)

// SettingsHandler serves the consultation settings singleton.
type SettingsHandler struct {
	Store *store.SettingsStore
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.Store.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req struct {
		Fee          float64  `json:"fee" binding:"min=0"`
		Duration     int      `json:"duration" binding:"required,min=1"`
		TimeSlots    []string `json:"time_slots" binding:"required,min=1"`
		WeekdayHours string   `json:"weekday_hours" binding:"required"`
		WeekendHours string   `json:"weekend_hours" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	saved, err := h.Store.Save(models.ConsultationSettings{
		Fee:          req.Fee,
		Duration:     req.Duration,
		TimeSlots:    models.StringList(req.TimeSlots),
		WeekdayHours: req.WeekdayHours,
		WeekendHours: req.WeekendHours,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		return
	}

	c.JSON(http.StatusOK, saved)
}
