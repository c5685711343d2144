package handlers

import (
	"net/http"
	"strconv"
	"time"

	"serenefit-backend/models"
	"serenefit-backend/store"
	"serenefit-backend/utils"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler serves the monthly workout calendar.
type ScheduleHandler struct {
	Store *store.ScheduleStore
}

// GetMonth returns the calendar grid for ?year=&month=, defaulting to the
// current month.
func (h *ScheduleHandler) GetMonth(c *gin.Context) {
	now := time.Now()
	year := now.Year()
	month := int(now.Month())

	if y := c.Query("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
			return
		}
		year = parsed
	}
	if m := c.Query("month"); m != "" {
		parsed, err := strconv.Atoi(m)
		if err != nil || parsed < 1 || parsed > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month"})
			return
		}
		month = parsed
	}

	view, err := h.Store.Month(year, time.Month(month))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch schedule"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// SetDay assigns a workout to a single date.
func (h *ScheduleHandler) SetDay(c *gin.Context) {
	var req struct {
		Date    string             `json:"date" binding:"required"`
		Workout models.WorkoutType `json:"workout" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if err := h.Store.SetDay(req.Date, req.Workout); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": req.Date, "workout": req.Workout})
}

// Reset regenerates the default calendar for the current month plus two.
func (h *ScheduleHandler) Reset(c *gin.Context) {
	if err := h.Store.Reset(time.Now()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset schedule"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule regenerated"})
}

// UpdateTimings overwrites the class-hours banner.
func (h *ScheduleHandler) UpdateTimings(c *gin.Context) {
	var req struct {
		WeekdayTimings string `json:"weekday_timings" binding:"required"`
		WeekendTimings string `json:"weekend_timings" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	saved, err := h.Store.SaveTimings(models.ScheduleTimings{
		WeekdayTimings: req.WeekdayTimings,
		WeekendTimings: req.WeekendTimings,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save timings"})
		return
	}
	c.JSON(http.StatusOK, saved)
}
