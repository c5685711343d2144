package handlers

import (
	"net/http"

	"serenefit-backend/models"
	"serenefit-backend/store"
	"serenefit-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BookingNotifier is implemented by the notification service; handlers call it
// fire-and-forget and never fail a request over it.
type BookingNotifier interface {
	BookingConfirmed(booking models.Booking)
}

// BookingHandler serves the public booking form and the admin booking table.
type BookingHandler struct {
	Store    *store.BookingStore
	Services *store.ServiceStore
	Notifier BookingNotifier
}

// CreateBooking handles the public form submit. Status is always pending and
// the service reference, when present, is snapshotted by name but never
// validated against the catalog.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req struct {
		Name      string `json:"name" binding:"required"`
		Whatsapp  string `json:"whatsapp" binding:"required"`
		Email     string `json:"email" binding:"omitempty,email"`
		TimeSlot  string `json:"time_slot" binding:"required"`
		ServiceID string `json:"service_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	booking := models.Booking{
		Name:      req.Name,
		Whatsapp:  req.Whatsapp,
		Email:     req.Email,
		TimeSlot:  req.TimeSlot,
		ServiceID: req.ServiceID,
	}

	if req.ServiceID != "" {
		if svc, err := h.Services.Get(req.ServiceID); err == nil {
			booking.ServiceName = svc.Title
		}
	}

	if err := h.Store.Create(&booking); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit booking"})
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// ListBookings returns all submissions newest-first for the admin table, with
// an optional ?status= filter.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	status := models.BookingStatus(c.Query("status"))
	if status != "" && !models.ValidBookingStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
		return
	}

	bookings, err := h.Store.List(status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingStatus moves a booking to any of the three states.
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return
	}

	var req struct {
		Status models.BookingStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}
	if !models.ValidBookingStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking status"})
		return
	}

	booking, err := h.Store.UpdateStatus(id, req.Status)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	if req.Status == models.BookingStatusConfirmed && h.Notifier != nil {
		h.Notifier.BookingConfirmed(booking)
	}

	c.JSON(http.StatusOK, booking)
}

// DeleteBooking removes a submission; deleting an absent id still returns OK.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return
	}

	if err := h.Store.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}
