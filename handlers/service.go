package handlers

import (
	"net/http"

	"serenefit-backend/models"
	"serenefit-backend/store"
	"serenefit-backend/utils"

	"github.com/gin-gonic/gin"
)

// ServiceHandler serves the public catalog and the admin service CRUD.
type ServiceHandler struct {
	Store *store.ServiceStore
}

// GetServices is the public catalog: active services only.
func (h *ServiceHandler) GetServices(c *gin.Context) {
	services, err := h.Store.All(true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch services"})
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetAllServices returns the full catalog, inactive included, for the admin
// panel.
func (h *ServiceHandler) GetAllServices(c *gin.Context) {
	services, err := h.Store.All(false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch services"})
		return
	}
	c.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) GetService(c *gin.Context) {
	svc, err := h.Store.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}
	c.JSON(http.StatusOK, svc)
}

type serviceInput struct {
	Title            string            `json:"title" binding:"required"`
	ShortDescription string            `json:"short_description"`
	LongDescription  string            `json:"long_description"`
	Includes         []string          `json:"includes"`
	Benefits         []string          `json:"benefits"`
	Fee              float64           `json:"fee" binding:"min=0"`
	Duration         int               `json:"duration" binding:"min=0"`
	Availability     []models.DaySlots `json:"availability"`
	Timezone         string            `json:"timezone"`
	SupportPhone     string            `json:"support_phone"`
	SupportEmail     string            `json:"support_email" binding:"omitempty,email"`
	Icon             string            `json:"icon"`
}

func (h *ServiceHandler) CreateService(c *gin.Context) {
	var req serviceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	svc := models.Service{
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
		Includes:         models.StringList(req.Includes),
		Benefits:         models.StringList(req.Benefits),
		Fee:              req.Fee,
		Duration:         req.Duration,
		Availability:     models.Availability(req.Availability),
		Timezone:         req.Timezone,
		SupportPhone:     req.SupportPhone,
		SupportEmail:     req.SupportEmail,
		IsActive:         true,
		IsBookable:       true,
		Icon:             req.Icon,
	}

	if err := h.Store.Create(&svc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service"})
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// UpdateService applies a partial update: only fields present in the request
// body change. An empty body leaves the record untouched.
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	svc, err := h.Store.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}

	var req struct {
		Title            *string            `json:"title"`
		ShortDescription *string            `json:"short_description"`
		LongDescription  *string            `json:"long_description"`
		Includes         *[]string          `json:"includes"`
		Benefits         *[]string          `json:"benefits"`
		Fee              *float64           `json:"fee"`
		Duration         *int               `json:"duration"`
		Availability     *[]models.DaySlots `json:"availability"`
		Timezone         *string            `json:"timezone"`
		SupportPhone     *string            `json:"support_phone"`
		SupportEmail     *string            `json:"support_email"`
		IsActive         *bool              `json:"is_active"`
		IsBookable       *bool              `json:"is_bookable"`
		Icon             *string            `json:"icon"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if req.Title != nil {
		svc.Title = *req.Title
	}
	if req.ShortDescription != nil {
		svc.ShortDescription = *req.ShortDescription
	}
	if req.LongDescription != nil {
		svc.LongDescription = *req.LongDescription
	}
	if req.Includes != nil {
		svc.Includes = models.StringList(*req.Includes)
	}
	if req.Benefits != nil {
		svc.Benefits = models.StringList(*req.Benefits)
	}
	if req.Fee != nil {
		svc.Fee = *req.Fee
	}
	if req.Duration != nil {
		svc.Duration = *req.Duration
	}
	if req.Availability != nil {
		svc.Availability = models.Availability(*req.Availability)
	}
	if req.Timezone != nil {
		svc.Timezone = *req.Timezone
	}
	if req.SupportPhone != nil {
		svc.SupportPhone = *req.SupportPhone
	}
	if req.SupportEmail != nil {
		svc.SupportEmail = *req.SupportEmail
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}
	if req.IsBookable != nil {
		svc.IsBookable = *req.IsBookable
	}
	if req.Icon != nil {
		svc.Icon = *req.Icon
	}

	if err := h.Store.Save(&svc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service"})
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *ServiceHandler) ToggleActive(c *gin.Context) {
	svc, err := h.Store.ToggleActive(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *ServiceHandler) ToggleBookable(c *gin.Context) {
	svc, err := h.Store.ToggleBookable(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *ServiceHandler) DeleteService(c *gin.Context) {
	if err := h.Store.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete service"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
