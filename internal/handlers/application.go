package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harvestshare/harvestshare/internal/middleware"
	"github.com/harvestshare/harvestshare/internal/models"
	"github.com/harvestshare/harvestshare/internal/services"
)

type ApplicationHandler struct {
	applicationService *services.ApplicationService
}

func NewApplicationHandler(applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

type CreateApplicationRequest struct {
	PropertyID     uint     `json:"property_id" binding:"required"`
	Message        string   `json:"message" binding:"required"`
	PreferredDates []string `json:"preferred_dates"`
	HasExperience  bool     `json:"has_experience"`
	HasEquipment   bool     `json:"has_equipment"`
	IsFlexible     bool     `json:"is_flexible"`
}

type UpdateApplicationRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateApplication godoc
// @Summary Apply to harvest a property
// @Description Submit a harvest application; only harvesters may apply
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateApplicationRequest true "Application details"
// @Success 201 {object} models.Application
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /applications [post]
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var req CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	application, err := h.applicationService.CreateApplication(middleware.GetUserID(c), services.ApplicationInput{
		PropertyID:     req.PropertyID,
		Message:        req.Message,
		PreferredDates: req.PreferredDates,
		HasExperience:  req.HasExperience,
		HasEquipment:   req.HasEquipment,
		IsFlexible:     req.IsFlexible,
	})
	if err != nil {
		switch err {
		case services.ErrNotHarvester:
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "only harvesters can apply to properties"})
		case services.ErrPropertyNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "property not found"})
		case services.ErrPropertyNotActive:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "property is not accepting applications"})
		case services.ErrOwnProperty:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cannot apply to your own property"})
		case services.ErrDuplicateApplication:
			c.JSON(http.StatusConflict, ErrorResponse{Error: "a pending application for this property already exists"})
		case services.ErrUserNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, application)
}

// GetPropertyApplications godoc
// @Summary List applications for a property
// @Description List all applications submitted to a property; property owner only
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Success 200 {array} models.Application
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /properties/{id}/applications [get]
func (h *ApplicationHandler) GetPropertyApplications(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	applications, err := h.applicationService.GetApplicationsByProperty(id, middleware.GetUserID(c))
	if err != nil {
		switch err {
		case services.ErrPropertyNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "property not found"})
		case services.ErrNotPropertyOwner:
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "not the property owner"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, applications)
}

// GetUserApplications godoc
// @Summary List a user's applications
// @Description List applications submitted by a harvester; self only
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {array} models.Application
// @Failure 403 {object} ErrorResponse
// @Router /users/{id}/applications [get]
func (h *ApplicationHandler) GetUserApplications(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if id != middleware.GetUserID(c) {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "can only list your own applications"})
		return
	}

	applications, err := h.applicationService.GetApplicationsByHarvester(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, applications)
}

// UpdateApplication godoc
// @Summary Update an application
// @Description Reject a pending application; acceptance happens through deal creation
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Param request body UpdateApplicationRequest true "Status change"
// @Success 200 {object} models.Application
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /applications/{id} [patch]
func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	switch req.Status {
	case models.ApplicationStatusRejected:
	case models.ApplicationStatusAccepted:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "applications are accepted by creating a deal"})
		return
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "status must be rejected"})
		return
	}

	application, err := h.applicationService.RejectApplication(id, middleware.GetUserID(c))
	if err != nil {
		switch err {
		case services.ErrApplicationNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "application not found"})
		case services.ErrNotPropertyOwner:
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "not the property owner"})
		case services.ErrApplicationNotPending:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "application is no longer pending"})
		case services.ErrPropertyNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "property not found"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, application)
}
