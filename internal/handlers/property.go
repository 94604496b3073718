package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/harvestshare/harvestshare/internal/middleware"
	"github.com/harvestshare/harvestshare/internal/models"
	"github.com/harvestshare/harvestshare/internal/services"
)

const dateLayout = "2006-01-02"

type PropertyHandler struct {
	propertyService *services.PropertyService
}

func NewPropertyHandler(propertyService *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

type CreatePropertyRequest struct {
	Title               string   `json:"title" binding:"required"`
	Description         string   `json:"description" binding:"required"`
	FruitType           string   `json:"fruit_type" binding:"required"`
	Address             string   `json:"address" binding:"required"`
	Latitude            float64  `json:"latitude" binding:"required"`
	Longitude           float64  `json:"longitude" binding:"required"`
	AccessInstructions  string   `json:"access_instructions"`
	HarvestStartDate    string   `json:"harvest_start_date" binding:"required"`
	HarvestEndDate      string   `json:"harvest_end_date" binding:"required"`
	OwnerShare          int      `json:"owner_share" binding:"required,min=0,max=100"`
	HarvesterShare      int      `json:"harvester_share" binding:"required,min=0,max=100"`
	EstimatedYield      float64  `json:"estimated_yield" binding:"required,gt=0"`
	YieldUnit           string   `json:"yield_unit" binding:"required"`
	Images              []string `json:"images"`
	PreferredQualities  []string `json:"preferred_qualities"`
	SpecialRequirements string   `json:"special_requirements"`
}

type UpdatePropertyRequest struct {
	Title               *string  `json:"title"`
	Description         *string  `json:"description"`
	AccessInstructions  *string  `json:"access_instructions"`
	HarvestStartDate    *string  `json:"harvest_start_date"`
	HarvestEndDate      *string  `json:"harvest_end_date"`
	OwnerShare          *int     `json:"owner_share" binding:"omitempty,min=0,max=100"`
	HarvesterShare      *int     `json:"harvester_share" binding:"omitempty,min=0,max=100"`
	EstimatedYield      *float64 `json:"estimated_yield" binding:"omitempty,gt=0"`
	YieldUnit           *string  `json:"yield_unit"`
	Images              []string `json:"images"`
	PreferredQualities  []string `json:"preferred_qualities"`
	SpecialRequirements *string  `json:"special_requirements"`
	Status              *string  `json:"status"`
}

func parseDate(c *gin.Context, field, value string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: field + " must be a YYYY-MM-DD date"})
		return time.Time{}, false
	}
	return t, true
}

// CreateProperty godoc
// @Summary List a property
// @Description Create a property listing; only landowners may list
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreatePropertyRequest true "Property details"
// @Success 201 {object} models.Property
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	// Reject harvester tokens before touching the body; the service
	// re-checks against the stored user.
	if middleware.GetUserType(c) != models.UserTypeLandowner {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "only landowners can list properties"})
		return
	}

	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	startDate, ok := parseDate(c, "harvest_start_date", req.HarvestStartDate)
	if !ok {
		return
	}
	endDate, ok := parseDate(c, "harvest_end_date", req.HarvestEndDate)
	if !ok {
		return
	}

	property, err := h.propertyService.CreateProperty(middleware.GetUserID(c), services.PropertyInput{
		Title:               req.Title,
		Description:         req.Description,
		FruitType:           req.FruitType,
		Address:             req.Address,
		Latitude:            req.Latitude,
		Longitude:           req.Longitude,
		AccessInstructions:  req.AccessInstructions,
		HarvestStartDate:    startDate,
		HarvestEndDate:      endDate,
		OwnerShare:          req.OwnerShare,
		HarvesterShare:      req.HarvesterShare,
		EstimatedYield:      req.EstimatedYield,
		YieldUnit:           req.YieldUnit,
		Images:              req.Images,
		PreferredQualities:  req.PreferredQualities,
		SpecialRequirements: req.SpecialRequirements,
	})
	if err != nil {
		switch err {
		case services.ErrNotLandowner:
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "only landowners can list properties"})
		case services.ErrInvalidShareSplit:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "owner and harvester shares must sum to 100"})
		case services.ErrInvalidDateRange:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "harvest start date must not be after end date"})
		case services.ErrUserNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, property)
}

// GetProperty godoc
// @Summary Get a property
// @Tags properties
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} models.Property
// @Failure 404 {object} ErrorResponse
// @Router /properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	property, err := h.propertyService.GetProperty(id)
	if err != nil {
		switch err {
		case services.ErrPropertyNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "property not found"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, property)
}

// ListProperties godoc
// @Summary Browse active properties
// @Description List active properties, optionally filtered by fruit type, location text, radius around a point, and harvest window
// @Tags properties
// @Produce json
// @Param fruit_type query string false "Fruit type substring (case-insensitive)"
// @Param location query string false "Address substring (case-insensitive)"
// @Param lat query number false "Latitude for radius filter"
// @Param lon query number false "Longitude for radius filter"
// @Param radius query number false "Radius in km (requires lat and lon)"
// @Param start_date query string false "Earliest harvest date (YYYY-MM-DD)"
// @Param end_date query string false "Latest harvest date (YYYY-MM-DD)"
// @Success 200 {array} models.Property
// @Failure 400 {object} ErrorResponse
// @Router /properties [get]
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	filters := services.PropertySearchFilters{
		FruitType: c.Query("fruit_type"),
		Location:  c.Query("location"),
	}

	if latStr := c.Query("lat"); latStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "lat must be a number"})
			return
		}
		filters.Latitude = &lat
	}
	if lonStr := c.Query("lon"); lonStr != "" {
		lon, err := strconv.ParseFloat(lonStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "lon must be a number"})
			return
		}
		filters.Longitude = &lon
	}
	if radiusStr := c.Query("radius"); radiusStr != "" {
		radius, err := strconv.ParseFloat(radiusStr, 64)
		if err != nil || radius <= 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "radius must be a positive number"})
			return
		}
		filters.RadiusKm = &radius
	}
	if startStr := c.Query("start_date"); startStr != "" {
		start, ok := parseDate(c, "start_date", startStr)
		if !ok {
			return
		}
		filters.StartDate = &start
	}
	if endStr := c.Query("end_date"); endStr != "" {
		end, ok := parseDate(c, "end_date", endStr)
		if !ok {
			return
		}
		filters.EndDate = &end
	}

	properties, err := h.propertyService.SearchProperties(filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, properties)
}

// GetUserProperties godoc
// @Summary List a user's properties
// @Tags properties
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.Property
// @Router /users/{id}/properties [get]
func (h *PropertyHandler) GetUserProperties(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	properties, err := h.propertyService.GetPropertiesByOwner(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, properties)
}

// UpdateProperty godoc
// @Summary Update a property
// @Description Merge the supplied fields into the listing; owner only
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Param request body UpdatePropertyRequest true "Fields to update"
// @Success 200 {object} models.Property
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /properties/{id} [patch]
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	input := services.PropertyUpdateInput{
		Title:               req.Title,
		Description:         req.Description,
		AccessInstructions:  req.AccessInstructions,
		OwnerShare:          req.OwnerShare,
		HarvesterShare:      req.HarvesterShare,
		EstimatedYield:      req.EstimatedYield,
		YieldUnit:           req.YieldUnit,
		Images:              req.Images,
		PreferredQualities:  req.PreferredQualities,
		SpecialRequirements: req.SpecialRequirements,
		Status:              req.Status,
	}

	if req.HarvestStartDate != nil {
		start, ok := parseDate(c, "harvest_start_date", *req.HarvestStartDate)
		if !ok {
			return
		}
		input.HarvestStartDate = &start
	}
	if req.HarvestEndDate != nil {
		end, ok := parseDate(c, "harvest_end_date", *req.HarvestEndDate)
		if !ok {
			return
		}
		input.HarvestEndDate = &end
	}

	property, err := h.propertyService.UpdateProperty(id, middleware.GetUserID(c), input)
	if err != nil {
		switch err {
		case services.ErrPropertyNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "property not found"})
		case services.ErrNotPropertyOwner:
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "not the property owner"})
		case services.ErrInvalidShareSplit:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "owner and harvester shares must sum to 100"})
		case services.ErrInvalidDateRange:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "harvest start date must not be after end date"})
		case services.ErrInvalidStatus:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "status must be active or inactive"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, property)
}
