package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harvestshare/harvestshare/internal/middleware"
	"github.com/harvestshare/harvestshare/internal/models"
	"github.com/harvestshare/harvestshare/internal/services"
)

type DealHandler struct {
	dealService *services.DealService
}

func NewDealHandler(dealService *services.DealService) *DealHandler {
	return &DealHandler{dealService: dealService}
}

type CreateDealRequest struct {
	ApplicationID uint   `json:"application_id" binding:"required"`
	StartDate     string `json:"start_date" binding:"required"`
	EndDate       string `json:"end_date" binding:"required"`
}

type UpdateDealRequest struct {
	Status      string   `json:"status" binding:"required"`
	ActualYield *float64 `json:"actual_yield" binding:"omitempty,gt=0"`
}

type SubmitRatingRequest struct {
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Review string `json:"review"`
}

// CreateDeal godoc
// @Summary Accept an application and create a deal
// @Description Promote a pending application into a deal; the application is marked accepted and the revenue split is copied from the property, all in one transaction. Property owner only.
// @Tags deals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateDealRequest true "Deal terms"
// @Success 201 {object} models.Deal
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /deals [post]
func (h *DealHandler) CreateDeal(c *gin.Context) {
	var req CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	startDate, ok := parseDate(c, "start_date", req.StartDate)
	if !ok {
		return
	}
	endDate, ok := parseDate(c, "end_date", req.EndDate)
	if !ok {
		return
	}

	deal, err := h.dealService.AcceptApplication(middleware.GetUserID(c), req.ApplicationID, startDate, endDate)
	if err != nil {
		switch err {
		case services.ErrApplicationNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "application not found"})
		case services.ErrApplicationNotPending:
			c.JSON(http.StatusConflict, ErrorResponse{Error: "application is no longer pending"})
		case services.ErrPropertyNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "property not found"})
		case services.ErrNotPropertyOwner:
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "not the property owner"})
		case services.ErrInvalidDateRange:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "start date must not be after end date"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, deal)
}

// GetDeal godoc
// @Summary Get a deal
// @Description Fetch a deal; parties only
// @Tags deals
// @Produce json
// @Security BearerAuth
// @Param id path int true "Deal ID"
// @Success 200 {object} models.Deal
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /deals/{id} [get]
func (h *DealHandler) GetDeal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	deal, err := h.dealService.GetDeal(id, middleware.GetUserID(c))
	if err != nil {
		switch err {
		case services.ErrDealNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "deal not found"})
		case services.ErrNotDealParty:
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "not a party to this deal"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, deal)
}

// GetUserDeals godoc
// @Summary List a user's deals
// @Description List deals where the user is a party; self only
// @Tags deals
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {array} models.Deal
// @Failure 403 {object} ErrorResponse
// @Router /users/{id}/deals [get]
func (h *DealHandler) GetUserDeals(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if id != middleware.GetUserID(c) {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "can only list your own deals"})
		return
	}

	deals, err := h.dealService.GetDealsByUser(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, deals)
}

// UpdateDeal godoc
// @Summary Complete or cancel a deal
// @Description Move an active deal to completed (optionally recording the actual yield) or cancelled; parties only
// @Tags deals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Deal ID"
// @Param request body UpdateDealRequest true "Status change"
// @Success 200 {object} models.Deal
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /deals/{id} [patch]
func (h *DealHandler) UpdateDeal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	var deal *models.Deal
	var err error

	switch req.Status {
	case models.DealStatusCompleted:
		deal, err = h.dealService.CompleteDeal(middleware.GetUserID(c), id, req.ActualYield)
	case models.DealStatusCancelled:
		deal, err = h.dealService.CancelDeal(middleware.GetUserID(c), id)
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "status must be completed or cancelled"})
		return
	}

	if err != nil {
		switch err {
		case services.ErrDealNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "deal not found"})
		case services.ErrNotDealParty:
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "not a party to this deal"})
		case services.ErrDealNotActive:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "deal is not active"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, deal)
}

// SubmitRating godoc
// @Summary Rate the counterparty of a completed deal
// @Description Submit a 1-5 rating and optional review; the rated side is derived from the caller, and a repeat submission is rejected
// @Tags deals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Deal ID"
// @Param request body SubmitRatingRequest true "Rating"
// @Success 200 {object} models.Deal
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /deals/{id}/rating [post]
func (h *DealHandler) SubmitRating(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	deal, err := h.dealService.SubmitRating(middleware.GetUserID(c), id, req.Rating, req.Review)
	if err != nil {
		switch err {
		case services.ErrDealNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "deal not found"})
		case services.ErrNotDealParty:
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "not a party to this deal"})
		case services.ErrDealNotCompleted:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "deal is not completed"})
		case services.ErrAlreadyRated:
			c.JSON(http.StatusConflict, ErrorResponse{Error: "rating already submitted for this deal"})
		case services.ErrInvalidRating:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "rating must be between 1 and 5"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, deal)
}
