package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harvestshare/harvestshare/internal/services"
)

type AdminHandler struct {
	userService *services.UserService
	dealService *services.DealService
}

func NewAdminHandler(userService *services.UserService, dealService *services.DealService) *AdminHandler {
	return &AdminHandler{
		userService: userService,
		dealService: dealService,
	}
}

// ListUsers godoc
// @Summary List all users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.User
// @Failure 403 {object} ErrorResponse
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, users)
}

// ListDeals godoc
// @Summary List all deals
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Deal
// @Failure 403 {object} ErrorResponse
// @Router /admin/deals [get]
func (h *AdminHandler) ListDeals(c *gin.Context) {
	deals, err := h.dealService.ListDeals()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, deals)
}
