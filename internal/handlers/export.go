package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harvestshare/harvestshare/internal/middleware"
	"github.com/harvestshare/harvestshare/internal/services"
)

type ExportHandler struct {
	exportService *services.ExportService
}

func NewExportHandler(exportService *services.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

type VerifyReceiptResponse struct {
	Valid bool `json:"valid"`
}

// ExportDeal godoc
// @Summary Export a signed deal receipt
// @Description Produce an HMAC-signed snapshot of a deal's terms and outcome; parties only
// @Tags exports
// @Produce json
// @Security BearerAuth
// @Param id path int true "Deal ID"
// @Success 200 {object} services.DealReceipt
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /deals/{id}/export [get]
func (h *ExportHandler) ExportDeal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	receipt, err := h.exportService.ExportDeal(id, middleware.GetUserID(c))
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

	c.JSON(http.StatusOK, receipt)
}

// VerifyReceipt godoc
// @Summary Verify a deal receipt
// @Description Check the HMAC signature of a previously exported receipt
// @Tags exports
// @Accept json
// @Produce json
// @Param request body services.DealReceipt true "Receipt to verify"
// @Success 200 {object} VerifyReceiptResponse
// @Failure 400 {object} ErrorResponse
// @Router /exports/verify [post]
func (h *ExportHandler) VerifyReceipt(c *gin.Context) {
	var receipt services.DealReceipt
	if err := c.ShouldBindJSON(&receipt); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	valid, err := h.exportService.VerifyReceipt(&receipt)
	if err != nil {
		switch err {
		case services.ErrInvalidReceipt:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid deal receipt"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, VerifyReceiptResponse{Valid: valid})
}
