package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harvestshare/harvestshare/internal/middleware"
	"github.com/harvestshare/harvestshare/internal/services"
)

type MessageHandler struct {
	messageService *services.MessageService
}

func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

type SendMessageRequest struct {
	DealID  uint   `json:"deal_id" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// SendMessage godoc
// @Summary Send a message
// @Description Append a message to a deal's conversation; parties only
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SendMessageRequest true "Message"
// @Success 201 {object} models.Message
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /messages [post]
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	message, err := h.messageService.SendMessage(middleware.GetUserID(c), req.DealID, req.Content)
	if err != nil {
		switch err {
		case services.ErrDealNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "deal not found"})
		case services.ErrNotDealParty:
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "not a party to this deal"})
		case services.ErrEmptyMessage:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "message content must not be empty"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, message)
}

// GetDealMessages godoc
// @Summary List a deal's conversation
// @Description Messages in creation order; parties only
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Deal ID"
// @Success 200 {array} models.Message
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /deals/{id}/messages [get]
func (h *MessageHandler) GetDealMessages(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	messages, err := h.messageService.GetMessagesByDeal(id, middleware.GetUserID(c))
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

	c.JSON(http.StatusOK, messages)
}
