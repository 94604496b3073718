package services

import (
	"errors"

	"github.com/harvestshare/harvestshare/internal/models"
	"github.com/harvestshare/harvestshare/internal/repository"
)

var ErrEmptyMessage = errors.New("message content must not be empty")

type MessageService struct {
	messageRepo *repository.MessageRepository
	dealRepo    *repository.DealRepository
}

func NewMessageService(messageRepo *repository.MessageRepository, dealRepo *repository.DealRepository) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		dealRepo:    dealRepo,
	}
}

// SendMessage appends a message to a deal's conversation. The sender must be
// one of the deal's two parties.
func (s *MessageService) SendMessage(senderID, dealID uint, content string) (*models.Message, error) {
	if content == "" {
		return nil, ErrEmptyMessage
	}

	deal, err := s.dealRepo.FindByID(dealID)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, ErrDealNotFound
	}
	if !deal.IsParty(senderID) {
		return nil, ErrNotDealParty
	}

	message := &models.Message{
		DealID:   dealID,
		SenderID: senderID,
		Content:  content,
	}

	if err := s.messageRepo.Create(message); err != nil {
		return nil, err
	}

	return message, nil
}

// GetMessagesByDeal returns the conversation in creation order, visible only
// to the deal's parties.
func (s *MessageService) GetMessagesByDeal(dealID, callerID uint) ([]models.Message, error) {
	deal, err := s.dealRepo.FindByID(dealID)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, ErrDealNotFound
	}
	if !deal.IsParty(callerID) {
		return nil, ErrNotDealParty
	}

	return s.messageRepo.FindByDeal(dealID)
}
