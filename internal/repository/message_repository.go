package repository

import (
	"github.com/harvestshare/harvestshare/internal/models"
	"gorm.io/gorm"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

func (r *MessageRepository) FindByDeal(dealID uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Where("deal_id = ?", dealID).
		Preload("Sender").
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}
