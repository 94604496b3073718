package models

import (
	"gorm.io/gorm"
)

type Message struct {
	gorm.Model
	DealID   uint   `gorm:"not null;index" json:"deal_id"`
	Deal     Deal   `gorm:"foreignKey:DealID" json:"-"`
	SenderID uint   `gorm:"not null;index" json:"sender_id"`
	Sender   User   `gorm:"foreignKey:SenderID" json:"-"`
	Content  string `gorm:"type:text;not null" json:"content"`
}
