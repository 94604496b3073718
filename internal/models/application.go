package models

import (
	"gorm.io/gorm"
)

const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

type Application struct {
	gorm.Model
	PropertyID     uint     `gorm:"not null;index" json:"property_id"`
	Property       Property `gorm:"foreignKey:PropertyID" json:"-"`
	HarvesterID    uint     `gorm:"not null;index" json:"harvester_id"`
	Harvester      User     `gorm:"foreignKey:HarvesterID" json:"-"`
	Message        string   `gorm:"type:text;not null" json:"message"`
	PreferredDates []string `gorm:"serializer:json" json:"preferred_dates"`
	HasExperience  bool     `gorm:"default:false" json:"has_experience"`
	HasEquipment   bool     `gorm:"default:false" json:"has_equipment"`
	IsFlexible     bool     `gorm:"default:false" json:"is_flexible"`
	Status         string   `gorm:"default:pending;index" json:"status"`
}
