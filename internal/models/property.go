package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	PropertyStatusActive    = "active"
	PropertyStatusInactive  = "inactive"
	PropertyStatusCompleted = "completed"
)

type Property struct {
	gorm.Model
	OwnerID             uint      `gorm:"not null;index" json:"owner_id"`
	Owner               User      `gorm:"foreignKey:OwnerID" json:"-"`
	Title               string    `gorm:"not null" json:"title"`
	Description         string    `gorm:"type:text;not null" json:"description"`
	FruitType           string    `gorm:"not null;index" json:"fruit_type"`
	Address             string    `gorm:"not null" json:"address"`
	Latitude            float64   `gorm:"not null" json:"latitude"`
	Longitude           float64   `gorm:"not null" json:"longitude"`
	AccessInstructions  string    `gorm:"type:text" json:"access_instructions,omitempty"`
	HarvestStartDate    time.Time `gorm:"not null" json:"harvest_start_date"`
	HarvestEndDate      time.Time `gorm:"not null" json:"harvest_end_date"`
	OwnerShare          int       `gorm:"not null" json:"owner_share"`
	HarvesterShare      int       `gorm:"not null" json:"harvester_share"`
	EstimatedYield      float64   `gorm:"not null" json:"estimated_yield"`
	YieldUnit           string    `gorm:"not null" json:"yield_unit"`
	Images              []string  `gorm:"serializer:json" json:"images"`
	PreferredQualities  []string  `gorm:"serializer:json" json:"preferred_qualities"`
	SpecialRequirements string    `gorm:"type:text" json:"special_requirements,omitempty"`
	Status              string    `gorm:"default:active;index" json:"status"`
}
