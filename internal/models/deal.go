package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	DealStatusActive    = "active"
	DealStatusCompleted = "completed"
	DealStatusCancelled = "cancelled"
)

type Deal struct {
	gorm.Model
	PropertyID      uint        `gorm:"not null;index" json:"property_id"`
	Property        Property    `gorm:"foreignKey:PropertyID" json:"-"`
	OwnerID         uint        `gorm:"not null;index" json:"owner_id"`
	Owner           User        `gorm:"foreignKey:OwnerID" json:"-"`
	HarvesterID     uint        `gorm:"not null;index" json:"harvester_id"`
	Harvester       User        `gorm:"foreignKey:HarvesterID" json:"-"`
	ApplicationID   uint        `gorm:"uniqueIndex;not null" json:"application_id"`
	Application     Application `gorm:"foreignKey:ApplicationID" json:"-"`
	StartDate       time.Time   `gorm:"not null" json:"start_date"`
	EndDate         time.Time   `gorm:"not null" json:"end_date"`
	OwnerShare      int         `gorm:"not null" json:"owner_share"`
	HarvesterShare  int         `gorm:"not null" json:"harvester_share"`
	ActualYield     *float64    `json:"actual_yield,omitempty"`
	Status          string      `gorm:"default:active;index" json:"status"`
	OwnerRating     *int        `gorm:"check:owner_rating >= 1 AND owner_rating <= 5" json:"owner_rating,omitempty"`
	HarvesterRating *int        `gorm:"check:harvester_rating >= 1 AND harvester_rating <= 5" json:"harvester_rating,omitempty"`
	OwnerReview     string      `gorm:"type:text" json:"owner_review,omitempty"`
	HarvesterReview string      `gorm:"type:text" json:"harvester_review,omitempty"`
	CompletedAt     *time.Time  `json:"completed_at,omitempty"`
}

// IsParty reports whether the given user is one of the deal's two sides.
func (d *Deal) IsParty(userID uint) bool {
	return d.OwnerID == userID || d.HarvesterID == userID
}
