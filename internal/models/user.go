package models

import (
	"gorm.io/gorm"
)

const (
	UserTypeLandowner = "landowner"
	UserTypeHarvester = "harvester"
)

type User struct {
	gorm.Model
	Username     string  `gorm:"uniqueIndex;not null" json:"username"`
	Email        string  `gorm:"uniqueIndex;not null" json:"email"`
	Password     string  `gorm:"not null" json:"-"`
	UserType     string  `gorm:"not null;index" json:"user_type"`
	FullName     string  `gorm:"not null" json:"full_name"`
	Phone        string  `json:"phone,omitempty"`
	Bio          string  `gorm:"type:text" json:"bio,omitempty"`
	Rating       float64 `gorm:"default:0" json:"rating"`
	TotalRatings int     `gorm:"default:0" json:"total_ratings"`

	Properties   []Property    `gorm:"foreignKey:OwnerID" json:"-"`
	Applications []Application `gorm:"foreignKey:HarvesterID" json:"-"`
	AuthTokens   []AuthToken   `gorm:"foreignKey:UserID" json:"-"`
}

func (u *User) IsLandowner() bool {
	return u.UserType == UserTypeLandowner
}

func (u *User) IsHarvester() bool {
	return u.UserType == UserTypeHarvester
}
