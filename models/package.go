package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Package is a multi-day tour with a flat price and an optional percentage
// discount already reflected in listings.
type Package struct {
	ID                 string         `gorm:"primaryKey;size:36" json:"id"`
	Name               string         `gorm:"size:255;index" json:"name"`
	Description        string         `gorm:"type:text" json:"description"`
	Duration           string         `gorm:"size:64" json:"duration"`
	Price              float64        `json:"price"`
	DiscountPercentage float64        `gorm:"column:discount_percentage" json:"discount_percentage"`
	Itinerary          datatypes.JSON `json:"itinerary"`
	Inclusions         datatypes.JSON `json:"inclusions"`
	Exclusions         datatypes.JSON `json:"exclusions"`
	Images             datatypes.JSON `json:"images"`
	IsFeatured         bool           `gorm:"column:is_featured;default:false" json:"is_featured"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

func (p *Package) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
