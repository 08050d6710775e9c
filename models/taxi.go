package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Taxi pricing is per-km on top of a base fare, unlike the per-night and
// flat-price inventory kinds.
type Taxi struct {
	ID          string         `gorm:"primaryKey;size:36" json:"id"`
	Name        string         `gorm:"size:255;index" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	VehicleType string         `gorm:"column:vehicle_type;size:64" json:"vehicle_type"`
	Capacity    int            `json:"capacity"`
	PricePerKM  float64        `gorm:"column:price_per_km" json:"price_per_km"`
	BaseFare    float64        `gorm:"column:base_fare" json:"base_fare"`
	Images      datatypes.JSON `json:"images"`
	IsFeatured  bool           `gorm:"column:is_featured;default:false" json:"is_featured"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (t *Taxi) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
