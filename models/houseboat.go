package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Houseboat struct {
	ID            string         `gorm:"primaryKey;size:36" json:"id"`
	Name          string         `gorm:"size:255;index" json:"name"`
	Description   string         `gorm:"type:text" json:"description"`
	Location      string         `gorm:"size:255" json:"location"`
	PricePerNight float64        `gorm:"column:price_per_night" json:"price_per_night"`
	Capacity      int            `json:"capacity"`
	Bedrooms      int            `json:"bedrooms"`
	Amenities     datatypes.JSON `json:"amenities"`
	Images        datatypes.JSON `json:"images"`
	IsLuxury      bool           `gorm:"column:is_luxury;default:false" json:"is_luxury"`
	IsFeatured    bool           `gorm:"column:is_featured;default:false" json:"is_featured"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (h *Houseboat) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}
