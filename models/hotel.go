package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Hotel struct {
	ID            string         `gorm:"primaryKey;size:36" json:"id"`
	Name          string         `gorm:"size:255;index" json:"name"`
	Description   string         `gorm:"type:text" json:"description"`
	DestinationID *string        `gorm:"column:destination_id;size:36;index" json:"destination_id"`
	Address       string         `gorm:"size:255" json:"address"`
	PricePerNight float64        `gorm:"column:price_per_night" json:"price_per_night"`
	StarRating    int            `gorm:"column:star_rating" json:"star_rating"`
	Amenities     datatypes.JSON `json:"amenities"`
	Images        datatypes.JSON `json:"images"`
	Latitude      *float64       `json:"latitude"`
	Longitude     *float64       `json:"longitude"`
	IsFeatured    bool           `gorm:"column:is_featured;default:false" json:"is_featured"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`

	Destination *Destination `gorm:"foreignKey:DestinationID" json:"destination,omitempty"`
}

func (h *Hotel) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}
