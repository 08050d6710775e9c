package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Activity struct {
	ID            string         `gorm:"primaryKey;size:36" json:"id"`
	Name          string         `gorm:"size:255;index" json:"name"`
	Description   string         `gorm:"type:text" json:"description"`
	DestinationID *string        `gorm:"column:destination_id;size:36;index" json:"destination_id"`
	Duration      string         `gorm:"size:64" json:"duration"`
	Price         float64        `json:"price"`
	Category      string         `gorm:"size:64" json:"category"`
	Images        datatypes.JSON `json:"images"`
	IsFeatured    bool           `gorm:"column:is_featured;default:false" json:"is_featured"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`

	Destination *Destination `gorm:"foreignKey:DestinationID" json:"destination,omitempty"`
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
