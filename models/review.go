package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Review struct {
	ID         string         `gorm:"primaryKey;size:36" json:"id"`
	UserID     *string        `gorm:"column:user_id;size:36;index" json:"user_id"`
	ReviewType ItemKind       `gorm:"column:review_type;size:20;index" json:"review_type"`
	ItemID     string         `gorm:"column:item_id;size:36;index" json:"item_id"`
	Rating     int            `json:"rating"`
	Comment    *string        `gorm:"type:text" json:"comment"`
	Images     datatypes.JSON `json:"images"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
