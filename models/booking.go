package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
	PaymentFailed   PaymentStatus = "failed"
)

// Booking records one reservation of an inventory item. Created exactly once
// at submission time with status=pending / payment_status=pending; status
// and payment_status evolve independently afterwards. Dates are stored as
// ISO yyyy-mm-dd strings exactly as received; order and parseability are
// validated before the row is ever built.
type Booking struct {
	ID              string        `gorm:"primaryKey;size:36" json:"id"`
	UserID          *string       `gorm:"column:user_id;size:36;index" json:"user_id"`
	BookingType     ItemKind      `gorm:"column:booking_type;size:20" json:"booking_type"`
	ItemID          string        `gorm:"column:item_id;size:36;index" json:"item_id"`
	StartDate       string        `gorm:"column:start_date;size:10" json:"start_date"`
	EndDate         string        `gorm:"column:end_date;size:10" json:"end_date"`
	Adults          int           `gorm:"default:1" json:"adults"`
	Children        int           `gorm:"default:0" json:"children"`
	TotalAmount     float64       `gorm:"column:total_amount" json:"total_amount"`
	Status          BookingStatus `gorm:"size:20;default:pending" json:"status"`
	PaymentStatus   PaymentStatus `gorm:"column:payment_status;size:20;default:pending" json:"payment_status"`
	SpecialRequests *string       `gorm:"column:special_requests;type:text" json:"special_requests"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
