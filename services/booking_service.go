// services/booking_service.go
package services

import (
	"errors"
	"log"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"tourism-backend/models"
)

const bookingDateLayout = "2006-01-02"

// BookingService drives the booking flow: validate the entry tuple, capture
// special requests, persist the booking in a single insert, and serve the
// ownership-checked confirmation read.
type BookingService struct {
	DB      *gorm.DB
	Catalog *CatalogService
}

func NewBookingService(db *gorm.DB, catalog *CatalogService) *BookingService {
	return &BookingService{DB: db, Catalog: catalog}
}

// BookingRequest is the fully validated entry tuple. The price arrives
// precomputed by the caller (nights x rate etc.) and is taken verbatim;
// this service never recomputes or second-guesses it.
type BookingRequest struct {
	Type        models.ItemKind `json:"booking_type"`
	ItemID      string          `json:"item_id"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	Adults      int             `json:"adults"`
	Children    int             `json:"children"`
	TotalAmount float64         `json:"total_amount"`
}

// ValidateBookingRequest enforces the entry preconditions. Anything missing
// or malformed aborts with ErrIncompleteRequest before a single row is
// touched.
func ValidateBookingRequest(typeTag, itemID, startDate, endDate string, adults, children int, totalAmount float64) (BookingRequest, error) {
	kind, ok := models.ParseItemKind(typeTag)
	itemID = strings.TrimSpace(itemID)
	startDate = strings.TrimSpace(startDate)
	endDate = strings.TrimSpace(endDate)

	if !ok || itemID == "" || startDate == "" || endDate == "" || totalAmount <= 0 {
		return BookingRequest{}, ErrIncompleteRequest
	}

	start, err1 := time.Parse(bookingDateLayout, startDate)
	end, err2 := time.Parse(bookingDateLayout, endDate)
	if err1 != nil || err2 != nil || !start.Before(end) {
		return BookingRequest{}, ErrIncompleteRequest
	}

	if adults < 1 {
		adults = 1
	}
	if children < 0 {
		children = 0
	}

	return BookingRequest{
		Type:        kind,
		ItemID:      itemID,
		StartDate:   startDate,
		EndDate:     endDate,
		Adults:      adults,
		Children:    children,
		TotalAmount: totalAmount,
	}, nil
}

// ParseBookingRequest reads the entry tuple from booking-page query values:
// type, id, startDate, endDate, adults (default 1), children (default 0),
// totalAmount (default 0, which then fails validation).
func ParseBookingRequest(q url.Values) (BookingRequest, error) {
	adults, err := strconv.Atoi(q.Get("adults"))
	if err != nil {
		adults = 1
	}
	children, err := strconv.Atoi(q.Get("children"))
	if err != nil {
		children = 0
	}
	total, err := strconv.ParseFloat(q.Get("totalAmount"), 64)
	if err != nil {
		total = 0
	}
	return ValidateBookingRequest(q.Get("type"), q.Get("id"), q.Get("startDate"), q.Get("endDate"), adults, children, total)
}

// Create persists the booking as one atomic insert with status=pending and
// payment_status=pending. On failure nothing is left behind and the caller
// may retry; resubmission creates a new distinct booking (no idempotency
// key).
func (s *BookingService) Create(userID string, req BookingRequest, specialRequests string) (models.Booking, error) {
	booking := models.Booking{
		UserID:        &userID,
		BookingType:   req.Type,
		ItemID:        req.ItemID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Adults:        req.Adults,
		Children:      req.Children,
		TotalAmount:   req.TotalAmount,
		Status:        models.BookingPending,
		PaymentStatus: models.PaymentPending,
	}
	if sr := strings.TrimSpace(specialRequests); sr != "" {
		booking.SpecialRequests = &sr
	}

	if err := s.DB.Create(&booking).Error; err != nil {
		log.Printf("booking: insert failed: %v", err)
		return models.Booking{}, ErrBookingWrite
	}
	return booking, nil
}

// Confirmation loads a booking for the confirmation view. An ownership
// mismatch yields the same ErrNotFound as a missing id, so the existence of
// other users' bookings never leaks. The referenced item is resolved through
// the catalog using the booking's kind tag.
func (s *BookingService) Confirmation(bookingID, callerID string) (models.Booking, any, error) {
	var booking models.Booking
	if err := s.DB.Where("id = ?", bookingID).First(&booking).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("booking: confirmation lookup failed: %v", err)
		}
		return models.Booking{}, nil, ErrNotFound
	}

	if booking.UserID == nil || *booking.UserID != callerID {
		return models.Booking{}, nil, ErrNotFound
	}

	item, err := s.Catalog.Item(booking.BookingType, booking.ItemID)
	if err != nil {
		return models.Booking{}, nil, ErrNotFound
	}
	return booking, item, nil
}

// ListForUser returns the caller's bookings, newest first. Read errors
// degrade to an empty list; the dashboard never breaks on a missing table.
func (s *BookingService) ListForUser(userID string) []models.Booking {
	var out []models.Booking
	if err := s.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&out).Error; err != nil {
		log.Printf("booking: list for user failed: %v", err)
		return []models.Booking{}
	}
	return out
}
