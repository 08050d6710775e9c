package services

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"tourism-backend/models"
)

type WishlistService struct {
	DB *gorm.DB
}

func NewWishlistService(db *gorm.DB) *WishlistService {
	return &WishlistService{DB: db}
}

// ListForUser returns the caller's wishlist, newest first. Read errors
// degrade to an empty list.
func (s *WishlistService) ListForUser(userID string) []models.WishlistItem {
	var out []models.WishlistItem
	if err := s.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&out).Error; err != nil {
		log.Printf("wishlist: list failed: %v", err)
		return []models.WishlistItem{}
	}
	return out
}

func (s *WishlistService) Add(userID string, kind models.ItemKind, itemID string) (models.WishlistItem, error) {
	item := models.WishlistItem{
		UserID:   userID,
		ItemType: kind,
		ItemID:   itemID,
	}
	if err := s.DB.Create(&item).Error; err != nil {
		log.Printf("wishlist: insert failed: %v", err)
		return models.WishlistItem{}, ErrWishlistWrite
	}
	return item, nil
}

// Remove deletes one wishlist entry, scoped to its owner; an id belonging to
// someone else reads as not found.
func (s *WishlistService) Remove(id, userID string) error {
	var item models.WishlistItem
	if err := s.DB.Where("id = ? AND user_id = ?", id, userID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		log.Printf("wishlist: lookup failed: %v", err)
		return ErrNotFound
	}
	if err := s.DB.Delete(&item).Error; err != nil {
		log.Printf("wishlist: delete failed: %v", err)
		return ErrWishlistWrite
	}
	return nil
}
