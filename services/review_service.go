package services

import (
	"log"
	"strings"

	"gorm.io/gorm"

	"tourism-backend/models"
)

type ReviewService struct {
	DB *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db}
}

// ListForItem returns reviews for one inventory item, newest first. Read
// errors degrade to an empty list.
func (s *ReviewService) ListForItem(kind models.ItemKind, itemID string) []models.Review {
	var out []models.Review
	err := s.DB.Preload("User").
		Where("review_type = ? AND item_id = ?", kind, itemID).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		log.Printf("reviews: list failed: %v", err)
		return []models.Review{}
	}
	return out
}

// Create inserts a review. Write failures surface as a retryable error and
// leave nothing behind.
func (s *ReviewService) Create(userID string, kind models.ItemKind, itemID string, rating int, comment string) (models.Review, error) {
	if rating < 1 || rating > 5 {
		return models.Review{}, ErrInvalidRating
	}
	review := models.Review{
		UserID:     &userID,
		ReviewType: kind,
		ItemID:     itemID,
		Rating:     rating,
	}
	if c := strings.TrimSpace(comment); c != "" {
		review.Comment = &c
	}
	if err := s.DB.Create(&review).Error; err != nil {
		log.Printf("reviews: insert failed: %v", err)
		return models.Review{}, ErrReviewWrite
	}
	return review, nil
}
