package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tourism-backend/middleware"
	"tourism-backend/models"
	"tourism-backend/services"
	"tourism-backend/utils"
)

type ReviewController struct {
	Reviews *services.ReviewService
}

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{Reviews: reviews}
}

type createReviewPayload struct {
	ReviewType string `json:"review_type"`
	ItemID     string `json:"item_id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

func (ctrl *ReviewController) GetReviews(c *gin.Context) {
	kind, ok := models.ParseItemKind(c.Query("type"))
	itemID := c.Query("itemId")
	if !ok || itemID == "" {
		utils.JSONError(c, http.StatusBadRequest, "type and itemId are required")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, ctrl.Reviews.ListForItem(kind, itemID))
}

func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "not signed in")
		return
	}

	var payload createReviewPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	kind, kindOK := models.ParseItemKind(payload.ReviewType)
	if !kindOK || payload.ItemID == "" {
		utils.JSONError(c, http.StatusBadRequest, "review_type and item_id are required")
		return
	}

	review, err := ctrl.Reviews.Create(user.ID, kind, payload.ItemID, payload.Rating, payload.Comment)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRating) {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to create review")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, review)
}
