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

type WishlistController struct {
	Wishlist *services.WishlistService
}

func NewWishlistController(wishlist *services.WishlistService) *WishlistController {
	return &WishlistController{Wishlist: wishlist}
}

type addWishlistPayload struct {
	ItemType string `json:"item_type"`
	ItemID   string `json:"item_id"`
}

func (ctrl *WishlistController) GetWishlist(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "not signed in")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, ctrl.Wishlist.ListForUser(user.ID))
}

func (ctrl *WishlistController) AddToWishlist(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "not signed in")
		return
	}

	var payload addWishlistPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	kind, kindOK := models.ParseItemKind(payload.ItemType)
	if !kindOK || payload.ItemID == "" {
		utils.JSONError(c, http.StatusBadRequest, "item_type and item_id are required")
		return
	}

	item, err := ctrl.Wishlist.Add(user.ID, kind, payload.ItemID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to add to wishlist")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, item)
}

func (ctrl *WishlistController) RemoveFromWishlist(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "not signed in")
		return
	}

	if err := ctrl.Wishlist.Remove(c.Param("id"), user.ID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONNotFound(c)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to remove from wishlist")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "removed"})
}
