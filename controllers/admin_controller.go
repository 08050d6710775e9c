package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tourism-backend/models"
	"tourism-backend/services"
	"tourism-backend/utils"
)

type AdminController struct {
	DB   *gorm.DB
	Auth *services.AuthService
}

func NewAdminController(db *gorm.DB, auth *services.AuthService) *AdminController {
	return &AdminController{DB: db, Auth: auth}
}

type createAdminPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

// CreateAdmin provisions an admin account with its profile row.
func (ctrl *AdminController) CreateAdmin(c *gin.Context) {
	var payload createAdminPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if payload.Email == "" || payload.Password == "" || payload.FullName == "" {
		utils.JSONError(c, http.StatusBadRequest, "email, password, and full name are required")
		return
	}

	acct, err := ctrl.Auth.CreateAdmin(payload.Email, payload.Password, payload.FullName)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			utils.JSONError(c, http.StatusConflict, "email already registered")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to create admin")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Admin user created successfully",
		"data": gin.H{
			"id":        acct.ID,
			"email":     acct.Email,
			"full_name": acct.FullName,
		},
	})
}

type uploadImagePayload struct {
	Category string `json:"category"`
	Image    string `json:"image"`
}

// UploadImage accepts a base64-encoded catalog image and stores it under the
// uploads directory served at /uploads. Returns the public URL.
func (ctrl *AdminController) UploadImage(c *gin.Context) {
	var payload uploadImagePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if payload.Category == "" || payload.Image == "" {
		utils.JSONError(c, http.StatusBadRequest, "category and image are required")
		return
	}

	path, err := services.SaveCatalogImage(payload.Image, payload.Category)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to save image")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"url": "/uploads/" + path})
}

// Stats returns entity counts for the admin dashboard. Count failures read
// as zero; a half-provisioned database still renders a dashboard.
func (ctrl *AdminController) Stats(c *gin.Context) {
	count := func(model any) int64 {
		var n int64
		if err := ctrl.DB.Model(model).Count(&n).Error; err != nil {
			return 0
		}
		return n
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"users":        count(&models.User{}),
		"destinations": count(&models.Destination{}),
		"hotels":       count(&models.Hotel{}),
		"packages":     count(&models.Package{}),
		"houseboats":   count(&models.Houseboat{}),
		"taxis":        count(&models.Taxi{}),
		"activities":   count(&models.Activity{}),
		"bookings":     count(&models.Booking{}),
	})
}

// Bookings lists recent bookings across all users for the admin dashboard.
func (ctrl *AdminController) Bookings(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 || limit > 200 {
		limit = 50
	}

	var bookings []models.Booking
	if err := ctrl.DB.Order("created_at DESC").Limit(limit).Find(&bookings).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}
