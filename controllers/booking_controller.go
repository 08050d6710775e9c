// controllers/booking_controller.go
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

type BookingController struct {
	Bookings *services.BookingService
	Auth     *services.AuthService
}

func NewBookingController(bookings *services.BookingService, auth *services.AuthService) *BookingController {
	return &BookingController{Bookings: bookings, Auth: auth}
}

type createBookingPayload struct {
	BookingType     string  `json:"booking_type"`
	ItemID          string  `json:"item_id"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	Adults          int     `json:"adults"`
	Children        int     `json:"children"`
	TotalAmount     float64 `json:"total_amount"`
	SpecialRequests string  `json:"special_requests"`
}

func itemName(item any) string {
	switch v := item.(type) {
	case models.Hotel:
		return v.Name
	case models.Package:
		return v.Name
	case models.Houseboat:
		return v.Name
	case models.Activity:
		return v.Name
	case models.Taxi:
		return v.Name
	default:
		return ""
	}
}

// NewBooking is the booking entry route. The guard has already ensured an
// authenticated caller; here the query tuple (type, id, startDate, endDate,
// adults, children, totalAmount) is validated. An incomplete tuple redirects
// home without any database write. A complete one returns the review payload
// with the resolved item.
func (ctrl *BookingController) NewBooking(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}

	req, err := services.ParseBookingRequest(c.Request.URL.Query())
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		c.Abort()
		return
	}

	item, err := ctrl.Bookings.Catalog.Item(req.Type, req.ItemID)
	if err != nil {
		utils.JSONNotFound(c)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"booking": req,
		"item":    item,
		"user_id": user.ID,
	})
}

// CreateBooking submits the reviewed booking. The insert is a single atomic
// call; on failure the client may retry and no partial state remains.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "not signed in")
		return
	}

	var payload createBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	req, err := services.ValidateBookingRequest(
		payload.BookingType, payload.ItemID,
		payload.StartDate, payload.EndDate,
		payload.Adults, payload.Children, payload.TotalAmount,
	)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "incomplete booking request")
		return
	}

	booking, err := ctrl.Bookings.Create(user.ID, req, payload.SpecialRequests)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create booking")
		return
	}

	// Best effort; the booking stands whether or not the email goes out.
	if acct, aerr := ctrl.Auth.AccountByID(user.ID); aerr == nil {
		name := ""
		if item, ierr := ctrl.Bookings.Catalog.Item(booking.BookingType, booking.ItemID); ierr == nil {
			name = itemName(item)
		}
		_ = utils.SendBookingConfirmationEmail(
			acct.Email, acct.FullName, booking.ID, name,
			booking.StartDate, booking.EndDate, booking.TotalAmount,
		)
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":          true,
		"data":             booking,
		"confirmation_url": "/booking/confirmation?id=" + booking.ID,
	})
}

// Confirmation serves the post-payment confirmation view. A booking that is
// missing, owned by someone else, or pointing at a vanished item all produce
// the same not-found response.
func (ctrl *BookingController) Confirmation(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}

	bookingID := c.Query("id")
	if bookingID == "" {
		c.Redirect(http.StatusFound, "/")
		c.Abort()
		return
	}

	booking, item, err := ctrl.Bookings.Confirmation(bookingID, user.ID)
	if err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusInternalServerError, "failed to load booking")
			return
		}
		utils.JSONNotFound(c)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"booking": booking,
		"item":    item,
	})
}

// MyBookings lists the caller's bookings, newest first.
func (ctrl *BookingController) MyBookings(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "not signed in")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, ctrl.Bookings.ListForUser(user.ID))
}
