package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tourism-backend/controllers"
	"tourism-backend/middleware"
	"tourism-backend/models"
	"tourism-backend/services"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controllers and guards onto the route tree.
func SetupRouter(
	authSvc *services.AuthService,
	ac *controllers.AuthController,
	cc *controllers.CatalogController,
	bc *controllers.BookingController,
	rc *controllers.ReviewController,
	wc *controllers.WishlistController,
	adc *controllers.AdminController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireUser := middleware.RequireAuth(authSvc, "")

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", ac.Register)
			auth.POST("/login", ac.Login)
			auth.POST("/logout", ac.Logout)
			auth.GET("/me", requireUser, ac.Me)
		}

		destinations := api.Group("/destinations")
		{
			destinations.GET("", cc.GetDestinations)
			destinations.GET("/:id", cc.GetDestination)
		}

		hotels := api.Group("/hotels")
		{
			hotels.GET("", cc.GetHotels)
			hotels.GET("/:id", cc.GetHotel)
		}

		packages := api.Group("/packages")
		{
			packages.GET("", cc.GetPackages)
			packages.GET("/:id", cc.GetPackage)
		}

		houseboats := api.Group("/houseboats")
		{
			houseboats.GET("", cc.GetHouseboats)
			houseboats.GET("/:id", cc.GetHouseboat)
		}

		taxis := api.Group("/taxis")
		{
			taxis.GET("", cc.GetTaxis)
			taxis.GET("/:id", cc.GetTaxi)
		}

		activities := api.Group("/activities")
		{
			activities.GET("", cc.GetActivities)
			activities.GET("/:id", cc.GetActivity)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("", rc.GetReviews)
			reviews.POST("", requireUser, rc.CreateReview)
		}

		wishlist := api.Group("/wishlist", requireUser)
		{
			wishlist.GET("", wc.GetWishlist)
			wishlist.POST("", wc.AddToWishlist)
			wishlist.DELETE("/:id", wc.RemoveFromWishlist)
		}

		// The booking flow requires a signed-in user with role=user; an
		// admin hitting it is bounced to the admin space.
		bookings := api.Group("/bookings", middleware.RequireAuth(authSvc, models.RoleUser))
		{
			bookings.GET("", bc.MyBookings)
			bookings.GET("/new", bc.NewBooking)
			bookings.GET("/confirmation", bc.Confirmation)
			bookings.POST("", bc.CreateBooking)
		}

		admin := api.Group("/admin")
		{
			// Provisioning stays outside the area guard so the first
			// admin can be created before any admin session exists.
			admin.POST("/create", adc.CreateAdmin)

			area := admin.Group("", middleware.RequireAdminArea(authSvc))
			{
				area.GET("/stats", adc.Stats)
				area.GET("/bookings", adc.Bookings)
				area.POST("/uploads", adc.UploadImage)
			}
		}
	}

	return r
}
