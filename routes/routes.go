package routes

import (
	"time"

	"contour/handlers"
	"contour/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers booking endpoints. Creation is public (the
// storefront checkout posts here); management is admin-only.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Booking.CreateBooking)

		admin := api.Group("")
		admin.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
		admin.GET("", hb.Booking.ListBookings)
		admin.GET("/:bookingId", hb.Booking.GetBooking)
		admin.GET("/user/:userId", hb.Booking.ListBookingsByUser)
		admin.PATCH("/:bookingId", hb.Booking.UpdateBooking)
		admin.PATCH("/payment/:bookingId", hb.Booking.UpdatePaymentStatus)
		admin.PATCH("/cancel/:bookingId", hb.Booking.CancelBooking)
		admin.POST("/sendInvoice/:bookingId", hb.Booking.SendInvoice)
		admin.DELETE("/:bookingId", hb.Booking.DeleteBooking)
		admin.POST("/multiple-delete", hb.Booking.DeleteBookings)
	}
}

// RegisterDepartureRoutes registers group and private departure endpoints.
func RegisterDepartureRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	group := r.Group("/api/groupDeparture")
	{
		group.GET("", hb.Departure.ListGroupDepartures)
		group.GET("/:groupDepartureId", hb.Departure.GetGroupDeparture)
		group.GET("/by-expeditionId/:expeditionId", hb.Departure.ListGroupDeparturesByExpedition)

		admin := group.Group("")
		admin.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
		admin.POST("", hb.Departure.CreateGroupDeparture)
		admin.PATCH("/:groupDepartureId", hb.Departure.UpdateGroupDeparture)
		admin.PATCH("/sold/:groupDepartureId", hb.Departure.AddSold)
		admin.DELETE("/:groupDepartureId", hb.Departure.DeleteGroupDeparture)
		admin.POST("/multiple-delete", hb.Departure.DeleteGroupDepartures)
	}

	private := r.Group("/api/privateDeparture")
	{
		private.GET("", hb.Departure.ListPrivateDepartures)
		private.GET("/:privateDepartureId", hb.Departure.GetPrivateDeparture)
		private.GET("/by-expeditionId/:expeditionId", hb.Departure.ListPrivateDeparturesByExpedition)

		admin := private.Group("")
		admin.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
		admin.POST("", hb.Departure.CreatePrivateDeparture)
		admin.PATCH("/:privateDepartureId", hb.Departure.UpdatePrivateDeparture)
		admin.DELETE("/:privateDepartureId", hb.Departure.DeletePrivateDeparture)
		admin.POST("/multiple-delete", hb.Departure.DeletePrivateDepartures)
	}
}

// RegisterExpeditionRoutes registers expedition catalog endpoints.
func RegisterExpeditionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/expeditions")
	{
		api.GET("", hb.Expedition.ListExpeditions)
		api.GET("/:expeditionId", hb.Expedition.GetExpedition)
		api.GET("/slug/:slug", hb.Expedition.GetExpeditionBySlug)

		admin := api.Group("")
		admin.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
		admin.POST("", hb.Expedition.CreateExpedition)
		admin.PATCH("/:expeditionId", hb.Expedition.UpdateExpedition)
		admin.DELETE("/:expeditionId", hb.Expedition.DeleteExpedition)
		admin.POST("/multiple-delete", hb.Expedition.DeleteExpeditions)
	}
}

// RegisterFaqRoutes registers FAQ endpoints.
func RegisterFaqRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/faq")
	{
		api.GET("", hb.Faq.ListFaqs)
		api.GET("/:faqId", hb.Faq.GetFaq)
		api.GET("/by-expeditionId/:expeditionId", hb.Faq.ListFaqsByExpedition)

		admin := api.Group("")
		admin.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
		admin.POST("", hb.Faq.CreateFaq)
		admin.POST("/swap-order", hb.Faq.SwapFaqOrder)
		admin.PATCH("/:faqId", hb.Faq.UpdateFaq)
		admin.DELETE("/:faqId", hb.Faq.DeleteFaq)
		admin.POST("/multiple-delete", hb.Faq.DeleteFaqs)
	}
}

// RegisterReviewRoutes registers review endpoints. Submission is public,
// moderation is admin-only.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.POST("", hb.Review.CreateReview)
		api.GET("", hb.Review.ListReviews)
		api.GET("/:reviewId", hb.Review.GetReview)
		api.GET("/by-expeditionId/:expeditionId", hb.Review.ListReviewsByExpedition)

		admin := api.Group("")
		admin.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
		admin.PATCH("/:reviewId", hb.Review.UpdateReview)
		admin.PATCH("/approve/:reviewId", hb.Review.ApproveReview)
		admin.DELETE("/:reviewId", hb.Review.DeleteReview)
		admin.POST("/multiple-delete", hb.Review.DeleteReviews)
	}
}

// RegisterUserRoutes registers user endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.User.Register)
		api.POST("/login", hb.User.Login)

		// Protected routes (Require Authentication)
		api.Use(middleware.AuthMiddleware())
		api.DELETE("/revoke", hb.User.Revoke)
		api.GET("/:userId", hb.User.GetUser)
		api.PATCH("/:userId", hb.User.UpdateUser)

		admin := api.Group("")
		admin.Use(middleware.RequireAdmin())
		admin.GET("", hb.User.ListUsers)
		admin.DELETE("/:userId", hb.User.DeleteUser)
	}
}

// RegisterStatsRoutes registers the admin reporting endpoints.
func RegisterStatsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/stats")
	{
		api.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
		api.POST("/overview", hb.Stats.Overview)
		api.POST("/payments", hb.Stats.PaymentBreakdown)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.Health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterDepartureRoutes(r, hb)
	RegisterExpeditionRoutes(r, hb)
	RegisterFaqRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterStatsRoutes(r, hb)
	RegisterHealthRoute(r)
}
