package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/st10253994/INSY7315-API/handlers"
	"github.com/st10253994/INSY7315-API/middleware"
)

// RegisterRoutes wires every controller onto the echo instance. Register,
// login and the public listing feed are open; everything else sits behind
// the auth middleware. Upload middleware runs before handlers that accept
// files, so handlers only ever see Cloudinary URLs.
func RegisterRoutes(e *echo.Echo) {
	auth := middleware.NewAuthMiddleware()

	userController := handlers.NewUserController()
	googleController := handlers.NewGoogleController()
	listingController := handlers.NewListingController()
	bookingController := handlers.NewBookingController()
	favouriteController := handlers.NewFavouriteController()
	reviewController := handlers.NewReviewController()
	maintenanceController := handlers.NewMaintenanceController()
	notificationController := handlers.NewNotificationController()

	e.GET("/", handlers.HealthCheck)

	api := e.Group("/api")

	// Public routes
	api.POST("/users/register", userController.Register)
	api.POST("/users/login", userController.Login)
	api.POST("/auth/google", googleController.Login)
	api.GET("/listings", listingController.GetAllListings)
	api.GET("/listings/:id", listingController.GetListingByID)
	api.GET("/listings/:listingID/reviews", reviewController.GetReviewsForListing)

	// Everything below requires a bearer token.
	protected := api.Group("", auth.CheckAuth)

	protected.POST("/listings/:id/create", listingController.CreateListing,
		middleware.Upload("images", middleware.FolderListings))
	protected.DELETE("/listings/:id/delete", listingController.DeleteListing)

	protected.GET("/bookings", bookingController.GetAllBookings)
	protected.POST("/users/:userID/listings/:listingID/bookings", bookingController.CreateBooking,
		middleware.Upload("files", ""))
	protected.GET("/bookings/:id", bookingController.GetBookingByUser)
	protected.PUT("/bookings/:id/update", bookingController.UpdateBooking)
	protected.DELETE("/bookings/:id/delete", bookingController.DeleteBooking)

	protected.POST("/users/:userID/favourites/:listingID", favouriteController.FavouriteListing)
	protected.GET("/users/:userID/favourites", favouriteController.GetFavourites)
	protected.DELETE("/users/:userID/favourites/:listingID", favouriteController.UnfavouriteListing)

	protected.POST("/users/:userID/listings/:listingID/reviews", reviewController.CreateReview)

	protected.POST("/users/:userID/listings/:listingID/maintenance", maintenanceController.CreateMaintenanceRequest,
		middleware.Upload("files", middleware.FolderMaintenance))
	protected.GET("/users/:userID/maintenance", maintenanceController.GetMaintenanceRequestsForUser)

	protected.GET("/notifications", notificationController.GetAllNotifications)
	protected.POST("/notifications/create", notificationController.CreateNotification)
	protected.PUT("/notifications/:id/read", notificationController.MarkRead)

	protected.GET("/users/:id", userController.GetProfile)
	protected.POST("/users/:id/profile", userController.PostProfile,
		middleware.Upload("pfpImage", middleware.FolderProfilePicture))
}
