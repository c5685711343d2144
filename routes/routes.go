package routes

import (
	"time"

	"serenefit-backend/firebase"
	"serenefit-backend/handlers"
	"serenefit-backend/middleware"
	"serenefit-backend/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, storageClient firebase.StorageClient, notifier handlers.BookingNotifier) {
	serviceStore := store.NewServiceStore(db)

	authHandler := &handlers.AuthHandler{DB: db}
	settingsHandler := &handlers.SettingsHandler{Store: store.NewSettingsStore(db)}
	bookingHandler := &handlers.BookingHandler{
		Store:    store.NewBookingStore(db),
		Services: serviceStore,
		Notifier: notifier,
	}
	serviceHandler := &handlers.ServiceHandler{Store: serviceStore}
	scheduleHandler := &handlers.ScheduleHandler{Store: store.NewScheduleStore(db)}
	imageCalendarHandler := &handlers.ImageCalendarHandler{Store: store.NewImageCalendarStore(db), Storage: storageClient}
	mediaHandler := &handlers.MediaHandler{Store: store.NewMediaStore(db)}
	testimonialHandler := &handlers.TestimonialImageHandler{Store: store.NewTestimonialImageStore(db), Storage: storageClient}
	serviceVideoHandler := &handlers.ServiceVideoHandler{Store: store.NewServiceVideoStore(db)}

	bookingLimiter := middleware.NewRateLimiter(5, 1*time.Minute)

	// Public routes
	api := r.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)

		api.GET("/settings/consultation", settingsHandler.GetSettings)

		api.POST("/bookings", bookingLimiter.Middleware(), bookingHandler.CreateBooking)

		api.GET("/services", serviceHandler.GetServices)
		api.GET("/services/:id", serviceHandler.GetService)

		api.GET("/schedule", scheduleHandler.GetMonth)
		api.GET("/image-calendar", imageCalendarHandler.Get)

		api.GET("/home-videos", mediaHandler.GetHomeVideos)
		api.GET("/video-testimonials", mediaHandler.GetVideoTestimonials)
		api.GET("/testimonial-images", testimonialHandler.GetImages)

		api.GET("/service-videos", serviceVideoHandler.ListVideos)
		api.GET("/service-videos/:id/stream", serviceVideoHandler.StreamVideo)
	}

	// Protected routes (require authentication)
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/auth/profile", authHandler.GetProfile)
	}

	// Admin routes (require admin role)
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	{
		// Consultation settings
		admin.PUT("/settings/consultation", settingsHandler.UpdateSettings)

		// Booking management
		admin.GET("/bookings", bookingHandler.ListBookings)
		admin.PUT("/bookings/:id/status", bookingHandler.UpdateBookingStatus)
		admin.DELETE("/bookings/:id", bookingHandler.DeleteBooking)

		// Service management
		admin.GET("/services", serviceHandler.GetAllServices)
		admin.POST("/services", serviceHandler.CreateService)
		admin.PUT("/services/:id", serviceHandler.UpdateService)
		admin.PUT("/services/:id/toggle-active", serviceHandler.ToggleActive)
		admin.PUT("/services/:id/toggle-bookable", serviceHandler.ToggleBookable)
		admin.DELETE("/services/:id", serviceHandler.DeleteService)

		// Workout schedule
		admin.PUT("/schedule/day", scheduleHandler.SetDay)
		admin.POST("/schedule/reset", scheduleHandler.Reset)
		admin.PUT("/schedule/timings", scheduleHandler.UpdateTimings)

		// Image calendar
		admin.PUT("/image-calendar", imageCalendarHandler.Update)
		admin.POST("/image-calendar/reset", imageCalendarHandler.Reset)

		// Home media
		admin.POST("/home-videos", mediaHandler.CreateHomeVideo)
		admin.PUT("/home-videos/:id", mediaHandler.UpdateHomeVideo)
		admin.DELETE("/home-videos/:id", mediaHandler.DeleteHomeVideo)
		admin.POST("/video-testimonials", mediaHandler.CreateVideoTestimonial)
		admin.PUT("/video-testimonials/:id", mediaHandler.UpdateVideoTestimonial)
		admin.DELETE("/video-testimonials/:id", mediaHandler.DeleteVideoTestimonial)

		// Testimonial image galleries
		admin.POST("/testimonial-images", testimonialHandler.AddImage)
		admin.PUT("/testimonial-images/:serviceId/:position", testimonialHandler.ReplaceImage)
		admin.DELETE("/testimonial-images/:serviceId/:position", testimonialHandler.RemoveImage)

		// Service videos
		admin.POST("/service-videos", serviceVideoHandler.UploadVideo)
		admin.DELETE("/service-videos/:id", serviceVideoHandler.DeleteVideo)
	}
}
