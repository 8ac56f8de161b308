package routes

import (
	"strings"

	"github.com/famigo-app/api/internal/container"
	"github.com/famigo-app/api/internal/handlers"
	"github.com/famigo-app/api/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(c *container.Container) *gin.Engine {
	if c.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}
	if c.Config.CORSOrigins == "*" {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	} else {
		corsConfig.AllowOrigins = strings.Split(c.Config.CORSOrigins, ",")
	}
	r.Use(cors.New(corsConfig))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(c.Logger))
	r.Use(middleware.ErrorHandler(c.Logger))
	r.Use(gin.Recovery())

	api := r.Group("/api")
	{
		api.GET("/", func(ctx *gin.Context) {
			ctx.JSON(200, gin.H{"message": "Famigo API - Discover. Connect. Play."})
		})
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(200, gin.H{"status": "OK", "service": "famigo-api"})
		})

		api.POST("/venues", handlers.CreateVenue(c.VenuesService))
		api.GET("/venues", handlers.ListVenues(c.VenuesService))
		// Registered before /venues/:id so the literal segment wins.
		api.GET("/venues/nearby/search", handlers.NearbyVenues(c.VenuesService))
		api.GET("/venues/:id", handlers.GetVenue(c.VenuesService))

		api.POST("/events", handlers.CreateEvent(c.EventsService))
		api.GET("/events", handlers.ListEvents(c.EventsService))
		api.GET("/events/:id", handlers.GetEvent(c.EventsService))
		api.POST("/events/:id/rsvp", handlers.RSVPEvent(c.EventsService))
		api.GET("/events/:id/attendees", handlers.EventAttendees(c.EventsService))

		api.POST("/reviews", handlers.CreateReview(c.ReviewsService))
		api.GET("/reviews/venue/:id", handlers.VenueReviews(c.ReviewsService))

		api.POST("/bookings", handlers.CreateBooking(c.BookingsService))
		api.GET("/bookings/user/:id", handlers.UserBookings(c.BookingsService))
		api.PUT("/bookings/:id/confirm", handlers.ConfirmBooking(c.BookingsService))

		api.POST("/posts", handlers.CreatePost(c.PostsService))
		api.GET("/posts", handlers.ListPosts(c.PostsService))
		api.POST("/posts/:id/comments", handlers.AddComment(c.PostsService))
		api.GET("/posts/:id/comments", handlers.PostComments(c.PostsService))
		api.POST("/posts/:id/reactions", handlers.AddReaction(c.PostsService))

		api.POST("/recommendations", handlers.Recommendations(c.RecommendationsService))
	}

	admin := r.Group("/admin")
	admin.Use(middleware.AdminAuth(c.Config.AdminPassword))
	{
		admin.GET("/theme", handlers.GetTheme(c.AdminService))
		admin.POST("/theme", handlers.UpdateTheme(c.AdminService))

		admin.GET("/categories", handlers.ListCategories(c.AdminService))
		admin.POST("/categories", handlers.CreateCategory(c.AdminService))
		admin.PUT("/categories/:id", handlers.UpdateCategory(c.AdminService))
		admin.DELETE("/categories/:id", handlers.DeleteCategory(c.AdminService))

		admin.GET("/stats", handlers.AdminStats(c.AdminService))

		admin.GET("/venues", handlers.AdminListVenues(c.AdminService))
		admin.DELETE("/venues/:id", handlers.AdminDeleteVenue(c.AdminService))

		admin.GET("/events", handlers.AdminListEvents(c.AdminService))
		admin.DELETE("/events/:id", handlers.AdminDeleteEvent(c.AdminService))

		admin.GET("/posts", handlers.AdminListPosts(c.AdminService))
		admin.DELETE("/posts/:id", handlers.AdminDeletePost(c.AdminService))
		admin.PUT("/posts/:id/hide", handlers.AdminHidePost(c.AdminService))
	}

	return r
}
