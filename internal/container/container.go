package container

import (
	"log/slog"

	"github.com/famigo-app/api/internal/config"
	"github.com/famigo-app/api/internal/llm"
	"github.com/famigo-app/api/internal/models"
	"github.com/famigo-app/api/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger *slog.Logger
	Config *config.Config

	MongoDBClient *mongo.Client

	VenuesService          *services.VenuesService
	EventsService          *services.EventsService
	ReviewsService         *services.ReviewsService
	BookingsService        *services.BookingsService
	PostsService           *services.PostsService
	AdminService           *services.AdminService
	RecommendationsService *services.RecommendationsService
}

// NewContainer creates a new dependency injection container
func NewContainer(logger *slog.Logger, cfg *config.Config, mongoClient *mongo.Client) *Container {
	repo := models.MongodbNewRepo(mongoClient, cfg.DBName)
	completer := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel)

	return &Container{
		Logger:                 logger,
		Config:                 cfg,
		MongoDBClient:          mongoClient,
		VenuesService:          services.NewVenuesService(repo),
		EventsService:          services.NewEventsService(repo),
		ReviewsService:         services.NewReviewsService(repo, repo),
		BookingsService:        services.NewBookingsService(repo),
		PostsService:           services.NewPostsService(repo),
		AdminService:           services.NewAdminService(repo, repo, repo, repo),
		RecommendationsService: services.NewRecommendationsService(repo, completer),
	}
}
