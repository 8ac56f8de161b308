package services

import (
	"context"
	"fmt"

	"github.com/famigo-app/api/internal/models"
)

// AdminService backs the password-gated admin panel: theme, categories,
// stats, and destructive moderation over venues, events, and posts.
type AdminService struct {
	adminRepo  models.AdminRepo
	venuesRepo models.VenuesRepo
	eventsRepo models.EventsRepo
	postsRepo  models.PostsRepo
}

func NewAdminService(adminRepo models.AdminRepo, venuesRepo models.VenuesRepo, eventsRepo models.EventsRepo, postsRepo models.PostsRepo) *AdminService {
	return &AdminService{
		adminRepo:  adminRepo,
		venuesRepo: venuesRepo,
		eventsRepo: eventsRepo,
		postsRepo:  postsRepo,
	}
}

func (as *AdminService) GetTheme(ctx context.Context) (models.ThemeConfig, error) {
	theme, err := as.adminRepo.GetTheme(ctx)
	if err != nil {
		return models.ThemeConfig{}, err
	}
	if theme == nil {
		return models.DefaultTheme(), nil
	}
	return *theme, nil
}

func (as *AdminService) UpdateTheme(ctx context.Context, theme *models.ThemeConfig) error {
	return as.adminRepo.UpsertTheme(ctx, theme)
}

func (as *AdminService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	return as.adminRepo.ListCategories(ctx)
}

func (as *AdminService) CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	if err := models.Validate.Struct(category); err != nil {
		return nil, fmt.Errorf("invalid category data: %w", err)
	}
	return as.adminRepo.CreateCategory(ctx, category)
}

func (as *AdminService) UpdateCategory(ctx context.Context, id string, category *models.Category) error {
	if err := models.Validate.Struct(category); err != nil {
		return fmt.Errorf("invalid category data: %w", err)
	}
	return as.adminRepo.UpdateCategory(ctx, id, category)
}

func (as *AdminService) DeleteCategory(ctx context.Context, id string) error {
	return as.adminRepo.DeleteCategory(ctx, id)
}

func (as *AdminService) Stats(ctx context.Context) (*models.Stats, error) {
	return as.adminRepo.CollectStats(ctx)
}

func (as *AdminService) ListVenues(ctx context.Context) ([]*models.Venue, error) {
	return as.venuesRepo.ListVenues(ctx, models.AdminListCap)
}

func (as *AdminService) DeleteVenue(ctx context.Context, id string) error {
	return as.venuesRepo.DeleteVenue(ctx, id)
}

func (as *AdminService) ListEvents(ctx context.Context) ([]*models.Event, error) {
	return as.eventsRepo.ListEvents(ctx, models.AdminListCap)
}

func (as *AdminService) DeleteEvent(ctx context.Context, id string) error {
	return as.eventsRepo.DeleteEvent(ctx, id)
}

func (as *AdminService) ListPosts(ctx context.Context) ([]*models.Post, error) {
	return as.postsRepo.ListPosts(ctx, models.AdminListCap)
}

func (as *AdminService) DeletePost(ctx context.Context, id string) error {
	return as.postsRepo.DeletePost(ctx, id)
}

func (as *AdminService) HidePost(ctx context.Context, id string) error {
	return as.postsRepo.HidePost(ctx, id)
}
