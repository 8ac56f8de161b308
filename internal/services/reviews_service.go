package services

import (
	"context"
	"fmt"

	"github.com/famigo-app/api/internal/models"
)

type ReviewsService struct {
	reviewsRepo models.ReviewsRepo
	venuesRepo  models.VenuesRepo
}

func NewReviewsService(reviewsRepo models.ReviewsRepo, venuesRepo models.VenuesRepo) *ReviewsService {
	return &ReviewsService{
		reviewsRepo: reviewsRepo,
		venuesRepo:  venuesRepo,
	}
}

// CreateReview inserts the review, then recomputes the venue aggregate when
// the review targets a venue. The two writes are not transactional: if the
// recomputation fails after a successful insert, the venue keeps its stale
// rating until the next successful recomputation.
func (rs *ReviewsService) CreateReview(ctx context.Context, req *models.ReviewCreate) (*models.Review, error) {
	if err := models.Validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid review data: %w", err)
	}

	review, err := rs.reviewsRepo.CreateReview(ctx, req.ToReview())
	if err != nil {
		return nil, err
	}

	if req.VenueID != "" {
		reviews, err := rs.reviewsRepo.AllVenueReviews(ctx, req.VenueID)
		if err != nil {
			return nil, err
		}
		rating, total := models.RatingSummary(reviews)
		if err := rs.venuesRepo.UpdateVenueRating(ctx, req.VenueID, rating, total); err != nil {
			return nil, err
		}
	}

	return review, nil
}

func (rs *ReviewsService) VenueReviews(ctx context.Context, venueID string) ([]*models.Review, error) {
	return rs.reviewsRepo.ListVenueReviews(ctx, venueID)
}
