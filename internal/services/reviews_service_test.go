package services

import (
	"context"
	"testing"

	"github.com/famigo-app/api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeReviewsRepo struct {
	reviews []*models.Review
}

func (f *fakeReviewsRepo) CreateReview(_ context.Context, review *models.Review) (*models.Review, error) {
	review.ID = primitive.NewObjectID()
	f.reviews = append(f.reviews, review)
	return review, nil
}

func (f *fakeReviewsRepo) ListVenueReviews(ctx context.Context, venueID string) ([]*models.Review, error) {
	return f.AllVenueReviews(ctx, venueID)
}

func (f *fakeReviewsRepo) AllVenueReviews(_ context.Context, venueID string) ([]*models.Review, error) {
	out := make([]*models.Review, 0)
	for _, r := range f.reviews {
		if r.VenueID == venueID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeVenuesRepo struct {
	venues map[string]*models.Venue
}

func newFakeVenuesRepo() *fakeVenuesRepo {
	return &fakeVenuesRepo{venues: make(map[string]*models.Venue)}
}

func (f *fakeVenuesRepo) CreateVenue(_ context.Context, venue *models.Venue) (*models.Venue, error) {
	venue.ID = primitive.NewObjectID()
	f.venues[venue.ID.Hex()] = venue
	return venue, nil
}

func (f *fakeVenuesRepo) QueryVenues(_ context.Context, _ models.VenueFilter) ([]*models.Venue, error) {
	return f.list(), nil
}

func (f *fakeVenuesRepo) GetVenueByID(_ context.Context, id string) (*models.Venue, error) {
	return f.venues[id], nil
}

func (f *fakeVenuesRepo) ListVenues(_ context.Context, _ int64) ([]*models.Venue, error) {
	return f.list(), nil
}

func (f *fakeVenuesRepo) UpdateVenueRating(_ context.Context, venueID string, rating float64, totalReviews int) error {
	if v, ok := f.venues[venueID]; ok {
		v.Rating = rating
		v.TotalReviews = totalReviews
	}
	return nil
}

func (f *fakeVenuesRepo) DeleteVenue(_ context.Context, id string) error {
	delete(f.venues, id)
	return nil
}

func (f *fakeVenuesRepo) list() []*models.Venue {
	out := make([]*models.Venue, 0, len(f.venues))
	for _, v := range f.venues {
		out = append(out, v)
	}
	return out
}

func seedVenue(t *testing.T, repo *fakeVenuesRepo) *models.Venue {
	t.Helper()
	venue, err := repo.CreateVenue(context.Background(), &models.Venue{
		Name:        "Happy Farm Experience",
		Description: "Tractor rides and animal feeding",
		Category:    "Farm",
		AgeRange:    models.AgeRange{Min: 2, Max: 12},
	})
	if err != nil {
		t.Fatalf("CreateVenue: %v", err)
	}
	return venue
}

func TestCreateReviewRecomputesVenueRating(t *testing.T) {
	reviewsRepo := &fakeReviewsRepo{}
	venuesRepo := newFakeVenuesRepo()
	svc := NewReviewsService(reviewsRepo, venuesRepo)

	venue := seedVenue(t, venuesRepo)
	if venue.Rating != 0.0 || venue.TotalReviews != 0 {
		t.Fatalf("fresh venue rating = %v/%d, want 0.0/0", venue.Rating, venue.TotalReviews)
	}
	id := venue.ID.Hex()

	_, err := svc.CreateReview(context.Background(), &models.ReviewCreate{
		VenueID: id, UserID: "u1", UserName: "Alex", Rating: 5, Comment: "Loved it",
	})
	if err != nil {
		t.Fatalf("CreateReview: %v", err)
	}
	if venue.Rating != 5.0 || venue.TotalReviews != 1 {
		t.Errorf("after one review: %v/%d, want 5.0/1", venue.Rating, venue.TotalReviews)
	}

	_, err = svc.CreateReview(context.Background(), &models.ReviewCreate{
		VenueID: id, UserID: "u2", UserName: "Sam", Rating: 3, Comment: "Busy on weekends",
	})
	if err != nil {
		t.Fatalf("CreateReview: %v", err)
	}
	if venue.Rating != 4.0 || venue.TotalReviews != 2 {
		t.Errorf("after two reviews: %v/%d, want 4.0/2", venue.Rating, venue.TotalReviews)
	}
}

func TestCreateReviewWithoutVenueSkipsRecompute(t *testing.T) {
	reviewsRepo := &fakeReviewsRepo{}
	venuesRepo := newFakeVenuesRepo()
	svc := NewReviewsService(reviewsRepo, venuesRepo)

	venue := seedVenue(t, venuesRepo)

	_, err := svc.CreateReview(context.Background(), &models.ReviewCreate{
		EventID: primitive.NewObjectID().Hex(),
		UserID:  "u1", UserName: "Alex", Rating: 4, Comment: "Fun event",
	})
	if err != nil {
		t.Fatalf("CreateReview: %v", err)
	}

	if venue.Rating != 0.0 || venue.TotalReviews != 0 {
		t.Errorf("event review touched venue aggregate: %v/%d", venue.Rating, venue.TotalReviews)
	}
}

func TestCreateReviewValidatesRatingBounds(t *testing.T) {
	svc := NewReviewsService(&fakeReviewsRepo{}, newFakeVenuesRepo())

	for _, rating := range []int{0, 6} {
		_, err := svc.CreateReview(context.Background(), &models.ReviewCreate{
			UserID: "u1", UserName: "Alex", Rating: rating, Comment: "x",
		})
		if err == nil {
			t.Errorf("rating %d accepted, want validation error", rating)
		}
	}
}
