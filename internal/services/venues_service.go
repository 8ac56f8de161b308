package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/famigo-app/api/internal/models"
)

type VenuesService struct {
	venuesRepo models.VenuesRepo
}

func NewVenuesService(venuesRepo models.VenuesRepo) *VenuesService {
	return &VenuesService{
		venuesRepo: venuesRepo,
	}
}

func (vs *VenuesService) CreateVenue(ctx context.Context, req *models.VenueCreate) (*models.Venue, error) {
	if err := models.Validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid venue data: %w", err)
	}
	return vs.venuesRepo.CreateVenue(ctx, req.ToVenue())
}

func (vs *VenuesService) QueryVenues(ctx context.Context, filter models.VenueFilter) ([]*models.Venue, error) {
	return vs.venuesRepo.QueryVenues(ctx, filter)
}

func (vs *VenuesService) GetVenue(ctx context.Context, id string) (*models.Venue, error) {
	return vs.venuesRepo.GetVenueByID(ctx, id)
}

// NearbyVenues filters the venue list by planar approximate distance from
// the query point and sorts ascending by it. Venues without coordinates are
// skipped, not erred.
func (vs *VenuesService) NearbyVenues(ctx context.Context, lat, lng, radiusKm float64) ([]*models.Venue, error) {
	venues, err := vs.venuesRepo.ListVenues(ctx, models.ListCap)
	if err != nil {
		return nil, err
	}

	nearby := make([]*models.Venue, 0)
	for _, v := range venues {
		coords := v.Location.Coordinates
		if coords == nil {
			continue
		}
		distance := models.ApproxDistanceKm(lat, lng, coords.Lat, coords.Lng)
		if distance <= radiusKm {
			v.Distance = models.Round2(distance)
			nearby = append(nearby, v)
		}
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].Distance < nearby[j].Distance
	})
	return nearby, nil
}
