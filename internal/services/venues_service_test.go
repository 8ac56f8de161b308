package services

import (
	"context"
	"testing"

	"github.com/famigo-app/api/internal/models"
)

func addVenueAt(t *testing.T, repo *fakeVenuesRepo, name string, coords *models.Coordinates) *models.Venue {
	t.Helper()
	venue, err := repo.CreateVenue(context.Background(), &models.Venue{
		Name:        name,
		Description: "test venue",
		Category:    "Outdoor",
		Location:    models.Location{City: "Melbourne", Coordinates: coords},
	})
	if err != nil {
		t.Fatalf("CreateVenue: %v", err)
	}
	return venue
}

func TestNearbyVenuesFiltersAndSortsByDistance(t *testing.T) {
	repo := newFakeVenuesRepo()
	svc := NewVenuesService(repo)

	origin := models.Coordinates{Lat: -37.8136, Lng: 144.9631}
	addVenueAt(t, repo, "At origin", &origin)
	addVenueAt(t, repo, "Close by", &models.Coordinates{Lat: -37.8236, Lng: 144.9631})   // ~1.1 km
	addVenueAt(t, repo, "Further out", &models.Coordinates{Lat: -37.9136, Lng: 144.9631}) // ~11.1 km
	addVenueAt(t, repo, "Far away", &models.Coordinates{Lat: -36.8136, Lng: 144.9631})    // ~111 km
	addVenueAt(t, repo, "No coordinates", nil)

	nearby, err := svc.NearbyVenues(context.Background(), origin.Lat, origin.Lng, 50)
	if err != nil {
		t.Fatalf("NearbyVenues: %v", err)
	}

	want := []string{"At origin", "Close by", "Further out"}
	if len(nearby) != len(want) {
		t.Fatalf("got %d venues, want %d", len(nearby), len(want))
	}
	for i, name := range want {
		if nearby[i].Name != name {
			t.Errorf("nearby[%d] = %q, want %q", i, nearby[i].Name, name)
		}
	}

	// A venue at the query point has distance 0 and is included for any
	// non-negative radius.
	if nearby[0].Distance != 0 {
		t.Errorf("distance at origin = %v, want 0", nearby[0].Distance)
	}

	zeroRadius, err := svc.NearbyVenues(context.Background(), origin.Lat, origin.Lng, 0)
	if err != nil {
		t.Fatalf("NearbyVenues: %v", err)
	}
	if len(zeroRadius) != 1 || zeroRadius[0].Name != "At origin" {
		t.Errorf("zero radius results = %+v, want only the venue at the origin", zeroRadius)
	}
}

func TestNearbyVenuesSkipsVenuesWithoutCoordinates(t *testing.T) {
	repo := newFakeVenuesRepo()
	svc := NewVenuesService(repo)

	addVenueAt(t, repo, "No coordinates", nil)

	nearby, err := svc.NearbyVenues(context.Background(), 0, 0, 1000)
	if err != nil {
		t.Fatalf("NearbyVenues: %v", err)
	}
	if len(nearby) != 0 {
		t.Errorf("got %d venues, want 0", len(nearby))
	}
}

func TestCreateVenueAppliesDefaults(t *testing.T) {
	repo := newFakeVenuesRepo()
	svc := NewVenuesService(repo)

	venue, err := svc.CreateVenue(context.Background(), &models.VenueCreate{
		Name:        "Sunshine Indoor Play Centre",
		Description: "Soft play and a toddler zone",
		Category:    "Indoor",
		Location:    &models.Location{Address: "123 Play St", City: "Melbourne"},
		Pricing:     &models.Pricing{Type: models.PricingPaid, Amount: 15, Currency: "AUD"},
		AgeRange:    &models.AgeRange{Min: 1, Max: 10},
	})
	if err != nil {
		t.Fatalf("CreateVenue: %v", err)
	}

	if venue.Rating != 0.0 || venue.TotalReviews != 0 {
		t.Errorf("aggregates = %v/%d, want 0.0/0", venue.Rating, venue.TotalReviews)
	}
	if venue.IsVerified {
		t.Error("new venue should not be verified")
	}
	if venue.Images == nil || venue.Facilities == nil {
		t.Error("optional slices should default to empty, not nil")
	}
}

func TestCreateVenueRejectsMissingRequiredFields(t *testing.T) {
	svc := NewVenuesService(newFakeVenuesRepo())

	_, err := svc.CreateVenue(context.Background(), &models.VenueCreate{
		Name: "No description or location",
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
}
