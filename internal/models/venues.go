package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PricingFree = "free"
	PricingPaid = "paid"
)

// Coordinates is a plain lat/lng pair. Venues without coordinates simply
// omit the field; the nearby search skips them.
type Coordinates struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

type Location struct {
	Address     string       `bson:"address" json:"address"`
	City        string       `bson:"city" json:"city"`
	Coordinates *Coordinates `bson:"coordinates,omitempty" json:"coordinates,omitempty"`
}

type Pricing struct {
	Type     string  `bson:"type" json:"type" validate:"omitempty,oneof=free paid"`
	Amount   float64 `bson:"amount" json:"amount"`
	Currency string  `bson:"currency" json:"currency"`
}

type AgeRange struct {
	Min int `bson:"min" json:"min"`
	Max int `bson:"max" json:"max"`
}

type Contact struct {
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Email   string `bson:"email,omitempty" json:"email,omitempty"`
	Website string `bson:"website,omitempty" json:"website,omitempty"`
}

type Venue struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Description  string             `bson:"description" json:"description"`
	Category     string             `bson:"category" json:"category"` // Indoor, Outdoor, Farm, Playground, Circus, Learning, Free
	Location     Location           `bson:"location" json:"location"`
	Images       []string           `bson:"images" json:"images"`
	Pricing      Pricing            `bson:"pricing" json:"pricing"`
	Facilities   []string           `bson:"facilities" json:"facilities"`
	AgeRange     AgeRange           `bson:"age_range" json:"age_range"`
	Rating       float64            `bson:"rating" json:"rating"`
	TotalReviews int                `bson:"total_reviews" json:"total_reviews"`
	Contact      Contact            `bson:"contact" json:"contact"`
	IsVerified   bool               `bson:"is_verified" json:"is_verified"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`

	// Populated by the nearby search only, never stored.
	Distance float64 `bson:"-" json:"distance,omitempty"`
}

type VenueCreate struct {
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Category    string    `json:"category" validate:"required"`
	Location    *Location `json:"location" validate:"required"`
	Images      []string  `json:"images"`
	Pricing     *Pricing  `json:"pricing" validate:"required"`
	Facilities  []string  `json:"facilities"`
	AgeRange    *AgeRange `json:"age_range" validate:"required"`
	Contact     Contact   `json:"contact"`
}

// ToVenue applies creation defaults: aggregates start at zero and new
// venues are unverified until an admin flips them.
func (vc *VenueCreate) ToVenue() *Venue {
	v := &Venue{
		Name:         vc.Name,
		Description:  vc.Description,
		Category:     vc.Category,
		Location:     *vc.Location,
		Images:       vc.Images,
		Pricing:      *vc.Pricing,
		Facilities:   vc.Facilities,
		AgeRange:     *vc.AgeRange,
		Rating:       0.0,
		TotalReviews: 0,
		Contact:      vc.Contact,
		IsVerified:   false,
		CreatedAt:    time.Now().UTC(),
	}
	if v.Images == nil {
		v.Images = []string{}
	}
	if v.Facilities == nil {
		v.Facilities = []string{}
	}
	return v
}

// VenueFilter carries the optional list-venues query parameters. Nil/empty
// fields are omitted from the store filter entirely.
type VenueFilter struct {
	Category  string
	MinAge    *int
	MaxAge    *int
	PriceType string
	Search    string
}
