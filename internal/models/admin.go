package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	Icon        string             `bson:"icon" json:"icon" validate:"required"`
	Color       string             `bson:"color" json:"color" validate:"required"`
	Description string             `bson:"description" json:"description" validate:"required"`
	IsActive    bool               `bson:"is_active" json:"is_active"`
	CreatedAt   time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt   time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// ThemeConfig is a singleton settings document keyed by {"type":"theme"}.
type ThemeConfig struct {
	PrimaryColor    string    `bson:"primary_color" json:"primary_color"`
	TextColor       string    `bson:"text_color" json:"text_color"`
	IconColor       string    `bson:"icon_color" json:"icon_color"`
	AccentColor     string    `bson:"accent_color" json:"accent_color"`
	BackgroundColor string    `bson:"background_color" json:"background_color"`
	UpdatedAt       time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

func DefaultTheme() ThemeConfig {
	return ThemeConfig{
		PrimaryColor:    "#6D9773",
		TextColor:       "#0C3B2E",
		IconColor:       "#BB8A52",
		AccentColor:     "#FFBA00",
		BackgroundColor: "#F9FAFB",
	}
}

type Stats struct {
	TotalVenues   int64 `json:"total_venues"`
	TotalEvents   int64 `json:"total_events"`
	TotalPosts    int64 `json:"total_posts"`
	TotalUsers    int64 `json:"total_users"`
	TotalBookings int64 `json:"total_bookings"`
	TotalReviews  int64 `json:"total_reviews"`
	PublicEvents  int64 `json:"public_events"`
	PrivateEvents int64 `json:"private_events"`
}
