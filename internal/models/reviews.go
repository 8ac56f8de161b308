package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VenueID   string             `bson:"venue_id,omitempty" json:"venue_id,omitempty"`
	EventID   string             `bson:"event_id,omitempty" json:"event_id,omitempty"`
	UserID    string             `bson:"user_id" json:"user_id"`
	UserName  string             `bson:"user_name" json:"user_name"`
	Rating    int                `bson:"rating" json:"rating"`
	Comment   string             `bson:"comment" json:"comment"`
	Images    []string           `bson:"images" json:"images"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

type ReviewCreate struct {
	VenueID  string   `json:"venue_id"`
	EventID  string   `json:"event_id"`
	UserID   string   `json:"user_id" validate:"required"`
	UserName string   `json:"user_name" validate:"required"`
	Rating   int      `json:"rating" validate:"required,min=1,max=5"`
	Comment  string   `json:"comment" validate:"required"`
	Images   []string `json:"images"`
}

func (rc *ReviewCreate) ToReview() *Review {
	r := &Review{
		VenueID:   rc.VenueID,
		EventID:   rc.EventID,
		UserID:    rc.UserID,
		UserName:  rc.UserName,
		Rating:    rc.Rating,
		Comment:   rc.Comment,
		Images:    rc.Images,
		CreatedAt: time.Now().UTC(),
	}
	if r.Images == nil {
		r.Images = []string{}
	}
	return r
}
