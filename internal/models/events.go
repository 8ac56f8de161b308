package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	EventTypePlaydate   = "playdate"
	EventTypeVenueEvent = "venue_event"

	RSVPAccepted = "accepted"
	RSVPDeclined = "declined"
	RSVPMaybe    = "maybe"
)

type Event struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title               string             `bson:"title" json:"title"`
	Description         string             `bson:"description" json:"description"`
	EventType           string             `bson:"event_type" json:"event_type"`
	Date                time.Time          `bson:"date" json:"date"`
	Location            Location           `bson:"location" json:"location"`
	HostID              string             `bson:"host_id" json:"host_id"`
	HostName            string             `bson:"host_name" json:"host_name"`
	AgeRange            AgeRange           `bson:"age_range" json:"age_range"`
	MaxParticipants     int                `bson:"max_participants" json:"max_participants"`
	CurrentParticipants int                `bson:"current_participants" json:"current_participants"`
	IsPublic            bool               `bson:"is_public" json:"is_public"`
	Images              []string           `bson:"images" json:"images"`
	VenueID             string             `bson:"venue_id,omitempty" json:"venue_id,omitempty"`
	CreatedAt           time.Time          `bson:"created_at" json:"created_at"`
}

type EventCreate struct {
	Title           string     `json:"title" validate:"required"`
	Description     string     `json:"description" validate:"required"`
	EventType       string     `json:"event_type" validate:"required,oneof=playdate venue_event"`
	Date            time.Time  `json:"date" validate:"required"`
	Location        *Location  `json:"location" validate:"required"`
	HostID          string     `json:"host_id" validate:"required"`
	HostName        string     `json:"host_name" validate:"required"`
	AgeRange        *AgeRange  `json:"age_range" validate:"required"`
	MaxParticipants int        `json:"max_participants"`
	IsPublic        *bool      `json:"is_public"`
	Images          []string   `json:"images"`
	VenueID         string     `json:"venue_id"`
}

// ToEvent applies creation defaults. The participant count always starts at
// zero regardless of what the caller sends; it is owned by the RSVP path.
func (ec *EventCreate) ToEvent() *Event {
	e := &Event{
		Title:               ec.Title,
		Description:         ec.Description,
		EventType:           ec.EventType,
		Date:                ec.Date,
		Location:            *ec.Location,
		HostID:              ec.HostID,
		HostName:            ec.HostName,
		AgeRange:            *ec.AgeRange,
		MaxParticipants:     ec.MaxParticipants,
		CurrentParticipants: 0,
		IsPublic:            true,
		Images:              ec.Images,
		VenueID:             ec.VenueID,
		CreatedAt:           time.Now().UTC(),
	}
	if ec.IsPublic != nil {
		e.IsPublic = *ec.IsPublic
	}
	if e.Images == nil {
		e.Images = []string{}
	}
	return e
}

type RSVP struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EventID   string             `bson:"event_id" json:"event_id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	UserName  string             `bson:"user_name" json:"user_name"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

type RSVPRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	UserName string `json:"user_name" validate:"required"`
	Status   string `json:"status" validate:"required,oneof=accepted declined maybe"`
}

type EventFilter struct {
	EventType string
	IsPublic  *bool
	HostID    string
}
