package services

import (
	"context"
	"fmt"

	"github.com/famigo-app/api/internal/models"
)

type EventsService struct {
	eventsRepo models.EventsRepo
}

func NewEventsService(eventsRepo models.EventsRepo) *EventsService {
	return &EventsService{
		eventsRepo: eventsRepo,
	}
}

func (es *EventsService) CreateEvent(ctx context.Context, req *models.EventCreate) (*models.Event, error) {
	if err := models.Validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid event data: %w", err)
	}
	return es.eventsRepo.CreateEvent(ctx, req.ToEvent())
}

func (es *EventsService) QueryEvents(ctx context.Context, filter models.EventFilter) ([]*models.Event, error) {
	return es.eventsRepo.QueryEvents(ctx, filter)
}

func (es *EventsService) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	return es.eventsRepo.GetEventByID(ctx, id)
}

// RSVP upserts the caller's response and, for accepted responses only,
// recounts accepted RSVPs and writes the result onto the event. Declines
// and maybes deliberately leave current_participants untouched, so a user
// flipping accepted -> declined is not reflected until the next accepted
// RSVP forces a recount.
func (es *EventsService) RSVP(ctx context.Context, eventID string, req *models.RSVPRequest) error {
	if err := models.Validate.Struct(req); err != nil {
		return fmt.Errorf("invalid rsvp data: %w", err)
	}

	if err := es.eventsRepo.UpsertRSVP(ctx, eventID, req); err != nil {
		return err
	}

	if req.Status == models.RSVPAccepted {
		count, err := es.eventsRepo.CountAcceptedRSVPs(ctx, eventID)
		if err != nil {
			return err
		}
		// No cap against max_participants; overshoot is visible.
		if err := es.eventsRepo.SetParticipantCount(ctx, eventID, count); err != nil {
			return err
		}
	}
	return nil
}

func (es *EventsService) Attendees(ctx context.Context, eventID string) ([]*models.RSVP, error) {
	return es.eventsRepo.ListAttendees(ctx, eventID)
}
