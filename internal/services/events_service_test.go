package services

import (
	"context"
	"testing"
	"time"

	"github.com/famigo-app/api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeEventsRepo struct {
	events map[string]*models.Event
	rsvps  []*models.RSVP
}

func newFakeEventsRepo() *fakeEventsRepo {
	return &fakeEventsRepo{events: make(map[string]*models.Event)}
}

func (f *fakeEventsRepo) CreateEvent(_ context.Context, event *models.Event) (*models.Event, error) {
	event.ID = primitive.NewObjectID()
	f.events[event.ID.Hex()] = event
	return event, nil
}

func (f *fakeEventsRepo) QueryEvents(_ context.Context, _ models.EventFilter) ([]*models.Event, error) {
	out := make([]*models.Event, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEventsRepo) GetEventByID(_ context.Context, id string) (*models.Event, error) {
	return f.events[id], nil
}

func (f *fakeEventsRepo) ListEvents(_ context.Context, _ int64) ([]*models.Event, error) {
	return f.QueryEvents(context.Background(), models.EventFilter{})
}

func (f *fakeEventsRepo) DeleteEvent(_ context.Context, id string) error {
	delete(f.events, id)
	return nil
}

func (f *fakeEventsRepo) UpsertRSVP(_ context.Context, eventID string, req *models.RSVPRequest) error {
	for _, r := range f.rsvps {
		if r.EventID == eventID && r.UserID == req.UserID {
			r.Status = req.Status
			return nil
		}
	}
	f.rsvps = append(f.rsvps, &models.RSVP{
		EventID:   eventID,
		UserID:    req.UserID,
		UserName:  req.UserName,
		Status:    req.Status,
		CreatedAt: time.Now(),
	})
	return nil
}

func (f *fakeEventsRepo) CountAcceptedRSVPs(_ context.Context, eventID string) (int64, error) {
	var n int64
	for _, r := range f.rsvps {
		if r.EventID == eventID && r.Status == models.RSVPAccepted {
			n++
		}
	}
	return n, nil
}

func (f *fakeEventsRepo) SetParticipantCount(_ context.Context, eventID string, count int64) error {
	if e, ok := f.events[eventID]; ok {
		e.CurrentParticipants = int(count)
	}
	return nil
}

func (f *fakeEventsRepo) ListAttendees(_ context.Context, eventID string) ([]*models.RSVP, error) {
	out := make([]*models.RSVP, 0)
	for _, r := range f.rsvps {
		if r.EventID == eventID && r.Status == models.RSVPAccepted {
			out = append(out, r)
		}
	}
	return out, nil
}

func newTestEvent(t *testing.T, svc *EventsService, maxParticipants int) *models.Event {
	t.Helper()
	loc := &models.Location{Address: "1 Park St", City: "Melbourne"}
	event, err := svc.CreateEvent(context.Background(), &models.EventCreate{
		Title:           "Playdate in the park",
		Description:     "Bring snacks",
		EventType:       models.EventTypePlaydate,
		Date:            time.Now().Add(48 * time.Hour),
		Location:        loc,
		HostID:          "host-1",
		HostName:        "Sam",
		AgeRange:        &models.AgeRange{Min: 2, Max: 8},
		MaxParticipants: maxParticipants,
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if event.CurrentParticipants != 0 {
		t.Fatalf("new event current_participants = %d, want 0", event.CurrentParticipants)
	}
	return event
}

func rsvp(t *testing.T, svc *EventsService, eventID, userID, status string) {
	t.Helper()
	err := svc.RSVP(context.Background(), eventID, &models.RSVPRequest{
		UserID:   userID,
		UserName: "User " + userID,
		Status:   status,
	})
	if err != nil {
		t.Fatalf("RSVP(%s, %s): %v", userID, status, err)
	}
}

func TestRSVPAcceptedUpdatesParticipantCount(t *testing.T) {
	repo := newFakeEventsRepo()
	svc := NewEventsService(repo)
	event := newTestEvent(t, svc, 10)
	id := event.ID.Hex()

	rsvp(t, svc, id, "a", models.RSVPAccepted)
	if repo.events[id].CurrentParticipants != 1 {
		t.Errorf("after first accept: count = %d, want 1", repo.events[id].CurrentParticipants)
	}

	rsvp(t, svc, id, "b", models.RSVPAccepted)
	if repo.events[id].CurrentParticipants != 2 {
		t.Errorf("after second accept: count = %d, want 2", repo.events[id].CurrentParticipants)
	}
}

func TestRSVPNoCapAtMaxParticipants(t *testing.T) {
	repo := newFakeEventsRepo()
	svc := NewEventsService(repo)
	event := newTestEvent(t, svc, 2)
	id := event.ID.Hex()

	rsvp(t, svc, id, "a", models.RSVPAccepted)
	rsvp(t, svc, id, "b", models.RSVPAccepted)
	rsvp(t, svc, id, "c", models.RSVPAccepted)

	// max_participants is advisory only; the count overshoots.
	if repo.events[id].CurrentParticipants != 3 {
		t.Errorf("count = %d, want 3", repo.events[id].CurrentParticipants)
	}
}

func TestRSVPUpsertKeepsOneRecordPerUser(t *testing.T) {
	repo := newFakeEventsRepo()
	svc := NewEventsService(repo)
	event := newTestEvent(t, svc, 10)
	id := event.ID.Hex()

	rsvp(t, svc, id, "a", models.RSVPMaybe)
	rsvp(t, svc, id, "a", models.RSVPAccepted)

	if len(repo.rsvps) != 1 {
		t.Fatalf("rsvp documents = %d, want 1", len(repo.rsvps))
	}
	if repo.rsvps[0].Status != models.RSVPAccepted {
		t.Errorf("status = %q, want %q", repo.rsvps[0].Status, models.RSVPAccepted)
	}
	if repo.events[id].CurrentParticipants != 1 {
		t.Errorf("count = %d, want 1", repo.events[id].CurrentParticipants)
	}
}

func TestRSVPDeclineLeavesCountUntouched(t *testing.T) {
	repo := newFakeEventsRepo()
	svc := NewEventsService(repo)
	event := newTestEvent(t, svc, 10)
	id := event.ID.Hex()

	rsvp(t, svc, id, "a", models.RSVPAccepted)
	rsvp(t, svc, id, "b", models.RSVPAccepted)

	// Switching from accepted to declined does not decrement the public
	// count; only the next accepted RSVP forces a recount.
	rsvp(t, svc, id, "a", models.RSVPDeclined)
	if repo.events[id].CurrentParticipants != 2 {
		t.Errorf("after decline: count = %d, want 2 (decline does not recount)", repo.events[id].CurrentParticipants)
	}

	rsvp(t, svc, id, "c", models.RSVPAccepted)
	if repo.events[id].CurrentParticipants != 2 {
		t.Errorf("after next accept: count = %d, want 2", repo.events[id].CurrentParticipants)
	}
}

func TestRSVPRejectsUnknownStatus(t *testing.T) {
	repo := newFakeEventsRepo()
	svc := NewEventsService(repo)
	event := newTestEvent(t, svc, 10)

	err := svc.RSVP(context.Background(), event.ID.Hex(), &models.RSVPRequest{
		UserID:   "a",
		UserName: "User a",
		Status:   "attending",
	})
	if err == nil {
		t.Fatal("expected validation error for unknown status")
	}
}

func TestAttendeesListsAcceptedOnly(t *testing.T) {
	repo := newFakeEventsRepo()
	svc := NewEventsService(repo)
	event := newTestEvent(t, svc, 10)
	id := event.ID.Hex()

	rsvp(t, svc, id, "a", models.RSVPAccepted)
	rsvp(t, svc, id, "b", models.RSVPDeclined)
	rsvp(t, svc, id, "c", models.RSVPMaybe)

	attendees, err := svc.Attendees(context.Background(), id)
	if err != nil {
		t.Fatalf("Attendees: %v", err)
	}
	if len(attendees) != 1 || attendees[0].UserID != "a" {
		t.Errorf("attendees = %+v, want only user a", attendees)
	}
}
