package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EventsRepo interface {
	CreateEvent(ctx context.Context, event *Event) (*Event, error)
	QueryEvents(ctx context.Context, filter EventFilter) ([]*Event, error)
	GetEventByID(ctx context.Context, id string) (*Event, error)
	ListEvents(ctx context.Context, limit int64) ([]*Event, error)
	DeleteEvent(ctx context.Context, id string) error

	UpsertRSVP(ctx context.Context, eventID string, req *RSVPRequest) error
	CountAcceptedRSVPs(ctx context.Context, eventID string) (int64, error)
	SetParticipantCount(ctx context.Context, eventID string, count int64) error
	ListAttendees(ctx context.Context, eventID string) ([]*RSVP, error)
}

func (mdb *MongodbRepo) CreateEvent(ctx context.Context, event *Event) (*Event, error) {
	res, err := mdb.col(EventsCol).InsertOne(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("failed to insert event: %w", err)
	}
	event.ID = res.InsertedID.(primitive.ObjectID)
	return event, nil
}

func buildEventFilter(f EventFilter) bson.M {
	filter := bson.M{}
	if f.EventType != "" {
		filter["event_type"] = f.EventType
	}
	if f.IsPublic != nil {
		filter["is_public"] = *f.IsPublic
	}
	if f.HostID != "" {
		filter["host_id"] = f.HostID
	}
	return filter
}

func (mdb *MongodbRepo) QueryEvents(ctx context.Context, filter EventFilter) ([]*Event, error) {
	// Upcoming first.
	return mdb.findEvents(ctx, buildEventFilter(filter), findSorted(ListCap, "date", 1))
}

func (mdb *MongodbRepo) ListEvents(ctx context.Context, limit int64) ([]*Event, error) {
	return mdb.findEvents(ctx, bson.M{}, findLimit(limit))
}

func (mdb *MongodbRepo) findEvents(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*Event, error) {
	cursor, err := mdb.col(EventsCol).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer cursor.Close(ctx)

	events := make([]*Event, 0)
	for cursor.Next(ctx) {
		var e Event
		if err := cursor.Decode(&e); err != nil {
			return nil, fmt.Errorf("failed to decode event: %w", err)
		}
		events = append(events, &e)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("event cursor error: %w", err)
	}
	return events, nil
}

func (mdb *MongodbRepo) GetEventByID(ctx context.Context, id string) (*Event, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	var e Event
	err = mdb.col(EventsCol).FindOne(ctx, bson.M{"_id": oid}).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &e, nil
}

func (mdb *MongodbRepo) DeleteEvent(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	if _, err := mdb.col(EventsCol).DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// UpsertRSVP keeps at most one RSVP per (event_id, user_id): a repeat
// submission overwrites the status in place instead of adding a document.
func (mdb *MongodbRepo) UpsertRSVP(ctx context.Context, eventID string, req *RSVPRequest) error {
	filter := bson.M{"event_id": eventID, "user_id": req.UserID}
	update := bson.M{
		"$set": bson.M{"status": req.Status},
		"$setOnInsert": bson.M{
			"event_id":   eventID,
			"user_id":    req.UserID,
			"user_name":  req.UserName,
			"created_at": time.Now().UTC(),
		},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := mdb.col(RSVPsCol).UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert rsvp: %w", err)
	}
	return nil
}

func (mdb *MongodbRepo) CountAcceptedRSVPs(ctx context.Context, eventID string) (int64, error) {
	count, err := mdb.col(RSVPsCol).CountDocuments(ctx, bson.M{"event_id": eventID, "status": RSVPAccepted})
	if err != nil {
		return 0, fmt.Errorf("failed to count rsvps: %w", err)
	}
	return count, nil
}

func (mdb *MongodbRepo) SetParticipantCount(ctx context.Context, eventID string, count int64) error {
	oid, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return ErrInvalidID
	}
	_, err = mdb.col(EventsCol).UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{"current_participants": count},
	})
	if err != nil {
		return fmt.Errorf("failed to update participant count: %w", err)
	}
	return nil
}

func (mdb *MongodbRepo) ListAttendees(ctx context.Context, eventID string) ([]*RSVP, error) {
	cursor, err := mdb.col(RSVPsCol).Find(ctx,
		bson.M{"event_id": eventID, "status": RSVPAccepted}, findLimit(ListCap))
	if err != nil {
		return nil, fmt.Errorf("failed to query attendees: %w", err)
	}
	defer cursor.Close(ctx)

	attendees := make([]*RSVP, 0)
	for cursor.Next(ctx) {
		var r RSVP
		if err := cursor.Decode(&r); err != nil {
			return nil, fmt.Errorf("failed to decode rsvp: %w", err)
		}
		attendees = append(attendees, &r)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("rsvp cursor error: %w", err)
	}
	return attendees, nil
}
