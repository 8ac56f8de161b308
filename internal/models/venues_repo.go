package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrInvalidID marks a path/reference identifier that is not a valid
// ObjectId hex string. Handlers map it to a 400.
var ErrInvalidID = errors.New("invalid id format")

type VenuesRepo interface {
	CreateVenue(ctx context.Context, venue *Venue) (*Venue, error)
	QueryVenues(ctx context.Context, filter VenueFilter) ([]*Venue, error)
	GetVenueByID(ctx context.Context, id string) (*Venue, error)
	ListVenues(ctx context.Context, limit int64) ([]*Venue, error)
	UpdateVenueRating(ctx context.Context, venueID string, rating float64, totalReviews int) error
	DeleteVenue(ctx context.Context, id string) error
}

func (mdb *MongodbRepo) CreateVenue(ctx context.Context, venue *Venue) (*Venue, error) {
	res, err := mdb.col(VenuesCol).InsertOne(ctx, venue)
	if err != nil {
		return nil, fmt.Errorf("failed to insert venue: %w", err)
	}
	venue.ID = res.InsertedID.(primitive.ObjectID)
	return venue, nil
}

// buildVenueFilter translates the optional query parameters into a single
// combined mongo filter. Every clause ANDs with the rest; the search clause
// ORs name against description internally.
func buildVenueFilter(f VenueFilter) bson.M {
	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	// Age overlap, not containment: the venue matches when its age range
	// intersects the queried one.
	if f.MinAge != nil {
		filter["age_range.max"] = bson.M{"$gte": *f.MinAge}
	}
	if f.MaxAge != nil {
		filter["age_range.min"] = bson.M{"$lte": *f.MaxAge}
	}
	if f.PriceType != "" {
		filter["pricing.type"] = f.PriceType
	}
	if f.Search != "" {
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": f.Search, "$options": "i"}},
			{"description": bson.M{"$regex": f.Search, "$options": "i"}},
		}
	}
	return filter
}

func (mdb *MongodbRepo) QueryVenues(ctx context.Context, filter VenueFilter) ([]*Venue, error) {
	return mdb.findVenues(ctx, buildVenueFilter(filter), ListCap)
}

func (mdb *MongodbRepo) ListVenues(ctx context.Context, limit int64) ([]*Venue, error) {
	return mdb.findVenues(ctx, bson.M{}, limit)
}

func (mdb *MongodbRepo) findVenues(ctx context.Context, filter bson.M, limit int64) ([]*Venue, error) {
	cursor, err := mdb.col(VenuesCol).Find(ctx, filter, findLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query venues: %w", err)
	}
	defer cursor.Close(ctx)

	venues := make([]*Venue, 0)
	for cursor.Next(ctx) {
		var v Venue
		if err := cursor.Decode(&v); err != nil {
			return nil, fmt.Errorf("failed to decode venue: %w", err)
		}
		venues = append(venues, &v)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("venue cursor error: %w", err)
	}
	return venues, nil
}

func (mdb *MongodbRepo) GetVenueByID(ctx context.Context, id string) (*Venue, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	var v Venue
	err = mdb.col(VenuesCol).FindOne(ctx, bson.M{"_id": oid}).Decode(&v)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get venue: %w", err)
	}
	return &v, nil
}

func (mdb *MongodbRepo) UpdateVenueRating(ctx context.Context, venueID string, rating float64, totalReviews int) error {
	oid, err := primitive.ObjectIDFromHex(venueID)
	if err != nil {
		return ErrInvalidID
	}
	_, err = mdb.col(VenuesCol).UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{"rating": rating, "total_reviews": totalReviews},
	})
	if err != nil {
		return fmt.Errorf("failed to update venue rating: %w", err)
	}
	return nil
}

func (mdb *MongodbRepo) DeleteVenue(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	if _, err := mdb.col(VenuesCol).DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("failed to delete venue: %w", err)
	}
	return nil
}
