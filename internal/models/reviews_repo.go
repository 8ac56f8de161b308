package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReviewsRepo interface {
	CreateReview(ctx context.Context, review *Review) (*Review, error)
	// ListVenueReviews returns newest first, capped for display.
	ListVenueReviews(ctx context.Context, venueID string) ([]*Review, error)
	// AllVenueReviews is the uncapped-in-practice read backing the rating
	// recomputation; ordering does not matter there.
	AllVenueReviews(ctx context.Context, venueID string) ([]*Review, error)
}

func (mdb *MongodbRepo) CreateReview(ctx context.Context, review *Review) (*Review, error) {
	res, err := mdb.col(ReviewsCol).InsertOne(ctx, review)
	if err != nil {
		return nil, fmt.Errorf("failed to insert review: %w", err)
	}
	review.ID = res.InsertedID.(primitive.ObjectID)
	return review, nil
}

func (mdb *MongodbRepo) ListVenueReviews(ctx context.Context, venueID string) ([]*Review, error) {
	cursor, err := mdb.col(ReviewsCol).Find(ctx,
		bson.M{"venue_id": venueID}, findSorted(ListCap, "created_at", -1))
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer cursor.Close(ctx)
	return decodeReviews(ctx, cursor)
}

func (mdb *MongodbRepo) AllVenueReviews(ctx context.Context, venueID string) ([]*Review, error) {
	cursor, err := mdb.col(ReviewsCol).Find(ctx,
		bson.M{"venue_id": venueID}, findLimit(AdminListCap))
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer cursor.Close(ctx)
	return decodeReviews(ctx, cursor)
}

func decodeReviews(ctx context.Context, cursor *mongo.Cursor) ([]*Review, error) {
	reviews := make([]*Review, 0)
	for cursor.Next(ctx) {
		var r Review
		if err := cursor.Decode(&r); err != nil {
			return nil, fmt.Errorf("failed to decode review: %w", err)
		}
		reviews = append(reviews, &r)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("review cursor error: %w", err)
	}
	return reviews, nil
}
