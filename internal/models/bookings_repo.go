package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingsRepo interface {
	CreateBooking(ctx context.Context, booking *Booking) (*Booking, error)
	ListUserBookings(ctx context.Context, userID string) ([]*Booking, error)
	ConfirmBooking(ctx context.Context, id string) error
}

func (mdb *MongodbRepo) CreateBooking(ctx context.Context, booking *Booking) (*Booking, error) {
	res, err := mdb.col(BookingsCol).InsertOne(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("failed to insert booking: %w", err)
	}
	booking.ID = res.InsertedID.(primitive.ObjectID)
	return booking, nil
}

func (mdb *MongodbRepo) ListUserBookings(ctx context.Context, userID string) ([]*Booking, error) {
	cursor, err := mdb.col(BookingsCol).Find(ctx,
		bson.M{"user_id": userID}, findSorted(ListCap, "date", -1))
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := make([]*Booking, 0)
	for cursor.Next(ctx) {
		var b Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, &b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("booking cursor error: %w", err)
	}
	return bookings, nil
}

// ConfirmBooking is deliberately unconditional: no current-status check and
// no idempotency guard. Confirming twice is a harmless no-op.
func (mdb *MongodbRepo) ConfirmBooking(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	_, err = mdb.col(BookingsCol).UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{"status": BookingConfirmed, "payment_status": PaymentPaid},
	})
	if err != nil {
		return fmt.Errorf("failed to confirm booking: %w", err)
	}
	return nil
}
