package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"

	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        string             `bson:"user_id" json:"user_id"`
	UserName      string             `bson:"user_name" json:"user_name"`
	VenueID       string             `bson:"venue_id,omitempty" json:"venue_id,omitempty"`
	EventID       string             `bson:"event_id,omitempty" json:"event_id,omitempty"`
	Date          time.Time          `bson:"date" json:"date"`
	Status        string             `bson:"status" json:"status"`
	PaymentStatus string             `bson:"payment_status" json:"payment_status"`
	Amount        float64            `bson:"amount" json:"amount"`
	TicketCode    string             `bson:"ticket_code" json:"ticket_code"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}

type BookingCreate struct {
	UserID   string    `json:"user_id" validate:"required"`
	UserName string    `json:"user_name" validate:"required"`
	VenueID  string    `json:"venue_id"`
	EventID  string    `json:"event_id"`
	Date     time.Time `json:"date" validate:"required"`
	Amount   float64   `json:"amount"`
}

// ToBooking stamps the fixed initial state. The ticket code is assigned by
// the booking service, never by the caller.
func (bc *BookingCreate) ToBooking(ticketCode string) *Booking {
	return &Booking{
		UserID:        bc.UserID,
		UserName:      bc.UserName,
		VenueID:       bc.VenueID,
		EventID:       bc.EventID,
		Date:          bc.Date,
		Status:        BookingPending,
		PaymentStatus: PaymentPending,
		Amount:        bc.Amount,
		TicketCode:    ticketCode,
		CreatedAt:     time.Now().UTC(),
	}
}
