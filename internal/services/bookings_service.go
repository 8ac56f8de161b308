package services

import (
	"context"
	"fmt"

	"github.com/famigo-app/api/internal/helpers"
	"github.com/famigo-app/api/internal/models"
)

type BookingsService struct {
	bookingsRepo models.BookingsRepo
}

func NewBookingsService(bookingsRepo models.BookingsRepo) *BookingsService {
	return &BookingsService{
		bookingsRepo: bookingsRepo,
	}
}

func (bs *BookingsService) CreateBooking(ctx context.Context, req *models.BookingCreate) (*models.Booking, error) {
	if err := models.Validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid booking data: %w", err)
	}
	booking := req.ToBooking(helpers.GenerateTicketCode())
	return bs.bookingsRepo.CreateBooking(ctx, booking)
}

func (bs *BookingsService) UserBookings(ctx context.Context, userID string) ([]*models.Booking, error) {
	return bs.bookingsRepo.ListUserBookings(ctx, userID)
}

func (bs *BookingsService) ConfirmBooking(ctx context.Context, id string) error {
	return bs.bookingsRepo.ConfirmBooking(ctx, id)
}
