package handlers

import (
	"net/http"

	"github.com/famigo-app/api/internal/helpers"
	"github.com/famigo-app/api/internal/models"
	"github.com/famigo-app/api/internal/services"
	"github.com/gin-gonic/gin"
)

func CreateBooking(b *services.BookingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.BookingCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		booking, err := b.CreateBooking(c.Request.Context(), &req)
		if err != nil {
			c.JSON(statusFromError(err), helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, booking)
	}
}

func UserBookings(b *services.BookingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := b.UserBookings(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, bookings)
	}
}

func ConfirmBooking(b *services.BookingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := b.ConfirmBooking(c.Request.Context(), c.Param("id")); err != nil {
			c.JSON(statusFromError(err), helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(""))
	}
}
