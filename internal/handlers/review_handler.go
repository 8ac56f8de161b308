package handlers

import (
	"net/http"

	"github.com/famigo-app/api/internal/helpers"
	"github.com/famigo-app/api/internal/models"
	"github.com/famigo-app/api/internal/services"
	"github.com/gin-gonic/gin"
)

func CreateReview(r *services.ReviewsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ReviewCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		review, err := r.CreateReview(c.Request.Context(), &req)
		if err != nil {
			c.JSON(statusFromError(err), helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, review)
	}
}

func VenueReviews(r *services.ReviewsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews, err := r.VenueReviews(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, reviews)
	}
}
