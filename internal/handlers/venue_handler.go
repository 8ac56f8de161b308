package handlers

import (
	"net/http"
	"strconv"

	"github.com/famigo-app/api/internal/helpers"
	"github.com/famigo-app/api/internal/models"
	"github.com/famigo-app/api/internal/services"
	"github.com/gin-gonic/gin"
)

func CreateVenue(v *services.VenuesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.VenueCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		venue, err := v.CreateVenue(c.Request.Context(), &req)
		if err != nil {
			c.JSON(statusFromError(err), helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, venue)
	}
}

func ListVenues(v *services.VenuesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := models.VenueFilter{
			Category:  c.Query("category"),
			PriceType: c.Query("price_type"),
			Search:    c.Query("search"),
		}
		if raw := c.Query("min_age"); raw != "" {
			age, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid min_age parameter"))
				return
			}
			filter.MinAge = &age
		}
		if raw := c.Query("max_age"); raw != "" {
			age, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid max_age parameter"))
				return
			}
			filter.MaxAge = &age
		}

		venues, err := v.QueryVenues(c.Request.Context(), filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, venues)
	}
}

func GetVenue(v *services.VenuesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		venue, err := v.GetVenue(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(statusFromError(err), helpers.ErrorResponse(err.Error()))
			return
		}
		if venue == nil {
			c.JSON(http.StatusNotFound, helpers.ErrorResponse("Venue not found"))
			return
		}

		c.JSON(http.StatusOK, venue)
	}
}

func NearbyVenues(v *services.VenuesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lat, err := strconv.ParseFloat(c.Query("lat"), 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid lat parameter"))
			return
		}
		lng, err := strconv.ParseFloat(c.Query("lng"), 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid lng parameter"))
			return
		}
		radius, err := strconv.ParseFloat(c.DefaultQuery("radius", "50"), 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid radius parameter"))
			return
		}

		venues, err := v.NearbyVenues(c.Request.Context(), lat, lng, radius)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, venues)
	}
}
