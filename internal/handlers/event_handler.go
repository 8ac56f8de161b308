package handlers

import (
	"net/http"
	"strconv"

	"github.com/famigo-app/api/internal/helpers"
	"github.com/famigo-app/api/internal/models"
	"github.com/famigo-app/api/internal/services"
	"github.com/gin-gonic/gin"
)

func CreateEvent(e *services.EventsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.EventCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		event, err := e.CreateEvent(c.Request.Context(), &req)
		if err != nil {
			c.JSON(statusFromError(err), helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, event)
	}
}

func ListEvents(e *services.EventsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := models.EventFilter{
			EventType: c.Query("event_type"),
			HostID:    c.Query("host_id"),
		}
		if raw := c.Query("is_public"); raw != "" {
			isPublic, err := strconv.ParseBool(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid is_public parameter"))
				return
			}
			filter.IsPublic = &isPublic
		}

		events, err := e.QueryEvents(c.Request.Context(), filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, events)
	}
}

func GetEvent(e *services.EventsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, err := e.GetEvent(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(statusFromError(err), helpers.ErrorResponse(err.Error()))
			return
		}
		if event == nil {
			c.JSON(http.StatusNotFound, helpers.ErrorResponse("Event not found"))
			return
		}

		c.JSON(http.StatusOK, event)
	}
}

func RSVPEvent(e *services.EventsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.RSVPRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		if err := e.RSVP(c.Request.Context(), c.Param("id"), &req); err != nil {
			c.JSON(statusFromError(err), helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse("RSVP updated"))
	}
}

func EventAttendees(e *services.EventsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		attendees, err := e.Attendees(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, attendees)
	}
}
