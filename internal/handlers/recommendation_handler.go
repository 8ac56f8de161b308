package handlers

import (
	"net/http"

	"github.com/famigo-app/api/internal/helpers"
	"github.com/famigo-app/api/internal/services"
	"github.com/gin-gonic/gin"
)

// Recommendations relays the user context to the chat completion service.
// A reply that fails to parse still succeeds at the HTTP level; only
// transport/service failures surface as 500.
func Recommendations(r *services.RecommendationsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req services.RecommendationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		result, err := r.Recommend(c.Request.Context(), &req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
