package handlers

import (
	"net/http"

	"github.com/famigo-app/api/internal/helpers"
	"github.com/famigo-app/api/internal/models"
	"github.com/famigo-app/api/internal/services"
	"github.com/gin-gonic/gin"
)

func GetTheme(a *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		theme, err := a.GetTheme(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, theme)
	}
}

func UpdateTheme(a *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		theme := models.DefaultTheme()
		if err := c.ShouldBindJSON(&theme); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		if err := a.UpdateTheme(c.Request.Context(), &theme); err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "theme": theme})
	}
}

func ListCategories(a *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := a.ListCategories(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, categories)
	}
}

func CreateCategory(a *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := c.ShouldBindJSON(&category); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		created, err := a.CreateCategory(c.Request.Context(), &category)
		if err != nil {
			c.JSON(statusFromError(err), helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, created)
	}
}

func UpdateCategory(a *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := c.ShouldBindJSON(&category); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		if err := a.UpdateCategory(c.Request.Context(), c.Param("id"), &category); err != nil {
			c.JSON(statusFromError(err), helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(""))
	}
}

func DeleteCategory(a *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := a.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
			c.JSON(statusFromError(err), helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(""))
	}
}

func AdminStats(a *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := a.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, stats)
	}
}

func AdminListVenues(a *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		venues, err := a.ListVenues(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, venues)
	}
}

func AdminDeleteVenue(a *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := a.DeleteVenue(c.Request.Context(), c.Param("id")); err != nil {
			c.JSON(statusFromError(err), helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(""))
	}
}

func AdminListEvents(a *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := a.ListEvents(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, events)
	}
}

func AdminDeleteEvent(a *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := a.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
			c.JSON(statusFromError(err), helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(""))
	}
}

func AdminListPosts(a *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		posts, err := a.ListPosts(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, posts)
	}
}

func AdminDeletePost(a *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := a.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
			c.JSON(statusFromError(err), helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(""))
	}
}

func AdminHidePost(a *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := a.HidePost(c.Request.Context(), c.Param("id")); err != nil {
			c.JSON(statusFromError(err), helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(""))
	}
}
