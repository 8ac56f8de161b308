package handlers

import (
	"net/http"

	"github.com/famigo-app/api/internal/helpers"
	"github.com/famigo-app/api/internal/models"
	"github.com/famigo-app/api/internal/services"
	"github.com/gin-gonic/gin"
)

func CreatePost(p *services.PostsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.PostCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		post, err := p.CreatePost(c.Request.Context(), &req)
		if err != nil {
			c.JSON(statusFromError(err), helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, post)
	}
}

func ListPosts(p *services.PostsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := models.PostFilter{
			UserID:   c.Query("user_id"),
			PostType: c.Query("post_type"),
		}

		posts, err := p.QueryPosts(c.Request.Context(), filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, posts)
	}
}

func AddComment(p *services.PostsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CommentCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		comment, err := p.AddComment(c.Request.Context(), c.Param("id"), &req)
		if err != nil {
			c.JSON(statusFromError(err), helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, comment)
	}
}

func PostComments(p *services.PostsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		comments, err := p.Comments(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, comments)
	}
}

func AddReaction(p *services.PostsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ReactionCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		reaction, err := p.AddReaction(c.Request.Context(), c.Param("id"), &req)
		if err != nil {
			c.JSON(statusFromError(err), helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, reaction)
	}
}
