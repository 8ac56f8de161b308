package services

import (
	"context"
	"fmt"
	"time"

	"github.com/famigo-app/api/internal/models"
)

type PostsService struct {
	postsRepo models.PostsRepo
}

func NewPostsService(postsRepo models.PostsRepo) *PostsService {
	return &PostsService{
		postsRepo: postsRepo,
	}
}

func (ps *PostsService) CreatePost(ctx context.Context, req *models.PostCreate) (*models.Post, error) {
	if err := models.Validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid post data: %w", err)
	}
	return ps.postsRepo.CreatePost(ctx, req.ToPost())
}

func (ps *PostsService) QueryPosts(ctx context.Context, filter models.PostFilter) ([]*models.Post, error) {
	return ps.postsRepo.QueryPosts(ctx, filter)
}

func (ps *PostsService) GetPost(ctx context.Context, id string) (*models.Post, error) {
	return ps.postsRepo.GetPostByID(ctx, id)
}

// AddComment appends the comment and recounts the post's comments, same
// fetch-compute-write-back shape as the other aggregates.
func (ps *PostsService) AddComment(ctx context.Context, postID string, req *models.CommentCreate) (*models.Comment, error) {
	if err := models.Validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid comment data: %w", err)
	}

	comment := &models.Comment{
		PostID:    postID,
		UserID:    req.UserID,
		UserName:  req.UserName,
		Comment:   req.Comment,
		CreatedAt: time.Now().UTC(),
	}
	created, err := ps.postsRepo.CreateComment(ctx, comment)
	if err != nil {
		return nil, err
	}

	count, err := ps.postsRepo.CountComments(ctx, postID)
	if err != nil {
		return nil, err
	}
	if err := ps.postsRepo.SetCommentCount(ctx, postID, count); err != nil {
		return nil, err
	}
	return created, nil
}

func (ps *PostsService) Comments(ctx context.Context, postID string) ([]*models.Comment, error) {
	return ps.postsRepo.ListComments(ctx, postID)
}

// AddReaction appends the reaction; the post's likes counter tracks only
// "like" reactions.
func (ps *PostsService) AddReaction(ctx context.Context, postID string, req *models.ReactionCreate) (*models.Reaction, error) {
	if err := models.Validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid reaction data: %w", err)
	}

	reaction := &models.Reaction{
		PostID:       postID,
		UserID:       req.UserID,
		UserName:     req.UserName,
		ReactionType: req.ReactionType,
		CreatedAt:    time.Now().UTC(),
	}
	created, err := ps.postsRepo.CreateReaction(ctx, reaction)
	if err != nil {
		return nil, err
	}

	likes, err := ps.postsRepo.CountLikes(ctx, postID)
	if err != nil {
		return nil, err
	}
	if err := ps.postsRepo.SetLikes(ctx, postID, likes); err != nil {
		return nil, err
	}
	return created, nil
}
