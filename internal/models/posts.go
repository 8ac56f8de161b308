package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PostPhotoShare        = "photo_share"
	PostEventAnnouncement = "event_announcement"
	PostRecommendation    = "recommendation"
	PostInvitation        = "invitation"
	PostStatus            = "status"

	ReactionLike      = "like"
	ReactionLove      = "love"
	ReactionCelebrate = "celebrate"
	ReactionSupport   = "support"
)

type Post struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         string             `bson:"user_id" json:"user_id"`
	UserName       string             `bson:"user_name" json:"user_name"`
	UserAvatar     string             `bson:"user_avatar,omitempty" json:"user_avatar,omitempty"`
	PostType       string             `bson:"post_type" json:"post_type"`
	Content        string             `bson:"content" json:"content"`
	Images         []string           `bson:"images" json:"images"`
	RelatedVenueID string             `bson:"related_venue_id,omitempty" json:"related_venue_id,omitempty"`
	RelatedEventID string             `bson:"related_event_id,omitempty" json:"related_event_id,omitempty"`
	IsPublic       bool               `bson:"is_public" json:"is_public"`
	Moderated      bool               `bson:"moderated,omitempty" json:"moderated,omitempty"`
	Likes          int                `bson:"likes" json:"likes"`
	CommentCount   int                `bson:"comment_count" json:"comment_count"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}

type PostCreate struct {
	UserID         string   `json:"user_id" validate:"required"`
	UserName       string   `json:"user_name" validate:"required"`
	UserAvatar     string   `json:"user_avatar"`
	PostType       string   `json:"post_type" validate:"required,oneof=photo_share event_announcement recommendation invitation status"`
	Content        string   `json:"content" validate:"required"`
	Images         []string `json:"images"`
	RelatedVenueID string   `json:"related_venue_id"`
	RelatedEventID string   `json:"related_event_id"`
	IsPublic       *bool    `json:"is_public"`
}

func (pc *PostCreate) ToPost() *Post {
	p := &Post{
		UserID:         pc.UserID,
		UserName:       pc.UserName,
		UserAvatar:     pc.UserAvatar,
		PostType:       pc.PostType,
		Content:        pc.Content,
		Images:         pc.Images,
		RelatedVenueID: pc.RelatedVenueID,
		RelatedEventID: pc.RelatedEventID,
		IsPublic:       true,
		Likes:          0,
		CommentCount:   0,
		CreatedAt:      time.Now().UTC(),
	}
	if pc.IsPublic != nil {
		p.IsPublic = *pc.IsPublic
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	return p
}

// Comments and reactions are append-only; there is no edit or delete path.

type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PostID    string             `bson:"post_id" json:"post_id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	UserName  string             `bson:"user_name" json:"user_name"`
	Comment   string             `bson:"comment" json:"comment"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

type CommentCreate struct {
	UserID   string `json:"user_id" validate:"required"`
	UserName string `json:"user_name" validate:"required"`
	Comment  string `json:"comment" validate:"required"`
}

type Reaction struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PostID       string             `bson:"post_id" json:"post_id"`
	UserID       string             `bson:"user_id" json:"user_id"`
	UserName     string             `bson:"user_name" json:"user_name"`
	ReactionType string             `bson:"reaction_type" json:"reaction_type"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

type ReactionCreate struct {
	UserID       string `json:"user_id" validate:"required"`
	UserName     string `json:"user_name" validate:"required"`
	ReactionType string `json:"reaction_type" validate:"required,oneof=like love celebrate support"`
}

type PostFilter struct {
	UserID   string
	PostType string
}
