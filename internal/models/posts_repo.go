package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PostsRepo interface {
	CreatePost(ctx context.Context, post *Post) (*Post, error)
	QueryPosts(ctx context.Context, filter PostFilter) ([]*Post, error)
	GetPostByID(ctx context.Context, id string) (*Post, error)
	ListPosts(ctx context.Context, limit int64) ([]*Post, error)
	DeletePost(ctx context.Context, id string) error
	HidePost(ctx context.Context, id string) error

	CreateComment(ctx context.Context, comment *Comment) (*Comment, error)
	ListComments(ctx context.Context, postID string) ([]*Comment, error)
	CountComments(ctx context.Context, postID string) (int64, error)
	SetCommentCount(ctx context.Context, postID string, count int64) error

	CreateReaction(ctx context.Context, reaction *Reaction) (*Reaction, error)
	CountLikes(ctx context.Context, postID string) (int64, error)
	SetLikes(ctx context.Context, postID string, count int64) error
}

func (mdb *MongodbRepo) CreatePost(ctx context.Context, post *Post) (*Post, error) {
	res, err := mdb.col(PostsCol).InsertOne(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}
	post.ID = res.InsertedID.(primitive.ObjectID)
	return post, nil
}

func buildPostFilter(f PostFilter) bson.M {
	filter := bson.M{}
	if f.UserID != "" {
		filter["user_id"] = f.UserID
	}
	if f.PostType != "" {
		filter["post_type"] = f.PostType
	}
	return filter
}

func (mdb *MongodbRepo) QueryPosts(ctx context.Context, filter PostFilter) ([]*Post, error) {
	return mdb.findPosts(ctx, buildPostFilter(filter), ListCap)
}

func (mdb *MongodbRepo) ListPosts(ctx context.Context, limit int64) ([]*Post, error) {
	return mdb.findPosts(ctx, bson.M{}, limit)
}

func (mdb *MongodbRepo) findPosts(ctx context.Context, filter bson.M, limit int64) ([]*Post, error) {
	// Feed order: newest first.
	cursor, err := mdb.col(PostsCol).Find(ctx, filter, findSorted(limit, "created_at", -1))
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer cursor.Close(ctx)

	posts := make([]*Post, 0)
	for cursor.Next(ctx) {
		var p Post
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode post: %w", err)
		}
		posts = append(posts, &p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("post cursor error: %w", err)
	}
	return posts, nil
}

func (mdb *MongodbRepo) GetPostByID(ctx context.Context, id string) (*Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	var p Post
	err = mdb.col(PostsCol).FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return &p, nil
}

func (mdb *MongodbRepo) DeletePost(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	if _, err := mdb.col(PostsCol).DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}

// HidePost pulls a post from the public feed without deleting it.
func (mdb *MongodbRepo) HidePost(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	_, err = mdb.col(PostsCol).UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{"is_public": false, "moderated": true},
	})
	if err != nil {
		return fmt.Errorf("failed to hide post: %w", err)
	}
	return nil
}

func (mdb *MongodbRepo) CreateComment(ctx context.Context, comment *Comment) (*Comment, error) {
	res, err := mdb.col(CommentsCol).InsertOne(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}
	comment.ID = res.InsertedID.(primitive.ObjectID)
	return comment, nil
}

func (mdb *MongodbRepo) ListComments(ctx context.Context, postID string) ([]*Comment, error) {
	cursor, err := mdb.col(CommentsCol).Find(ctx,
		bson.M{"post_id": postID}, findSorted(ListCap, "created_at", 1))
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer cursor.Close(ctx)

	comments := make([]*Comment, 0)
	for cursor.Next(ctx) {
		var c Comment
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode comment: %w", err)
		}
		comments = append(comments, &c)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("comment cursor error: %w", err)
	}
	return comments, nil
}

func (mdb *MongodbRepo) CountComments(ctx context.Context, postID string) (int64, error) {
	count, err := mdb.col(CommentsCol).CountDocuments(ctx, bson.M{"post_id": postID})
	if err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}
	return count, nil
}

func (mdb *MongodbRepo) SetCommentCount(ctx context.Context, postID string, count int64) error {
	oid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return ErrInvalidID
	}
	_, err = mdb.col(PostsCol).UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{"comment_count": count},
	})
	if err != nil {
		return fmt.Errorf("failed to update comment count: %w", err)
	}
	return nil
}

func (mdb *MongodbRepo) CreateReaction(ctx context.Context, reaction *Reaction) (*Reaction, error) {
	res, err := mdb.col(ReactionsCol).InsertOne(ctx, reaction)
	if err != nil {
		return nil, fmt.Errorf("failed to insert reaction: %w", err)
	}
	reaction.ID = res.InsertedID.(primitive.ObjectID)
	return reaction, nil
}

func (mdb *MongodbRepo) CountLikes(ctx context.Context, postID string) (int64, error) {
	count, err := mdb.col(ReactionsCol).CountDocuments(ctx,
		bson.M{"post_id": postID, "reaction_type": ReactionLike})
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}

func (mdb *MongodbRepo) SetLikes(ctx context.Context, postID string, count int64) error {
	oid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return ErrInvalidID
	}
	_, err = mdb.col(PostsCol).UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{"likes": count},
	})
	if err != nil {
		return fmt.Errorf("failed to update likes: %w", err)
	}
	return nil
}
