package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AdminRepo interface {
	GetTheme(ctx context.Context) (*ThemeConfig, error)
	UpsertTheme(ctx context.Context, theme *ThemeConfig) error

	ListCategories(ctx context.Context) ([]*Category, error)
	CreateCategory(ctx context.Context, category *Category) (*Category, error)
	UpdateCategory(ctx context.Context, id string, category *Category) error
	DeleteCategory(ctx context.Context, id string) error

	CollectStats(ctx context.Context) (*Stats, error)
}

// GetTheme returns nil when no theme has been stored yet; the service falls
// back to the default palette.
func (mdb *MongodbRepo) GetTheme(ctx context.Context) (*ThemeConfig, error) {
	var theme ThemeConfig
	err := mdb.col(SettingsCol).FindOne(ctx, bson.M{"type": "theme"}).Decode(&theme)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get theme: %w", err)
	}
	return &theme, nil
}

func (mdb *MongodbRepo) UpsertTheme(ctx context.Context, theme *ThemeConfig) error {
	theme.UpdatedAt = time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"primary_color":    theme.PrimaryColor,
		"text_color":       theme.TextColor,
		"icon_color":       theme.IconColor,
		"accent_color":     theme.AccentColor,
		"background_color": theme.BackgroundColor,
		"updated_at":       theme.UpdatedAt,
	}}
	opts := options.Update().SetUpsert(true)
	if _, err := mdb.col(SettingsCol).UpdateOne(ctx, bson.M{"type": "theme"}, update, opts); err != nil {
		return fmt.Errorf("failed to upsert theme: %w", err)
	}
	return nil
}

func (mdb *MongodbRepo) ListCategories(ctx context.Context) ([]*Category, error) {
	cursor, err := mdb.col(CategoriesCol).Find(ctx, bson.M{}, findLimit(ListCap))
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer cursor.Close(ctx)

	categories := make([]*Category, 0)
	for cursor.Next(ctx) {
		var c Category
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode category: %w", err)
		}
		categories = append(categories, &c)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("category cursor error: %w", err)
	}
	return categories, nil
}

func (mdb *MongodbRepo) CreateCategory(ctx context.Context, category *Category) (*Category, error) {
	category.CreatedAt = time.Now().UTC()
	res, err := mdb.col(CategoriesCol).InsertOne(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to insert category: %w", err)
	}
	category.ID = res.InsertedID.(primitive.ObjectID)
	return category, nil
}

func (mdb *MongodbRepo) UpdateCategory(ctx context.Context, id string, category *Category) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	update := bson.M{"$set": bson.M{
		"name":        category.Name,
		"icon":        category.Icon,
		"color":       category.Color,
		"description": category.Description,
		"is_active":   category.IsActive,
		"updated_at":  time.Now().UTC(),
	}}
	if _, err := mdb.col(CategoriesCol).UpdateOne(ctx, bson.M{"_id": oid}, update); err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	return nil
}

func (mdb *MongodbRepo) DeleteCategory(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	if _, err := mdb.col(CategoriesCol).DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

func (mdb *MongodbRepo) CollectStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	counts := []struct {
		col    string
		filter bson.M
		dst    *int64
	}{
		{VenuesCol, bson.M{}, &stats.TotalVenues},
		{EventsCol, bson.M{}, &stats.TotalEvents},
		{PostsCol, bson.M{}, &stats.TotalPosts},
		{UsersCol, bson.M{}, &stats.TotalUsers},
		{BookingsCol, bson.M{}, &stats.TotalBookings},
		{ReviewsCol, bson.M{}, &stats.TotalReviews},
		{EventsCol, bson.M{"is_public": true}, &stats.PublicEvents},
		{EventsCol, bson.M{"is_public": false}, &stats.PrivateEvents},
	}
	for _, c := range counts {
		n, err := mdb.col(c.col).CountDocuments(ctx, c.filter)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", c.col, err)
		}
		*c.dst = n
	}
	return stats, nil
}
