package models

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Validate = validator.New()

const (
	VenuesCol     = "venues"
	EventsCol     = "events"
	RSVPsCol      = "rsvps"
	ReviewsCol    = "reviews"
	BookingsCol   = "bookings"
	PostsCol      = "posts"
	CommentsCol   = "comments"
	ReactionsCol  = "reactions"
	CategoriesCol = "categories"
	SettingsCol   = "settings"
	UsersCol      = "users"

	// List reads are bounded, not paginated; callers needing more than the
	// cap get a truncated result. Known limitation.
	ListCap      = 100
	AdminListCap = 1000
)

// MongodbRepo implements every entity repository over a single mongo
// database. One instance is shared for the process lifetime.
type MongodbRepo struct {
	db *mongo.Database
}

func MongodbNewRepo(client *mongo.Client, dbName string) *MongodbRepo {
	return &MongodbRepo{db: client.Database(dbName)}
}

func (mdb *MongodbRepo) col(name string) *mongo.Collection {
	return mdb.db.Collection(name)
}

func findLimit(limit int64) *options.FindOptions {
	return options.Find().SetLimit(limit)
}

// findSorted caps the read and sorts by a single field; dir follows mongo
// convention, 1 ascending and -1 descending.
func findSorted(limit int64, field string, dir int) *options.FindOptions {
	return options.Find().SetLimit(limit).SetSort(bson.D{{Key: field, Value: dir}})
}
