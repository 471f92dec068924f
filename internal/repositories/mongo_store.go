package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionUnits     = "units"
	CollectionProjects  = "projects"
	CollectionAmenities = "amenities"
)

// MongoStore is the document-database backend shared by the Mongo
// repositories. Timeout bounds every single repository call.
type MongoStore struct {
	DB      *mongo.Database
	Timeout time.Duration
}

func NewMongoStore(db *mongo.Database, timeout time.Duration) *MongoStore {
	return &MongoStore{DB: db, Timeout: timeout}
}

func (s *MongoStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.Timeout)
}

// EnsureIndexes creates the unique refNumber index on units.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.DB.Collection(CollectionUnits).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "refNumber", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("refNumber_unique"),
	})
	if err != nil {
		return fmt.Errorf("create refNumber index: %w", err)
	}
	return nil
}

// Repositories returns Mongo-backed implementations of every repository.
func (s *MongoStore) Repositories() Repositories {
	return Repositories{
		Units:     NewMongoUnitRepository(s),
		Projects:  NewMongoProjectRepository(s),
		Amenities: NewMongoAmenityRepository(s),
	}
}
