//go:build integration

package integration

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/homescout/listing-service/internal/config"
	"github.com/homescout/listing-service/internal/repositories"
	"github.com/homescout/listing-service/internal/utils"
)

// Global test-level variables
var (
	client *mongo.Client
	db     *mongo.Database
	store  *repositories.MongoStore
	repos  repositories.Repositories
)

// TestMain connects once to the MongoDB named by MONGO_URI and runs every
// test against a throwaway database that is dropped afterwards.
func TestMain(m *testing.M) {
	utils.InitLogger(config.AppName)

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		log.Fatal("MONGO_URI must be set for integration tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	var err error
	client, err = mongo.Connect(ctx, options.Client().ApplyURI(uri))
	cancel()
	if err != nil {
		log.Fatalf("connect: %v", err)
	}

	db = client.Database(fmt.Sprintf("listings_it_%d", time.Now().UnixNano()))
	store = repositories.NewMongoStore(db, 5*time.Second)
	if err := store.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("ensure indexes: %v", err)
	}
	repos = store.Repositories()

	log.Printf("listing-service integration tests: DB connected, db=%s", db.Name())

	code := m.Run()

	_ = db.Drop(context.Background())
	_ = client.Disconnect(context.Background())
	os.Exit(code)
}

// resetCollections empties every collection while keeping indexes.
func resetCollections(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		repositories.CollectionUnits,
		repositories.CollectionProjects,
		repositories.CollectionAmenities,
	} {
		if _, err := db.Collection(name).DeleteMany(context.Background(), map[string]any{}); err != nil {
			t.Fatalf("reset %s: %v", name, err)
		}
	}
}
