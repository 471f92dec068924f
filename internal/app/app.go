package app

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/homescout/listing-service/internal/config"
	"github.com/homescout/listing-service/internal/repositories"
	"github.com/homescout/listing-service/internal/utils"
)

const (
	maxRetries     = 5
	connectTimeout = 5 * time.Second
	initialBackoff = 500 * time.Millisecond
)

type App struct {
	Config *config.Config
	Mongo  *mongo.Client
	Repos  repositories.Repositories
}

// NewApp opens the configured storage driver. For mongo it connects with
// retry and exponential backoff, then ensures indexes.
func NewApp(cfg *config.Config) (*App, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		return newMemoryApp(cfg)
	case config.StorageDriverMongo:
		return newMongoApp(cfg)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func newMemoryApp(cfg *config.Config) (*App, error) {
	store, err := repositories.NewMemoryStore()
	if err != nil {
		return nil, err
	}
	utils.Logger.Warn("Using in-memory storage; data is lost on restart.")
	return &App{Config: cfg, Repos: store.Repositories()}, nil
}

func newMongoApp(cfg *config.Config) (*App, error) {
	var (
		client  *mongo.Client
		err     error
		backoff = initialBackoff
	)

	for i := 1; i <= maxRetries; i++ {
		client, err = connectMongo(cfg.MongoURI)
		if err == nil {
			utils.Logger.Infof("%s connected to MongoDB on attempt %d", cfg.AppName, i)
			break
		}

		utils.Logger.WithError(err).Warnf(
			"Failed DB connect on attempt %d/%d. Retrying in %v...",
			i, maxRetries, backoff,
		)

		if i == maxRetries {
			return nil, fmt.Errorf("unable to connect after %d attempts: %w", maxRetries, err)
		}
		time.Sleep(backoff)
		backoff *= 2
	}

	store := repositories.NewMongoStore(client.Database(cfg.MongoDBName), cfg.MongoTimeout)
	if err := store.EnsureIndexes(context.Background()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return &App{
		Config: cfg,
		Mongo:  client,
		Repos:  store.Repositories(),
	}, nil
}

func connectMongo(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	// Connect is lazy; ping so a bad URI fails inside the retry loop.
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

// Ping reports whether storage is reachable. The memory driver always is.
func (a *App) Ping(ctx context.Context) error {
	if a.Mongo == nil {
		return nil
	}
	return a.Mongo.Ping(ctx, readpref.Primary())
}

func (a *App) Close() {
	if a.Mongo == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := a.Mongo.Disconnect(ctx); err != nil {
		utils.Logger.WithError(err).Warn("MongoDB disconnect failed")
		return
	}
	utils.Logger.Infof("%s MongoDB connection closed.", a.Config.AppName)
}
