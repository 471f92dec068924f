package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/homescout/listing-service/internal/models"
)

type mongoUnitRepo struct {
	store *MongoStore
	coll  *mongo.Collection
}

func NewMongoUnitRepository(store *MongoStore) UnitRepository {
	return &mongoUnitRepo{store: store, coll: store.DB.Collection(CollectionUnits)}
}

func (r *mongoUnitRepo) Create(ctx context.Context, u *models.Unit) error {
	ctx, cancel := r.store.withTimeout(ctx)
	defer cancel()

	stampID(&u.ID)
	if _, err := r.coll.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateRefNumber, u.RefNumber)
		}
		return err
	}
	return nil
}

func (r *mongoUnitRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Unit, error) {
	ctx, cancel := r.store.withTimeout(ctx)
	defer cancel()

	var u models.Unit
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *mongoUnitRepo) ListSummaries(ctx context.Context, limit, offset int) ([]models.UnitSummary, error) {
	ctx, cancel := r.store.withTimeout(ctx)
	defer cancel()

	projection := bson.D{}
	for _, f := range models.UnitSummaryFields {
		projection = append(projection, bson.E{Key: f, Value: 1})
	}
	opts := options.Find().
		SetProjection(projection).
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.UnitSummary{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mongoUnitRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.store.withTimeout(ctx)
	defer cancel()
	return r.coll.CountDocuments(ctx, bson.D{})
}
