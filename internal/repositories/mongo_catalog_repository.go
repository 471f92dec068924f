package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/homescout/listing-service/internal/models"
)

/* ---------- projects ---------- */

type mongoProjectRepo struct {
	store *MongoStore
	coll  *mongo.Collection
}

func NewMongoProjectRepository(store *MongoStore) ProjectRepository {
	return &mongoProjectRepo{store: store, coll: store.DB.Collection(CollectionProjects)}
}

func (r *mongoProjectRepo) Create(ctx context.Context, p *models.Project) error {
	ctx, cancel := r.store.withTimeout(ctx)
	defer cancel()

	stampID(&p.ID)
	stampCreatedAt(&p.CreatedAt)
	_, err := r.coll.InsertOne(ctx, p)
	return err
}

func (r *mongoProjectRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	ctx, cancel := r.store.withTimeout(ctx)
	defer cancel()

	var p models.Project
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *mongoProjectRepo) List(ctx context.Context) ([]*models.Project, error) {
	ctx, cancel := r.store.withTimeout(ctx)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []*models.Project{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mongoProjectRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.store.withTimeout(ctx)
	defer cancel()
	return r.coll.CountDocuments(ctx, bson.D{})
}

/* ---------- amenities ---------- */

type mongoAmenityRepo struct {
	store *MongoStore
	coll  *mongo.Collection
}

func NewMongoAmenityRepository(store *MongoStore) AmenityRepository {
	return &mongoAmenityRepo{store: store, coll: store.DB.Collection(CollectionAmenities)}
}

func (r *mongoAmenityRepo) Create(ctx context.Context, a *models.Amenity) error {
	ctx, cancel := r.store.withTimeout(ctx)
	defer cancel()

	stampID(&a.ID)
	stampCreatedAt(&a.CreatedAt)
	_, err := r.coll.InsertOne(ctx, a)
	return err
}

func (r *mongoAmenityRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Amenity, error) {
	ctx, cancel := r.store.withTimeout(ctx)
	defer cancel()

	var a models.Amenity
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *mongoAmenityRepo) ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.Amenity, error) {
	filter := bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}}
	return r.find(ctx, filter)
}

func (r *mongoAmenityRepo) List(ctx context.Context) ([]*models.Amenity, error) {
	return r.find(ctx, bson.D{})
}

func (r *mongoAmenityRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.store.withTimeout(ctx)
	defer cancel()
	return r.coll.CountDocuments(ctx, bson.D{})
}

func (r *mongoAmenityRepo) find(ctx context.Context, filter bson.D) ([]*models.Amenity, error) {
	ctx, cancel := r.store.withTimeout(ctx)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []*models.Amenity{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
