package repositories

import (
	"context"

	"github.com/hashicorp/go-memdb"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/homescout/listing-service/internal/models"
)

/* ---------- projects ---------- */

type memoryProjectRepo struct {
	db *memdb.MemDB
}

func (r *memoryProjectRepo) Create(_ context.Context, p *models.Project) error {
	txn := r.db.Txn(true)
	defer txn.Abort()

	stampID(&p.ID)
	stampCreatedAt(&p.CreatedAt)
	cp := *p
	if err := insertUnique(txn, tableProjects, p.ID.Hex(), &projectRow{ID: p.ID.Hex(), Project: &cp}); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

func (r *memoryProjectRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Project, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tableProjects, indexID, id.Hex())
	if err != nil || raw == nil {
		return nil, err
	}
	cp := *raw.(*projectRow).Project
	return &cp, nil
}

func (r *memoryProjectRepo) List(_ context.Context) ([]*models.Project, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableProjects, indexID)
	if err != nil {
		return nil, err
	}
	out := []*models.Project{}
	for raw := it.Next(); raw != nil; raw = it.Next() {
		cp := *raw.(*projectRow).Project
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memoryProjectRepo) Count(_ context.Context) (int64, error) {
	return countRows(r.db, tableProjects)
}

/* ---------- amenities ---------- */

type memoryAmenityRepo struct {
	db *memdb.MemDB
}

func (r *memoryAmenityRepo) Create(_ context.Context, a *models.Amenity) error {
	txn := r.db.Txn(true)
	defer txn.Abort()

	stampID(&a.ID)
	stampCreatedAt(&a.CreatedAt)
	cp := *a
	if err := insertUnique(txn, tableAmenities, a.ID.Hex(), &amenityRow{ID: a.ID.Hex(), Amenity: &cp}); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

func (r *memoryAmenityRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Amenity, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tableAmenities, indexID, id.Hex())
	if err != nil || raw == nil {
		return nil, err
	}
	cp := *raw.(*amenityRow).Amenity
	return &cp, nil
}

func (r *memoryAmenityRepo) ListByIDs(_ context.Context, ids []primitive.ObjectID) ([]*models.Amenity, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	out := []*models.Amenity{}
	seen := make(map[primitive.ObjectID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		raw, err := txn.First(tableAmenities, indexID, id.Hex())
		if err != nil {
			return nil, err
		}
		if raw != nil {
			cp := *raw.(*amenityRow).Amenity
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memoryAmenityRepo) List(_ context.Context) ([]*models.Amenity, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableAmenities, indexID)
	if err != nil {
		return nil, err
	}
	out := []*models.Amenity{}
	for raw := it.Next(); raw != nil; raw = it.Next() {
		cp := *raw.(*amenityRow).Amenity
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memoryAmenityRepo) Count(_ context.Context) (int64, error) {
	return countRows(r.db, tableAmenities)
}
