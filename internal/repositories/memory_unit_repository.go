package repositories

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-memdb"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/homescout/listing-service/internal/models"
)

type memoryUnitRepo struct {
	db *memdb.MemDB
}

func (r *memoryUnitRepo) Create(_ context.Context, u *models.Unit) error {
	// Write txns hold the db writer lock; check and insert are one step.
	txn := r.db.Txn(true)
	defer txn.Abort()

	if u.RefNumber != "" {
		existing, err := txn.First(tableUnits, indexRefNumber, u.RefNumber)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: %s", ErrDuplicateRefNumber, u.RefNumber)
		}
	}

	stampID(&u.ID)
	row := &unitRow{ID: u.ID.Hex(), RefNumber: u.RefNumber, Unit: cloneUnit(u)}
	if err := insertUnique(txn, tableUnits, row.ID, row); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

func (r *memoryUnitRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Unit, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tableUnits, indexID, id.Hex())
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	return cloneUnit(raw.(*unitRow).Unit), nil
}

func (r *memoryUnitRepo) ListSummaries(_ context.Context, limit, offset int) ([]models.UnitSummary, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableUnits, indexID)
	if err != nil {
		return nil, err
	}

	out := []models.UnitSummary{}
	skipped := 0
	for raw := it.Next(); raw != nil && len(out) < limit; raw = it.Next() {
		if skipped < offset {
			skipped++
			continue
		}
		out = append(out, cloneUnit(raw.(*unitRow).Unit).Summary())
	}
	return out, nil
}

func (r *memoryUnitRepo) Count(_ context.Context) (int64, error) {
	return countRows(r.db, tableUnits)
}

func countRows(db *memdb.MemDB, table string) (int64, error) {
	txn := db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(table, indexID)
	if err != nil {
		return 0, err
	}
	var n int64
	for raw := it.Next(); raw != nil; raw = it.Next() {
		n++
	}
	return n, nil
}
