package repositories

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-memdb"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/homescout/listing-service/internal/models"
)

const (
	tableUnits     = "units"
	tableProjects  = "projects"
	tableAmenities = "amenities"

	indexID        = "id"
	indexRefNumber = "refNumber"
)

// Rows keep the ObjectID as a hex string so memdb can index it. Hex order
// matches ObjectID byte order, so iteration order mirrors the Mongo _id sort.
type unitRow struct {
	ID        string
	RefNumber string
	Unit      *models.Unit
}

type projectRow struct {
	ID      string
	Project *models.Project
}

type amenityRow struct {
	ID      string
	Amenity *models.Amenity
}

func memorySchema() *memdb.DBSchema {
	idIndex := &memdb.IndexSchema{
		Name:    indexID,
		Unique:  true,
		Indexer: &memdb.StringFieldIndex{Field: "ID"},
	}
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			tableUnits: {
				Name: tableUnits,
				Indexes: map[string]*memdb.IndexSchema{
					indexID: idIndex,
					indexRefNumber: {
						Name:         indexRefNumber,
						AllowMissing: true,
						Indexer:      &memdb.StringFieldIndex{Field: "RefNumber"},
					},
				},
			},
			tableProjects: {
				Name:    tableProjects,
				Indexes: map[string]*memdb.IndexSchema{indexID: idIndex},
			},
			tableAmenities: {
				Name:    tableAmenities,
				Indexes: map[string]*memdb.IndexSchema{indexID: idIndex},
			},
		},
	}
}

// MemoryStore is an in-process backend used for local runs and tests.
type MemoryStore struct {
	db *memdb.MemDB
}

func NewMemoryStore() (*MemoryStore, error) {
	db, err := memdb.NewMemDB(memorySchema())
	if err != nil {
		return nil, fmt.Errorf("create memdb: %w", err)
	}
	return &MemoryStore{db: db}, nil
}

// Repositories returns memdb-backed implementations of every repository.
func (s *MemoryStore) Repositories() Repositories {
	return Repositories{
		Units:     &memoryUnitRepo{db: s.db},
		Projects:  &memoryProjectRepo{db: s.db},
		Amenities: &memoryAmenityRepo{db: s.db},
	}
}

// memdb does not enforce uniqueness on secondary indexes, and its id index
// has the same gap for inserts of a new row: Insert silently replaces.
func insertUnique(txn *memdb.Txn, table, id string, row any) error {
	existing, err := txn.First(table, indexID, id)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("%s %s already exists", table, id)
	}
	return txn.Insert(table, row)
}

func stampID(id *primitive.ObjectID) {
	if id.IsZero() {
		*id = primitive.NewObjectID()
	}
}

func stampCreatedAt(t *time.Time) {
	if t.IsZero() {
		*t = time.Now().UTC().Truncate(time.Millisecond)
	}
}
