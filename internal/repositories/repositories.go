package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/homescout/listing-service/internal/models"
)

// ErrDuplicateRefNumber is returned by UnitRepository.Create when another
// unit already holds the reference number.
var ErrDuplicateRefNumber = errors.New("duplicate_ref_number")

/* ───────────── public interfaces ───────────── */

// GetByID methods return (nil, nil) when no record matches.

type UnitRepository interface {
	Create(ctx context.Context, u *models.Unit) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Unit, error)
	ListSummaries(ctx context.Context, limit, offset int) ([]models.UnitSummary, error)
	Count(ctx context.Context) (int64, error)
}

type ProjectRepository interface {
	Create(ctx context.Context, p *models.Project) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error)
	List(ctx context.Context) ([]*models.Project, error)
	Count(ctx context.Context) (int64, error)
}

type AmenityRepository interface {
	Create(ctx context.Context, a *models.Amenity) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Amenity, error)
	// ListByIDs returns the amenities whose id is in ids. Missing ids are
	// silently skipped; callers compare lengths.
	ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.Amenity, error)
	List(ctx context.Context) ([]*models.Amenity, error)
	Count(ctx context.Context) (int64, error)
}

// Repositories bundles one implementation of each repository.
type Repositories struct {
	Units     UnitRepository
	Projects  ProjectRepository
	Amenities AmenityRepository
}

func cloneUnit(u *models.Unit) *models.Unit {
	c := *u
	c.ImageURLs = append([]string{}, u.ImageURLs...)
	c.Amenities = append([]models.AmenitySnapshot{}, u.Amenities...)
	return &c
}
