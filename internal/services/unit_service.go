package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/homescout/listing-service/internal/config"
	"github.com/homescout/listing-service/internal/dtos"
	"github.com/homescout/listing-service/internal/models"
	"github.com/homescout/listing-service/internal/repositories"
	"github.com/homescout/listing-service/internal/utils"
	"github.com/homescout/listing-service/internal/validation"
)

const MsgUnitsFetched = "Units fetched successfully"

type UnitService struct {
	cfg          *config.Config
	units        repositories.UnitRepository
	projects     repositories.ProjectRepository
	amenities    repositories.AmenityRepository
	now          func() time.Time
	newRefNumber func(time.Time) string
}

func NewUnitService(cfg *config.Config, repos repositories.Repositories) *UnitService {
	return &UnitService{
		cfg:          cfg,
		units:        repos.Units,
		projects:     repos.Projects,
		amenities:    repos.Amenities,
		now:          time.Now,
		newRefNumber: utils.NewRefNumber,
	}
}

// CreateUnit validates the payload, resolves its project and amenities,
// embeds their snapshots and stores the unit.
func (s *UnitService) CreateUnit(ctx context.Context, req dtos.CreateUnitRequest) (*models.Unit, error) {
	req, violations := validation.ValidateCreateUnit(req)
	if len(violations) > 0 {
		return nil, &utils.ValidationError{Details: violations}
	}

	project, amenities, err := s.resolveReferences(ctx, *req.ProjectID, req.AmenitiesIDs)
	if err != nil {
		return nil, err
	}

	unit := BuildUnit(req, project, amenities)
	if err := s.persist(ctx, unit, req.RefNumber == nil); err != nil {
		return nil, err
	}

	utils.Logger.WithField("unit_id", unit.ID.Hex()).
		WithField("ref_number", unit.RefNumber).
		Info("Unit created")
	return unit, nil
}

// resolveReferences loads the project and every requested amenity. Amenities
// come back in request order with duplicates removed.
func (s *UnitService) resolveReferences(
	ctx context.Context,
	projectHex string,
	amenityHexes []string,
) (*models.Project, []*models.Amenity, error) {
	projectID, err := primitive.ObjectIDFromHex(projectHex)
	if err != nil {
		return nil, nil, utils.NewNotFoundError(utils.EntityProject, projectHex)
	}
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, nil, utils.NewCreationError(fmt.Errorf("lookup project %s: %w", projectHex, err))
	}
	if project == nil {
		return nil, nil, utils.NewNotFoundError(utils.EntityProject, projectHex)
	}

	if len(amenityHexes) == 0 {
		return project, []*models.Amenity{}, nil
	}

	ids := make([]primitive.ObjectID, 0, len(amenityHexes))
	seen := make(map[primitive.ObjectID]struct{}, len(amenityHexes))
	for _, h := range amenityHexes {
		id, err := primitive.ObjectIDFromHex(h)
		if err != nil {
			return nil, nil, utils.NewNotFoundError(utils.EntityAmenity, h)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	found, err := s.amenities.ListByIDs(ctx, ids)
	if err != nil {
		return nil, nil, utils.NewCreationError(fmt.Errorf("lookup amenities: %w", err))
	}
	if len(found) != len(ids) {
		return nil, nil, utils.NewNotFoundError(utils.EntityAmenity, firstMissing(ids, found))
	}

	byID := make(map[primitive.ObjectID]*models.Amenity, len(found))
	for _, a := range found {
		byID[a.ID] = a
	}
	ordered := make([]*models.Amenity, 0, len(ids))
	for _, id := range ids {
		ordered = append(ordered, byID[id])
	}
	return project, ordered, nil
}

func firstMissing(ids []primitive.ObjectID, found []*models.Amenity) string {
	have := make(map[primitive.ObjectID]struct{}, len(found))
	for _, a := range found {
		have[a.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := have[id]; !ok {
			return id.Hex()
		}
	}
	return ""
}

// BuildUnit turns a validated payload plus its resolved references into the
// stored document. The raw projectId and amenitiesIds are not carried over.
func BuildUnit(req dtos.CreateUnitRequest, project *models.Project, amenities []*models.Amenity) *models.Unit {
	snapshots := make([]models.AmenitySnapshot, 0, len(amenities))
	for _, a := range amenities {
		snapshots = append(snapshots, a.Snapshot())
	}
	imageURLs := append([]string{}, req.ImageURLs...)

	return &models.Unit{
		RefNumber:     utils.Val(req.RefNumber),
		Name:          utils.Val(req.Name),
		UnitNumber:    utils.Val(req.UnitNumber),
		Bedrooms:      utils.Val(req.Bedrooms),
		Bathrooms:     utils.Val(req.Bathrooms),
		ImageURLs:     imageURLs,
		Compound:      utils.Val(req.Compound),
		PropertyType:  models.PropertyType(utils.Val(req.PropertyType)),
		SaleType:      models.SaleType(utils.Val(req.SaleType)),
		Description:   utils.Val(req.Description),
		Currency:      utils.Val(req.Currency),
		Price:         utils.Val(req.Price),
		Size:          utils.Val(req.Size),
		FinishingType: models.FinishingType(utils.Val(req.FinishingType)),
		Project:       project.Snapshot(),
		Amenities:     snapshots,
	}
}

// persist stores the unit. A generated reference number that collides is
// regenerated up to RefNumberMaxAttempts times; a client supplied one is not.
func (s *UnitService) persist(ctx context.Context, unit *models.Unit, generateRef bool) error {
	attempts := 1
	if generateRef {
		attempts = max(s.cfg.RefNumberMaxAttempts, 1)
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		now := s.now()
		if generateRef {
			unit.RefNumber = s.newRefNumber(now)
		}
		unit.ID = primitive.NilObjectID
		unit.CreatedAt = now.UTC().Truncate(time.Millisecond)

		err = s.units.Create(ctx, unit)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repositories.ErrDuplicateRefNumber) || !generateRef {
			break
		}
		utils.Logger.WithError(err).
			WithField("attempt", attempt).
			Warn("Generated reference number collided, regenerating")
	}
	return utils.NewCreationError(err)
}

// ListUnits returns one page of unit summaries. Out of range values fall
// back to the configured defaults; limit is capped at MaxPageLimit.
func (s *UnitService) ListUnits(ctx context.Context, limit, offset int) (*dtos.ListUnitsResponse, error) {
	limit, offset = s.clampPage(limit, offset)

	listings, err := s.units.ListSummaries(ctx, limit, offset)
	if err != nil {
		return nil, utils.NewFetchError(fmt.Errorf("list units: %w", err))
	}
	total, err := s.units.Count(ctx)
	if err != nil {
		return nil, utils.NewFetchError(fmt.Errorf("count units: %w", err))
	}

	return &dtos.ListUnitsResponse{
		Message:  MsgUnitsFetched,
		Listings: listings,
		Pagination: dtos.Pagination{
			Total:  total,
			Offset: offset,
			Limit:  limit,
		},
	}, nil
}

func (s *UnitService) clampPage(limit, offset int) (int, int) {
	if limit < 1 {
		limit = s.cfg.DefaultPageLimit
	}
	if limit > s.cfg.MaxPageLimit {
		limit = s.cfg.MaxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// GetUnitDetails returns the full unit. A malformed id is reported as
// not found without touching storage.
func (s *UnitService) GetUnitDetails(ctx context.Context, id string) (*models.Unit, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.NewNotFoundError(utils.EntityUnit, id)
	}
	unit, err := s.units.GetByID(ctx, oid)
	if err != nil {
		return nil, utils.NewFetchError(fmt.Errorf("get unit %s: %w", id, err))
	}
	if unit == nil {
		return nil, utils.NewNotFoundError(utils.EntityUnit, id)
	}
	return unit, nil
}
