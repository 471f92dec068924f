//go:build integration

package integration

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/homescout/listing-service/internal/config"
	"github.com/homescout/listing-service/internal/dtos"
	"github.com/homescout/listing-service/internal/models"
	"github.com/homescout/listing-service/internal/repositories"
	"github.com/homescout/listing-service/internal/services"
	"github.com/homescout/listing-service/internal/utils"
)

func TestMongoUnitRepository_DuplicateRefNumber(t *testing.T) {
	resetCollections(t)
	ctx := context.Background()

	u := &models.Unit{RefNumber: "AP-it-1", Name: "Villa 3", Amenities: []models.AmenitySnapshot{}}
	require.NoError(t, repos.Units.Create(ctx, u))
	require.False(t, u.ID.IsZero())

	dup := &models.Unit{RefNumber: "AP-it-1", Name: "Other"}
	err := repos.Units.Create(ctx, dup)
	require.True(t, errors.Is(err, repositories.ErrDuplicateRefNumber))

	n, err := repos.Units.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestMongoUnitRepository_SummaryProjection(t *testing.T) {
	resetCollections(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		require.NoError(t, repos.Units.Create(ctx, &models.Unit{
			RefNumber:   fmt.Sprintf("AP-it-%d", i),
			Name:        fmt.Sprintf("Unit %d", i),
			Description: "not part of the summary",
			Price:       "1000",
		}))
	}

	first, err := repos.Units.ListSummaries(ctx, 2, 0)
	require.NoError(t, err)
	second, err := repos.Units.ListSummaries(ctx, 2, 2)
	require.NoError(t, err)
	all, err := repos.Units.ListSummaries(ctx, 4, 0)
	require.NoError(t, err)
	require.Equal(t, append(first, second...), all)
	require.Equal(t, "Unit 0", all[0].Name)
	require.Equal(t, "1000", all[0].Price)
}

func TestMongoCreateUnitWorkflow(t *testing.T) {
	resetCollections(t)
	ctx := context.Background()

	cfg := config.Default()
	unitSvc := services.NewUnitService(cfg, repos)
	catalogSvc := services.NewCatalogService(repos)

	p, err := catalogSvc.CreateProject(ctx, dtos.CreateProjectRequest{Name: "Katameya Heights"})
	require.NoError(t, err)
	pool, err := catalogSvc.CreateAmenity(ctx, dtos.CreateAmenityRequest{Name: "Pool"})
	require.NoError(t, err)

	req := dtos.CreateUnitRequest{
		Name:          utils.Ptr("Villa 3"),
		UnitNumber:    utils.Ptr(1),
		Bedrooms:      utils.Ptr(3),
		Bathrooms:     utils.Ptr(2),
		Compound:      utils.Ptr("Katameya"),
		PropertyType:  utils.Ptr("Villa"),
		SaleType:      utils.Ptr("Resale"),
		Currency:      utils.Ptr("USD"),
		Price:         utils.Ptr("25000000"),
		Size:          utils.Ptr("1500"),
		FinishingType: utils.Ptr("Finished"),
		ProjectID:     utils.Ptr(p.ID.Hex()),
		AmenitiesIDs:  []string{pool.ID.Hex()},
	}
	unit, err := unitSvc.CreateUnit(ctx, req)
	require.NoError(t, err)

	stored, err := unitSvc.GetUnitDetails(ctx, unit.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, models.ProjectSnapshot{ID: p.ID, Name: "Katameya Heights"}, stored.Project)
	require.Equal(t, []models.AmenitySnapshot{{ID: pool.ID, Name: "Pool"}}, stored.Amenities)
	require.Equal(t, unit.CreatedAt, stored.CreatedAt)

	var raw bson.M
	require.NoError(t, db.Collection(repositories.CollectionUnits).
		FindOne(ctx, bson.D{{Key: "_id", Value: unit.ID}}).Decode(&raw))
	require.NotContains(t, raw, "projectId")
	require.NotContains(t, raw, "amenitiesIds")

	req.ProjectID = utils.Ptr(primitive.NewObjectID().Hex())
	_, err = unitSvc.CreateUnit(ctx, req)
	require.True(t, utils.IsNotFound(err, utils.EntityProject))
}
