package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/homescout/listing-service/internal/config"
	"github.com/homescout/listing-service/internal/services"
)

func memoryConfig() *config.Config {
	cfg := config.Default()
	cfg.StorageDriver = config.StorageDriverMemory
	return cfg
}

func TestNewAppMemory(t *testing.T) {
	a, err := NewApp(memoryConfig())
	require.NoError(t, err)
	defer a.Close()

	require.Nil(t, a.Mongo)
	require.NoError(t, a.Ping(context.Background()))
	require.NotNil(t, a.Repos.Units)
}

func TestNewAppUnknownDriver(t *testing.T) {
	cfg := memoryConfig()
	cfg.StorageDriver = "sqlite"
	_, err := NewApp(cfg)
	require.Error(t, err)
}

func TestSeedAllTestDataIsIdempotent(t *testing.T) {
	ctx := context.Background()
	cfg := memoryConfig()
	a, err := NewApp(cfg)
	require.NoError(t, err)
	unitSvc := services.NewUnitService(cfg, a.Repos)

	require.NoError(t, SeedAllTestData(ctx, a.Repos, unitSvc))
	require.NoError(t, SeedAllTestData(ctx, a.Repos, unitSvc))

	units, err := a.Repos.Units.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, len(seedUnits), units)

	projects, err := a.Repos.Projects.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, len(seedProjects), projects)

	page, err := unitSvc.ListUnits(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, page.Listings, len(seedUnits))

	villa, err := unitSvc.GetUnitDetails(ctx, page.Listings[0].ID.Hex())
	require.NoError(t, err)
	require.Equal(t, "Katameya Heights", villa.Project.Name)
	require.Len(t, villa.Amenities, 2)
}
