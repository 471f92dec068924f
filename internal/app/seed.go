package app

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/homescout/listing-service/internal/dtos"
	"github.com/homescout/listing-service/internal/models"
	"github.com/homescout/listing-service/internal/repositories"
	"github.com/homescout/listing-service/internal/services"
	"github.com/homescout/listing-service/internal/utils"
)

// SentinelProjectID is used to check if seeding has already occurred.
const SentinelProjectID = "65a000000000000000000001"

type seedUnit struct {
	name, compound, propertyType, saleType, finishingType string
	price, size, currency                                 string
	bedrooms, bathrooms                                   int
	amenities                                             []string
}

var (
	seedProjects = []struct{ id, name string }{
		{SentinelProjectID, "Katameya Heights"},
		{"65a000000000000000000002", "Palm Hills October"},
	}
	seedAmenities = []struct{ id, name string }{
		{"65a000000000000000000101", "Pool"},
		{"65a000000000000000000102", "Gym"},
		{"65a000000000000000000103", "Clubhouse"},
		{"65a000000000000000000104", "24/7 Security"},
	}
	seedUnits = []seedUnit{
		{"Villa 3", "Katameya", "Villa", "Resale", "Finished", "25000000", "1500", "USD", 5, 4,
			[]string{"65a000000000000000000101", "65a000000000000000000102"}},
		{"Garden Apartment 12", "Katameya", "Apartment", "Developer Sale", "Semi-Finished", "7800000", "180", "EGP", 3, 2,
			[]string{"65a000000000000000000104"}},
		{"Penthouse A", "Palm Hills", "Penthouse", "Developer Sale", "Core & Shell", "12500000", "260", "EGP", 4, 3,
			[]string{"65a000000000000000000101", "65a000000000000000000103"}},
		{"Studio 7", "Palm Hills", "Studio", "Resale", "Furnished", "3200000", "65", "EGP", 1, 1, nil},
	}
)

// SeedAllTestData inserts demo projects, amenities and units. It is
// idempotent: nothing happens if the sentinel project already exists.
func SeedAllTestData(ctx context.Context, repos repositories.Repositories, unitSvc *services.UnitService) error {
	sentinelID, _ := primitive.ObjectIDFromHex(SentinelProjectID)

	if existing, err := repos.Projects.GetByID(ctx, sentinelID); err != nil {
		return fmt.Errorf("failed to check for sentinel project: %w", err)
	} else if existing != nil {
		utils.Logger.Info("Seed data already present; skipping seeding.")
		return nil
	}

	for _, sp := range seedProjects {
		id, _ := primitive.ObjectIDFromHex(sp.id)
		existing, err := repos.Projects.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("check project %s: %w", sp.name, err)
		}
		if existing != nil {
			continue
		}
		if err := repos.Projects.Create(ctx, &models.Project{ID: id, Name: sp.name}); err != nil {
			return fmt.Errorf("seed project %s: %w", sp.name, err)
		}
	}

	for _, sa := range seedAmenities {
		id, _ := primitive.ObjectIDFromHex(sa.id)
		existing, err := repos.Amenities.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("check amenity %s: %w", sa.name, err)
		}
		if existing != nil {
			continue
		}
		if err := repos.Amenities.Create(ctx, &models.Amenity{ID: id, Name: sa.name}); err != nil {
			return fmt.Errorf("seed amenity %s: %w", sa.name, err)
		}
	}

	for i, su := range seedUnits {
		projectID := seedProjects[0].id
		if su.compound == "Palm Hills" {
			projectID = seedProjects[1].id
		}
		req := dtos.CreateUnitRequest{
			Name:          utils.Ptr(su.name),
			UnitNumber:    utils.Ptr(i + 1),
			Bedrooms:      utils.Ptr(su.bedrooms),
			Bathrooms:     utils.Ptr(su.bathrooms),
			ImageURLs:     []string{fmt.Sprintf("https://picsum.photos/seed/homescout-%d/640/480", i+1)},
			Compound:      utils.Ptr(su.compound),
			PropertyType:  utils.Ptr(su.propertyType),
			SaleType:      utils.Ptr(su.saleType),
			Description:   utils.Ptr(fmt.Sprintf("%s in %s.", su.name, su.compound)),
			Currency:      utils.Ptr(su.currency),
			Price:         utils.Ptr(su.price),
			Size:          utils.Ptr(su.size),
			FinishingType: utils.Ptr(su.finishingType),
			ProjectID:     utils.Ptr(projectID),
			AmenitiesIDs:  su.amenities,
		}
		if _, err := unitSvc.CreateUnit(ctx, req); err != nil {
			return fmt.Errorf("seed unit %s: %w", su.name, err)
		}
	}

	utils.Logger.Info("Seeding completed successfully.")
	return nil
}
