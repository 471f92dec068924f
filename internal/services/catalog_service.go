package services

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/homescout/listing-service/internal/dtos"
	"github.com/homescout/listing-service/internal/models"
	"github.com/homescout/listing-service/internal/repositories"
	"github.com/homescout/listing-service/internal/utils"
	"github.com/homescout/listing-service/internal/validation"
)

// CatalogService manages the projects and amenities that units reference.
type CatalogService struct {
	projects  repositories.ProjectRepository
	amenities repositories.AmenityRepository
}

func NewCatalogService(repos repositories.Repositories) *CatalogService {
	return &CatalogService{projects: repos.Projects, amenities: repos.Amenities}
}

func (s *CatalogService) CreateProject(ctx context.Context, req dtos.CreateProjectRequest) (*models.Project, error) {
	req.Name = strings.TrimSpace(req.Name)
	if details := validation.Struct(req); len(details) > 0 {
		return nil, &utils.ValidationError{Details: details}
	}
	p := &models.Project{Name: req.Name}
	if err := s.projects.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	utils.Logger.WithField("project_id", p.ID.Hex()).Info("Project created")
	return p, nil
}

func (s *CatalogService) GetProject(ctx context.Context, id string) (*models.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.NewNotFoundError(utils.EntityProject, id)
	}
	p, err := s.projects.GetByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("get project %s: %w", id, err)
	}
	if p == nil {
		return nil, utils.NewNotFoundError(utils.EntityProject, id)
	}
	return p, nil
}

func (s *CatalogService) ListProjects(ctx context.Context) ([]*models.Project, error) {
	return s.projects.List(ctx)
}

func (s *CatalogService) CreateAmenity(ctx context.Context, req dtos.CreateAmenityRequest) (*models.Amenity, error) {
	req.Name = strings.TrimSpace(req.Name)
	if details := validation.Struct(req); len(details) > 0 {
		return nil, &utils.ValidationError{Details: details}
	}
	a := &models.Amenity{Name: req.Name}
	if err := s.amenities.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create amenity: %w", err)
	}
	utils.Logger.WithField("amenity_id", a.ID.Hex()).Info("Amenity created")
	return a, nil
}

func (s *CatalogService) GetAmenity(ctx context.Context, id string) (*models.Amenity, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.NewNotFoundError(utils.EntityAmenity, id)
	}
	a, err := s.amenities.GetByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("get amenity %s: %w", id, err)
	}
	if a == nil {
		return nil, utils.NewNotFoundError(utils.EntityAmenity, id)
	}
	return a, nil
}

func (s *CatalogService) ListAmenities(ctx context.Context) ([]*models.Amenity, error) {
	return s.amenities.List(ctx)
}
