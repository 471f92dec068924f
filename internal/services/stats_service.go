package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/homescout/listing-service/internal/repositories"
	"github.com/homescout/listing-service/internal/utils"
)

// InventoryReport is a point-in-time count of every collection.
type InventoryReport struct {
	Units     int64
	Projects  int64
	Amenities int64
}

type StatsService struct {
	repos repositories.Repositories
}

func NewStatsService(repos repositories.Repositories) *StatsService {
	return &StatsService{repos: repos}
}

// RunInventoryReport counts units, projects and amenities and logs the
// result. It is driven by the cron scheduler in main.
func (s *StatsService) RunInventoryReport(ctx context.Context) (*InventoryReport, error) {
	var (
		r   InventoryReport
		err error
	)
	if r.Units, err = s.repos.Units.Count(ctx); err != nil {
		return nil, fmt.Errorf("count units: %w", err)
	}
	if r.Projects, err = s.repos.Projects.Count(ctx); err != nil {
		return nil, fmt.Errorf("count projects: %w", err)
	}
	if r.Amenities, err = s.repos.Amenities.Count(ctx); err != nil {
		return nil, fmt.Errorf("count amenities: %w", err)
	}

	utils.Logger.WithFields(logrus.Fields{
		"units":     r.Units,
		"projects":  r.Projects,
		"amenities": r.Amenities,
	}).Info("Inventory report")
	return &r, nil
}
