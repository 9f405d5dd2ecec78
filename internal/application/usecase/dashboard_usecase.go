package usecase

import (
	"context"

	"github.com/oseikofi/procure-track/internal/domain/entity"
	"github.com/oseikofi/procure-track/internal/domain/repository"
)

// DashboardUseCase serves the landing-page aggregates. Read-only.
type DashboardUseCase struct {
	dashboardRepo repository.DashboardRepository
}

// NewDashboardUseCase builds the dashboard service.
func NewDashboardUseCase(dashboardRepo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{dashboardRepo: dashboardRepo}
}

// Stats returns the KPI counters.
func (uc *DashboardUseCase) Stats(ctx context.Context) (*entity.DashboardStats, error) {
	return uc.dashboardRepo.Stats()
}

// RecentActivities returns the merged activity feed. A non-positive limit
// falls back to 10.
func (uc *DashboardUseCase) RecentActivities(ctx context.Context, limit int) ([]*entity.Activity, error) {
	if limit <= 0 {
		limit = 10
	}
	return uc.dashboardRepo.RecentActivities(limit)
}
