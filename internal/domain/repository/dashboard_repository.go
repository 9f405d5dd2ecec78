package repository

import "github.com/oseikofi/procure-track/internal/domain/entity"

// DashboardRepository serves the aggregate read queries behind the
// dashboard. Read-only.
type DashboardRepository interface {
	Stats() (*entity.DashboardStats, error)
	RecentActivities(limit int) ([]*entity.Activity, error)
}
