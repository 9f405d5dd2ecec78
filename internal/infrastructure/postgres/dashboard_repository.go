package postgres

import (
	"context"
	"fmt"

	"github.com/oseikofi/procure-track/internal/domain/entity"
	"github.com/oseikofi/procure-track/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo serves the aggregate queries behind the dashboard.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository builds the dashboard read adapter.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// Stats computes the landing-page KPIs in one round trip.
func (r *DashboardRepo) Stats() (*entity.DashboardStats, error) {
	query := `
		SELECT
			COALESCE((SELECT sum(s.quantity_available * i.unit_price)
			          FROM stocks s JOIN items i ON i.id = s.item_id
			          WHERE i.unit_price IS NOT NULL), 0),
			(SELECT count(*) FROM borrow_requests WHERE status = 'PENDING') +
			(SELECT count(*) FROM purchase_requisitions WHERE status = 'PENDING'),
			(SELECT count(*) FROM stocks s JOIN items i ON i.id = s.item_id
			 WHERE s.quantity_available <= i.min_reorder_level),
			(SELECT count(*) FROM vendors WHERE status = 'ACTIVE')`
	var stats entity.DashboardStats
	err := r.q.QueryRow(context.Background(), query).Scan(
		&stats.TotalStockValue, &stats.PendingRequests, &stats.LowStockItems, &stats.ActiveVendors,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	return &stats, nil
}

// RecentActivities merges borrow requests and requisitions into one feed,
// newest first.
func (r *DashboardRepo) RecentActivities(limit int) ([]*entity.Activity, error) {
	query := `
		SELECT id, type, title, description, user_name, status, ts FROM (
			SELECT b.id, 'borrow_request' AS type,
			       i.name AS title, b.justification AS description,
			       u.full_name AS user_name, b.status, b.created_at AS ts
			FROM borrow_requests b
			JOIN items i ON i.id = b.item_id
			JOIN users u ON u.id = b.requester_id
			UNION ALL
			SELECT p.id, 'purchase_requisition' AS type,
			       p.item_name AS title, p.justification AS description,
			       u.full_name AS user_name, p.status, p.created_at AS ts
			FROM purchase_requisitions p
			JOIN users u ON u.id = p.requester_id
		) activity
		ORDER BY ts DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent activities: %w", err)
	}
	defer rows.Close()

	var out []*entity.Activity
	for rows.Next() {
		var a entity.Activity
		if err := rows.Scan(&a.ID, &a.Type, &a.Title, &a.Description, &a.User, &a.Status, &a.Timestamp); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}
