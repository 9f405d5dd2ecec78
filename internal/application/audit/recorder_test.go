package audit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oseikofi/procure-track/internal/domain/entity"
)

type fakeAuditRepo struct {
	logs      []*entity.AuditLog
	createErr error
	lastLimit int
}

func (f *fakeAuditRepo) Create(l *entity.AuditLog) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *l
	f.logs = append(f.logs, &cp)
	return nil
}

func (f *fakeAuditRepo) List(limit int) ([]*entity.AuditLog, error) {
	f.lastLimit = limit
	return f.logs, nil
}

func TestRecord(t *testing.T) {
	t.Run("serializes both snapshots", func(t *testing.T) {
		repo := &fakeAuditRepo{}

		err := Record(repo, Entry{
			ActorID:    "user-1",
			Action:     ActionApproveBorrowRequest,
			EntityType: "BorrowRequest",
			EntityID:   "req-1",
			Before:     map[string]string{"status": "PENDING"},
			After:      map[string]string{"status": "APPROVED"},
			IPAddress:  "10.0.0.1",
			UserAgent:  "curl/8.0",
		})
		require.NoError(t, err)

		require.Len(t, repo.logs, 1)
		row := repo.logs[0]
		assert.NotEmpty(t, row.ID)
		assert.Equal(t, "user-1", row.UserID)
		assert.Equal(t, "APPROVE_BORROW_REQUEST", row.Action)
		assert.JSONEq(t, `{"status":"PENDING"}`, row.OldValues)
		assert.JSONEq(t, `{"status":"APPROVED"}`, row.NewValues)
		assert.Equal(t, "10.0.0.1", row.IPAddress)
		assert.False(t, row.CreatedAt.IsZero())
	})

	t.Run("nil snapshots stay empty", func(t *testing.T) {
		repo := &fakeAuditRepo{}

		err := Record(repo, Entry{
			Action:     ActionCreateStock,
			EntityType: "Stock",
			EntityID:   "stock-1",
			After:      map[string]int{"quantityAvailable": 10},
		})
		require.NoError(t, err)

		row := repo.logs[0]
		assert.Empty(t, row.OldValues)
		assert.NotEmpty(t, row.NewValues)
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		repoErr := errors.New("insert failed")
		repo := &fakeAuditRepo{createErr: repoErr}

		err := Record(repo, Entry{
			Action:     ActionCreateVendor,
			EntityType: "Vendor",
			EntityID:   "vendor-1",
		})
		assert.ErrorIs(t, err, repoErr,
			"a mutation must not survive a failed audit write")
	})

	t.Run("unserializable snapshot fails before the insert", func(t *testing.T) {
		repo := &fakeAuditRepo{}

		err := Record(repo, Entry{
			Action:     ActionCreateItem,
			EntityType: "Item",
			EntityID:   "item-1",
			After:      make(chan int),
		})
		require.Error(t, err)
		assert.Empty(t, repo.logs)
	})
}

func TestServiceList(t *testing.T) {
	repo := &fakeAuditRepo{}
	svc := NewService(repo)

	_, err := svc.List(25)
	require.NoError(t, err)
	assert.Equal(t, 25, repo.lastLimit)

	_, err = svc.List(0)
	require.NoError(t, err)
	assert.Equal(t, 100, repo.lastLimit, "non-positive limit falls back to the default")
}
