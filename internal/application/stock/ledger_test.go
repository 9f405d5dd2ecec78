package stock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oseikofi/procure-track/internal/domain"
	"github.com/oseikofi/procure-track/internal/domain/entity"
)

type memStockRepo struct {
	records map[string]*entity.Stock // itemID + "/" + departmentID
}

func newMemStockRepo(seed ...*entity.Stock) *memStockRepo {
	r := &memStockRepo{records: map[string]*entity.Stock{}}
	for _, s := range seed {
		cp := *s
		r.records[s.ItemID+"/"+s.DepartmentID] = &cp
	}
	return r
}

func (r *memStockRepo) Get(itemID, departmentID string) (*entity.Stock, error) {
	rec, ok := r.records[itemID+"/"+departmentID]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (r *memStockRepo) GetForUpdate(itemID, departmentID string) (*entity.Stock, error) {
	return r.Get(itemID, departmentID)
}

func (r *memStockRepo) Create(s *entity.Stock) error {
	cp := *s
	r.records[s.ItemID+"/"+s.DepartmentID] = &cp
	return nil
}

func (r *memStockRepo) Update(s *entity.Stock) error {
	cp := *s
	r.records[s.ItemID+"/"+s.DepartmentID] = &cp
	return nil
}

func (r *memStockRepo) List() ([]*entity.StockDetail, error)                  { return nil, nil }
func (r *memStockRepo) ListByDepartment(string) ([]*entity.StockDetail, error) { return nil, nil }
func (r *memStockRepo) ListByItem(string) ([]*entity.StockDetail, error)       { return nil, nil }
func (r *memStockRepo) ListLow() ([]*entity.StockDetail, error)                { return nil, nil }

type memMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *memMovementRepo) Create(m *entity.StockMovement) error {
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *memMovementRepo) List(int) ([]*entity.StockMovementDetail, error)          { return nil, nil }
func (r *memMovementRepo) ListByStock(string) ([]*entity.StockMovementDetail, error) { return nil, nil }
func (r *memMovementRepo) CountByReference(string) (int, error)                      { return 0, nil }

func seedStock(available, reserved int) *entity.Stock {
	return &entity.Stock{
		ID:                "stock-1",
		ItemID:            "item-1",
		DepartmentID:      "dept-1",
		QuantityAvailable: available,
		QuantityReserved:  reserved,
		LastUpdated:       time.Now(),
	}
}

func TestReserve(t *testing.T) {
	var ledger Ledger

	t.Run("places hold without touching availability", func(t *testing.T) {
		repo := newMemStockRepo(seedStock(10, 0))

		require.NoError(t, ledger.Reserve(repo, "item-1", "dept-1", 4))

		rec, _ := repo.Get("item-1", "dept-1")
		assert.Equal(t, 10, rec.QuantityAvailable)
		assert.Equal(t, 4, rec.QuantityReserved)
	})

	t.Run("counts existing holds against availability", func(t *testing.T) {
		repo := newMemStockRepo(seedStock(10, 7))

		err := ledger.Reserve(repo, "item-1", "dept-1", 4)
		require.ErrorIs(t, err, domain.ErrInsufficientStock)

		rec, _ := repo.Get("item-1", "dept-1")
		assert.Equal(t, 7, rec.QuantityReserved)
	})

	t.Run("no record means no stock", func(t *testing.T) {
		repo := newMemStockRepo()

		err := ledger.Reserve(repo, "item-1", "dept-1", 1)
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		repo := newMemStockRepo(seedStock(10, 0))

		assert.ErrorIs(t, ledger.Reserve(repo, "item-1", "dept-1", 0), domain.ErrInvalidInput)
		assert.ErrorIs(t, ledger.Reserve(repo, "item-1", "dept-1", -3), domain.ErrInvalidInput)
	})
}

func TestRelease(t *testing.T) {
	var ledger Ledger

	t.Run("drops the hold", func(t *testing.T) {
		repo := newMemStockRepo(seedStock(10, 4))

		require.NoError(t, ledger.Release(repo, "item-1", "dept-1", 4))

		rec, _ := repo.Get("item-1", "dept-1")
		assert.Equal(t, 10, rec.QuantityAvailable)
		assert.Equal(t, 0, rec.QuantityReserved)
	})

	t.Run("never drives the reservation negative", func(t *testing.T) {
		repo := newMemStockRepo(seedStock(10, 2))

		err := ledger.Release(repo, "item-1", "dept-1", 3)
		require.ErrorIs(t, err, domain.ErrInvariantViolation)

		rec, _ := repo.Get("item-1", "dept-1")
		assert.Equal(t, 2, rec.QuantityReserved)
	})
}

func TestTransferOut(t *testing.T) {
	var ledger Ledger

	t.Run("consumes the reservation and logs one OUT movement", func(t *testing.T) {
		repo := newMemStockRepo(seedStock(10, 4))
		movements := &memMovementRepo{}

		err := ledger.TransferOut(repo, movements, "item-1", "dept-1", 4,
			"Borrowed by Human Resources", "req-1", "actor-1")
		require.NoError(t, err)

		rec, _ := repo.Get("item-1", "dept-1")
		assert.Equal(t, 6, rec.QuantityAvailable)
		assert.Equal(t, 0, rec.QuantityReserved)

		require.Len(t, movements.movements, 1)
		m := movements.movements[0]
		assert.Equal(t, entity.MovementTypeOUT, m.MovementType)
		assert.Equal(t, 4, m.Quantity)
		assert.Equal(t, "stock-1", m.StockID)
		assert.Equal(t, "req-1", m.ReferenceID)
		assert.Equal(t, "actor-1", m.PerformedBy)
	})

	t.Run("requires a matching reservation", func(t *testing.T) {
		repo := newMemStockRepo(seedStock(10, 2))
		movements := &memMovementRepo{}

		err := ledger.TransferOut(repo, movements, "item-1", "dept-1", 4, "r", "ref", "actor")
		require.ErrorIs(t, err, domain.ErrInvariantViolation)
		assert.Empty(t, movements.movements)
	})

	t.Run("requires sufficient availability", func(t *testing.T) {
		repo := newMemStockRepo(seedStock(3, 4))
		movements := &memMovementRepo{}

		err := ledger.TransferOut(repo, movements, "item-1", "dept-1", 4, "r", "ref", "actor")
		assert.ErrorIs(t, err, domain.ErrInvariantViolation)
	})
}

func TestTransferIn(t *testing.T) {
	var ledger Ledger

	t.Run("adds to an existing record", func(t *testing.T) {
		repo := newMemStockRepo(seedStock(2, 0))
		movements := &memMovementRepo{}

		err := ledger.TransferIn(repo, movements, "item-1", "dept-1", 4,
			"Borrowed from Information Technology", "req-1", "actor-1")
		require.NoError(t, err)

		rec, _ := repo.Get("item-1", "dept-1")
		assert.Equal(t, 6, rec.QuantityAvailable)
		assert.Equal(t, 0, rec.QuantityReserved)

		require.Len(t, movements.movements, 1)
		assert.Equal(t, entity.MovementTypeIN, movements.movements[0].MovementType)
	})

	t.Run("creates the record when the department never held the item", func(t *testing.T) {
		repo := newMemStockRepo()
		movements := &memMovementRepo{}

		err := ledger.TransferIn(repo, movements, "item-1", "dept-2", 4, "r", "ref", "actor")
		require.NoError(t, err)

		rec, _ := repo.Get("item-1", "dept-2")
		require.NotNil(t, rec)
		assert.Equal(t, 4, rec.QuantityAvailable)
		assert.Equal(t, 0, rec.QuantityReserved)
		assert.NotEmpty(t, rec.ID)

		require.Len(t, movements.movements, 1)
		assert.Equal(t, rec.ID, movements.movements[0].StockID)
	})
}
