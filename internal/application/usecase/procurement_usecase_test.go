package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oseikofi/procure-track/internal/application/dto"
	"github.com/oseikofi/procure-track/internal/domain"
	"github.com/oseikofi/procure-track/internal/domain/entity"
	"github.com/oseikofi/procure-track/internal/domain/repository"
)

type fakeQuotationRepo struct {
	quotations map[string]*entity.Quotation
}

func newFakeQuotationRepo() *fakeQuotationRepo {
	return &fakeQuotationRepo{quotations: map[string]*entity.Quotation{}}
}

func (f *fakeQuotationRepo) Create(q *entity.Quotation) error {
	cp := *q
	f.quotations[q.ID] = &cp
	return nil
}

func (f *fakeQuotationRepo) GetByID(id string) (*entity.Quotation, error) {
	q, ok := f.quotations[id]
	if !ok {
		return nil, nil
	}
	cp := *q
	return &cp, nil
}

func (f *fakeQuotationRepo) Update(q *entity.Quotation) error {
	cp := *q
	f.quotations[q.ID] = &cp
	return nil
}

func (f *fakeQuotationRepo) List() ([]*entity.QuotationDetail, error) { return nil, nil }
func (f *fakeQuotationRepo) ListByRequisition(string) ([]*entity.QuotationDetail, error) {
	return nil, nil
}

type fakeOrderRepo struct {
	orders map[string]*entity.PurchaseOrder
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*entity.PurchaseOrder{}}
}

func (f *fakeOrderRepo) Create(o *entity.PurchaseOrder) error {
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) GetByID(id string) (*entity.PurchaseOrderDetail, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	return &entity.PurchaseOrderDetail{PurchaseOrder: *o}, nil
}

func (f *fakeOrderRepo) List() ([]*entity.PurchaseOrderDetail, error) { return nil, nil }

type fakeRequisitionStore struct {
	requisitions map[string]*entity.PurchaseRequisition
}

func (f *fakeRequisitionStore) Create(r *entity.PurchaseRequisition) error {
	cp := *r
	f.requisitions[r.ID] = &cp
	return nil
}

func (f *fakeRequisitionStore) GetByID(id string) (*entity.PurchaseRequisition, error) {
	r, ok := f.requisitions[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRequisitionStore) GetForUpdate(id string) (*entity.PurchaseRequisition, error) {
	return f.GetByID(id)
}

func (f *fakeRequisitionStore) Update(r *entity.PurchaseRequisition) error {
	cp := *r
	f.requisitions[r.ID] = &cp
	return nil
}

func (f *fakeRequisitionStore) GetDetail(string) (*entity.PurchaseRequisitionDetail, error) {
	return nil, nil
}
func (f *fakeRequisitionStore) List() ([]*entity.PurchaseRequisitionDetail, error) { return nil, nil }
func (f *fakeRequisitionStore) ListByRequester(string) ([]*entity.PurchaseRequisitionDetail, error) {
	return nil, nil
}
func (f *fakeRequisitionStore) ListByDepartment(string) ([]*entity.PurchaseRequisitionDetail, error) {
	return nil, nil
}
func (f *fakeRequisitionStore) ListPending() ([]*entity.PurchaseRequisitionDetail, error) {
	return nil, nil
}

type fakeVendorRepo struct {
	vendors map[string]*entity.Vendor
}

func (f *fakeVendorRepo) Create(v *entity.Vendor) error {
	cp := *v
	f.vendors[v.ID] = &cp
	return nil
}

func (f *fakeVendorRepo) GetByID(id string) (*entity.Vendor, error) {
	v, ok := f.vendors[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (f *fakeVendorRepo) Update(v *entity.Vendor) error        { return f.Create(v) }
func (f *fakeVendorRepo) List() ([]*entity.Vendor, error)      { return nil, nil }
func (f *fakeVendorRepo) ListActive() ([]*entity.Vendor, error) { return nil, nil }

type fakeAuditStore struct {
	logs []*entity.AuditLog
}

func (f *fakeAuditStore) Create(l *entity.AuditLog) error {
	cp := *l
	f.logs = append(f.logs, &cp)
	return nil
}

func (f *fakeAuditStore) List(int) ([]*entity.AuditLog, error) { return nil, nil }

type fakeProcurementTxRunner struct {
	quotationRepo   *fakeQuotationRepo
	orderRepo       *fakeOrderRepo
	requisitionRepo *fakeRequisitionStore
	auditRepo       *fakeAuditStore
}

func (f *fakeProcurementTxRunner) RunCatalog(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	auditRepo repository.AuditLogRepository,
) error) error {
	return fn(nil, f.auditRepo)
}

func (f *fakeProcurementTxRunner) RunVendor(ctx context.Context, fn func(
	vendorRepo repository.VendorRepository,
	auditRepo repository.AuditLogRepository,
) error) error {
	return fn(nil, f.auditRepo)
}

func (f *fakeProcurementTxRunner) RunProcurement(ctx context.Context, fn func(
	quotationRepo repository.QuotationRepository,
	orderRepo repository.PurchaseOrderRepository,
	requisitionRepo repository.PurchaseRequisitionRepository,
	auditRepo repository.AuditLogRepository,
) error) error {
	return fn(f.quotationRepo, f.orderRepo, f.requisitionRepo, f.auditRepo)
}

type procurementFixture struct {
	uc              *ProcurementUseCase
	quotationRepo   *fakeQuotationRepo
	orderRepo       *fakeOrderRepo
	requisitionRepo *fakeRequisitionStore
	auditRepo       *fakeAuditStore
}

func newProcurementFixture(reqStatus entity.Status) *procurementFixture {
	requisitionRepo := &fakeRequisitionStore{requisitions: map[string]*entity.PurchaseRequisition{
		"req-1": {
			ID:            "req-1",
			ItemName:      "Standing Desk",
			Quantity:      5,
			EstimatedCost: decimal.RequireFromString("1500.00"),
			Status:        reqStatus,
		},
	}}
	vendorRepo := &fakeVendorRepo{vendors: map[string]*entity.Vendor{
		"vendor-1": {ID: "vendor-1", Name: "Furniture World", Status: entity.VendorStatusActive},
	}}
	quotationRepo := newFakeQuotationRepo()
	orderRepo := newFakeOrderRepo()
	auditRepo := &fakeAuditStore{}
	runner := &fakeProcurementTxRunner{
		quotationRepo:   quotationRepo,
		orderRepo:       orderRepo,
		requisitionRepo: requisitionRepo,
		auditRepo:       auditRepo,
	}
	return &procurementFixture{
		uc:              NewProcurementUseCase(runner, quotationRepo, orderRepo, requisitionRepo, vendorRepo),
		quotationRepo:   quotationRepo,
		orderRepo:       orderRepo,
		requisitionRepo: requisitionRepo,
		auditRepo:       auditRepo,
	}
}

func TestCreateQuotation(t *testing.T) {
	t.Run("derives total from the requisition quantity", func(t *testing.T) {
		f := newProcurementFixture(entity.StatusApproved)

		q, err := f.uc.CreateQuotation(context.Background(), CreateQuotationInput{
			CreateQuotationRequest: dto.CreateQuotationRequest{
				RequisitionID: "req-1",
				VendorID:      "vendor-1",
				UnitPrice:     decimal.RequireFromString("280.00"),
			},
			ActorID: "user-proc",
		})
		require.NoError(t, err)

		assert.True(t, q.TotalPrice.Equal(decimal.RequireFromString("1400.00")),
			"got %s", q.TotalPrice)
		assert.False(t, q.IsSelected)

		require.Len(t, f.auditRepo.logs, 1)
		assert.Equal(t, "CREATE_QUOTATION", f.auditRepo.logs[0].Action)
	})

	t.Run("needs an approved requisition", func(t *testing.T) {
		f := newProcurementFixture(entity.StatusPending)

		_, err := f.uc.CreateQuotation(context.Background(), CreateQuotationInput{
			CreateQuotationRequest: dto.CreateQuotationRequest{
				RequisitionID: "req-1",
				VendorID:      "vendor-1",
				UnitPrice:     decimal.RequireFromString("280.00"),
			},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("rejects non-positive unit price", func(t *testing.T) {
		f := newProcurementFixture(entity.StatusApproved)

		_, err := f.uc.CreateQuotation(context.Background(), CreateQuotationInput{
			CreateQuotationRequest: dto.CreateQuotationRequest{
				RequisitionID: "req-1",
				VendorID:      "vendor-1",
				UnitPrice:     decimal.Zero,
			},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("unknown vendor", func(t *testing.T) {
		f := newProcurementFixture(entity.StatusApproved)

		_, err := f.uc.CreateQuotation(context.Background(), CreateQuotationInput{
			CreateQuotationRequest: dto.CreateQuotationRequest{
				RequisitionID: "req-1",
				VendorID:      "vendor-missing",
				UnitPrice:     decimal.RequireFromString("10.00"),
			},
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCreateOrder(t *testing.T) {
	quote := func(t *testing.T, f *procurementFixture) *entity.Quotation {
		t.Helper()
		q, err := f.uc.CreateQuotation(context.Background(), CreateQuotationInput{
			CreateQuotationRequest: dto.CreateQuotationRequest{
				RequisitionID: "req-1",
				VendorID:      "vendor-1",
				UnitPrice:     decimal.RequireFromString("280.00"),
			},
			ActorID: "user-proc",
		})
		require.NoError(t, err)
		return q
	}

	t.Run("selects the quotation and completes the requisition", func(t *testing.T) {
		f := newProcurementFixture(entity.StatusApproved)
		q := quote(t, f)
		delivery := time.Now().Add(7 * 24 * time.Hour)

		order, err := f.uc.CreateOrder(context.Background(), CreateOrderInput{
			CreatePurchaseOrderRequest: dto.CreatePurchaseOrderRequest{
				QuotationID:      q.ID,
				ExpectedDelivery: &delivery,
			},
			ActorID: "user-proc",
		})
		require.NoError(t, err)

		assert.Equal(t, "req-1", order.RequisitionID)
		assert.Equal(t, "vendor-1", order.VendorID)
		assert.Equal(t, entity.StatusPending, order.Status)
		assert.True(t, order.TotalAmount.Equal(q.TotalPrice))

		selected, _ := f.quotationRepo.GetByID(q.ID)
		assert.True(t, selected.IsSelected)

		req, _ := f.requisitionRepo.GetByID("req-1")
		assert.Equal(t, entity.StatusCompleted, req.Status)

		// quotation + order
		require.Len(t, f.auditRepo.logs, 2)
		assert.Equal(t, "CREATE_PURCHASE_ORDER", f.auditRepo.logs[1].Action)
	})

	t.Run("one order per requisition", func(t *testing.T) {
		f := newProcurementFixture(entity.StatusApproved)
		q := quote(t, f)

		_, err := f.uc.CreateOrder(context.Background(), CreateOrderInput{
			CreatePurchaseOrderRequest: dto.CreatePurchaseOrderRequest{QuotationID: q.ID},
		})
		require.NoError(t, err)

		// The requisition is COMPLETED now, so the same quotation cannot
		// back a second order.
		_, err = f.uc.CreateOrder(context.Background(), CreateOrderInput{
			CreatePurchaseOrderRequest: dto.CreatePurchaseOrderRequest{QuotationID: q.ID},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("unknown quotation", func(t *testing.T) {
		f := newProcurementFixture(entity.StatusApproved)

		_, err := f.uc.CreateOrder(context.Background(), CreateOrderInput{
			CreatePurchaseOrderRequest: dto.CreatePurchaseOrderRequest{QuotationID: "missing"},
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
