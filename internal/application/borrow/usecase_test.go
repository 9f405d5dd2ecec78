package borrow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oseikofi/procure-track/internal/domain"
	"github.com/oseikofi/procure-track/internal/domain/entity"
	"github.com/oseikofi/procure-track/internal/domain/repository"
)

// In-memory fakes

type fakeStockRepo struct {
	records map[string]*entity.Stock // key: itemID + "/" + departmentID
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{records: map[string]*entity.Stock{}}
}

func stockKey(itemID, departmentID string) string { return itemID + "/" + departmentID }

func (f *fakeStockRepo) Get(itemID, departmentID string) (*entity.Stock, error) {
	rec, ok := f.records[stockKey(itemID, departmentID)]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeStockRepo) GetForUpdate(itemID, departmentID string) (*entity.Stock, error) {
	return f.Get(itemID, departmentID)
}

func (f *fakeStockRepo) Create(stock *entity.Stock) error {
	cp := *stock
	f.records[stockKey(stock.ItemID, stock.DepartmentID)] = &cp
	return nil
}

func (f *fakeStockRepo) Update(stock *entity.Stock) error {
	cp := *stock
	f.records[stockKey(stock.ItemID, stock.DepartmentID)] = &cp
	return nil
}

func (f *fakeStockRepo) List() ([]*entity.StockDetail, error)                  { return nil, nil }
func (f *fakeStockRepo) ListByDepartment(string) ([]*entity.StockDetail, error) { return nil, nil }
func (f *fakeStockRepo) ListByItem(string) ([]*entity.StockDetail, error)       { return nil, nil }
func (f *fakeStockRepo) ListLow() ([]*entity.StockDetail, error)                { return nil, nil }

func (f *fakeStockRepo) snapshot() map[string]entity.Stock {
	out := map[string]entity.Stock{}
	for k, v := range f.records {
		out[k] = *v
	}
	return out
}

func (f *fakeStockRepo) restore(snap map[string]entity.Stock) {
	f.records = map[string]*entity.Stock{}
	for k, v := range snap {
		cp := v
		f.records[k] = &cp
	}
}

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (f *fakeMovementRepo) Create(m *entity.StockMovement) error {
	cp := *m
	f.movements = append(f.movements, &cp)
	return nil
}

func (f *fakeMovementRepo) List(int) ([]*entity.StockMovementDetail, error)          { return nil, nil }
func (f *fakeMovementRepo) ListByStock(string) ([]*entity.StockMovementDetail, error) { return nil, nil }
func (f *fakeMovementRepo) CountByReference(referenceID string) (int, error) {
	n := 0
	for _, m := range f.movements {
		if m.ReferenceID == referenceID {
			n++
		}
	}
	return n, nil
}

type fakeBorrowRepo struct {
	requests map[string]*entity.BorrowRequest
}

func newFakeBorrowRepo() *fakeBorrowRepo {
	return &fakeBorrowRepo{requests: map[string]*entity.BorrowRequest{}}
}

func (f *fakeBorrowRepo) Create(r *entity.BorrowRequest) error {
	cp := *r
	f.requests[r.ID] = &cp
	return nil
}

func (f *fakeBorrowRepo) GetByID(id string) (*entity.BorrowRequest, error) {
	rec, ok := f.requests[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeBorrowRepo) GetForUpdate(id string) (*entity.BorrowRequest, error) {
	return f.GetByID(id)
}

func (f *fakeBorrowRepo) Update(r *entity.BorrowRequest) error {
	cp := *r
	f.requests[r.ID] = &cp
	return nil
}

func (f *fakeBorrowRepo) GetDetail(string) (*entity.BorrowRequestDetail, error)          { return nil, nil }
func (f *fakeBorrowRepo) List() ([]*entity.BorrowRequestDetail, error)                   { return nil, nil }
func (f *fakeBorrowRepo) ListByRequester(string) ([]*entity.BorrowRequestDetail, error)  { return nil, nil }
func (f *fakeBorrowRepo) ListByDepartment(string) ([]*entity.BorrowRequestDetail, error) { return nil, nil }
func (f *fakeBorrowRepo) ListPending() ([]*entity.BorrowRequestDetail, error)            { return nil, nil }

type fakeAuditRepo struct {
	logs []*entity.AuditLog
}

func (f *fakeAuditRepo) Create(l *entity.AuditLog) error {
	cp := *l
	f.logs = append(f.logs, &cp)
	return nil
}

func (f *fakeAuditRepo) List(int) ([]*entity.AuditLog, error) { return nil, nil }

type fakeItemRepo struct {
	items map[string]*entity.Item
}

func (f *fakeItemRepo) Create(*entity.Item) error { return nil }
func (f *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	it, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	return it, nil
}
func (f *fakeItemRepo) GetByCode(string) (*entity.Item, error)  { return nil, nil }
func (f *fakeItemRepo) Update(*entity.Item) error               { return nil }
func (f *fakeItemRepo) List() ([]*entity.Item, error)           { return nil, nil }
func (f *fakeItemRepo) Search(string) ([]*entity.Item, error)   { return nil, nil }

type fakeDeptRepo struct {
	departments map[string]*entity.Department
}

func (f *fakeDeptRepo) Create(*entity.Department) error { return nil }
func (f *fakeDeptRepo) GetByID(id string) (*entity.Department, error) {
	d, ok := f.departments[id]
	if !ok {
		return nil, nil
	}
	return d, nil
}
func (f *fakeDeptRepo) List() ([]*entity.Department, error) { return nil, nil }
func (f *fakeDeptRepo) Update(*entity.Department) error     { return nil }

// fakeTxRunner hands fn the fakes directly and emulates rollback: when fn
// fails, stock and request state are restored to the pre-transaction
// snapshot.
type fakeTxRunner struct {
	borrowRepo   *fakeBorrowRepo
	stockRepo    *fakeStockRepo
	movementRepo *fakeMovementRepo
	auditRepo    *fakeAuditRepo
}

func (f *fakeTxRunner) RunBorrow(ctx context.Context, fn func(
	borrowRepo repository.BorrowRequestRepository,
	stockRepo repository.StockRepository,
	movementRepo repository.StockMovementRepository,
	auditRepo repository.AuditLogRepository,
) error) error {
	stockSnap := f.stockRepo.snapshot()
	requestSnap := map[string]entity.BorrowRequest{}
	for k, v := range f.borrowRepo.requests {
		requestSnap[k] = *v
	}
	movementsLen := len(f.movementRepo.movements)
	logsLen := len(f.auditRepo.logs)

	if err := fn(f.borrowRepo, f.stockRepo, f.movementRepo, f.auditRepo); err != nil {
		f.stockRepo.restore(stockSnap)
		f.borrowRepo.requests = map[string]*entity.BorrowRequest{}
		for k, v := range requestSnap {
			cp := v
			f.borrowRepo.requests[k] = &cp
		}
		f.movementRepo.movements = f.movementRepo.movements[:movementsLen]
		f.auditRepo.logs = f.auditRepo.logs[:logsLen]
		return err
	}
	return nil
}

// Fixture

const (
	itemLaptop = "item-laptop"
	deptIT     = "dept-it"
	deptHR     = "dept-hr"
	userStaff  = "user-staff"
	userITHOD  = "user-it-hod"
	userHRHOD  = "user-hr-hod"
)

type fixture struct {
	uc           *UseCase
	stockRepo    *fakeStockRepo
	movementRepo *fakeMovementRepo
	borrowRepo   *fakeBorrowRepo
	auditRepo    *fakeAuditRepo
}

func newFixture(t *testing.T, available, reserved int) *fixture {
	t.Helper()
	stockRepo := newFakeStockRepo()
	require.NoError(t, stockRepo.Create(&entity.Stock{
		ID:                "stock-it-laptop",
		ItemID:            itemLaptop,
		DepartmentID:      deptIT,
		QuantityAvailable: available,
		QuantityReserved:  reserved,
		LastUpdated:       time.Now(),
	}))
	movementRepo := &fakeMovementRepo{}
	borrowRepo := newFakeBorrowRepo()
	auditRepo := &fakeAuditRepo{}
	runner := &fakeTxRunner{
		borrowRepo:   borrowRepo,
		stockRepo:    stockRepo,
		movementRepo: movementRepo,
		auditRepo:    auditRepo,
	}
	itemRepo := &fakeItemRepo{items: map[string]*entity.Item{
		itemLaptop: {ID: itemLaptop, Code: "IT-001", Name: "Laptop Computer", Unit: "piece"},
	}}
	deptRepo := &fakeDeptRepo{departments: map[string]*entity.Department{
		deptIT: {ID: deptIT, Name: "Information Technology"},
		deptHR: {ID: deptHR, Name: "Human Resources"},
	}}
	return &fixture{
		uc:           NewUseCase(runner, borrowRepo, itemRepo, deptRepo),
		stockRepo:    stockRepo,
		movementRepo: movementRepo,
		borrowRepo:   borrowRepo,
		auditRepo:    auditRepo,
	}
}

func (f *fixture) create(t *testing.T, qty int) *entity.BorrowRequest {
	t.Helper()
	req, err := f.uc.Create(context.Background(), CreateInput{
		RequesterID:           userStaff,
		RequesterDepartmentID: deptHR,
		ItemID:                itemLaptop,
		OwningDepartmentID:    deptIT,
		Quantity:              qty,
		Justification:         "Needed for new employees",
		RequiredDate:          time.Now().Add(72 * time.Hour),
	})
	require.NoError(t, err)
	return req
}

func (f *fixture) ownerStock(t *testing.T) *entity.Stock {
	t.Helper()
	rec, err := f.stockRepo.Get(itemLaptop, deptIT)
	require.NoError(t, err)
	require.NotNil(t, rec)
	return rec
}

// Create

func TestCreate_ReservesAgainstOwnerStock(t *testing.T) {
	f := newFixture(t, 10, 4)

	req := f.create(t, 2)

	assert.Equal(t, entity.StatusPending, req.Status)
	assert.Equal(t, entity.StatusPending, req.RequesterHODApproval)
	assert.Equal(t, entity.StatusPending, req.OwnerHODApproval)

	rec := f.ownerStock(t)
	assert.Equal(t, 10, rec.QuantityAvailable, "reservation must not change availability")
	assert.Equal(t, 6, rec.QuantityReserved)
	assert.Empty(t, f.movementRepo.movements, "a reservation is a hold, not a movement")

	require.Len(t, f.auditRepo.logs, 1)
	assert.Equal(t, "CREATE_BORROW_REQUEST", f.auditRepo.logs[0].Action)
	assert.Equal(t, req.ID, f.auditRepo.logs[0].EntityID)
}

func TestCreate_InsufficientUnreservedStock(t *testing.T) {
	f := newFixture(t, 10, 4)

	// 6 unreserved; asking for 7 must fail even though 10 are available.
	_, err := f.uc.Create(context.Background(), CreateInput{
		RequesterID:           userStaff,
		RequesterDepartmentID: deptHR,
		ItemID:                itemLaptop,
		OwningDepartmentID:    deptIT,
		Quantity:              7,
		Justification:         "bulk request",
		RequiredDate:          time.Now().Add(72 * time.Hour),
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	rec := f.ownerStock(t)
	assert.Equal(t, 10, rec.QuantityAvailable)
	assert.Equal(t, 4, rec.QuantityReserved, "failed create must leave stock untouched")
	assert.Empty(t, f.borrowRepo.requests, "failed create must not persist the request")
	assert.Empty(t, f.auditRepo.logs)
}

func TestCreate_SelfBorrowRejected(t *testing.T) {
	f := newFixture(t, 10, 0)

	_, err := f.uc.Create(context.Background(), CreateInput{
		RequesterID:           userStaff,
		RequesterDepartmentID: deptIT,
		ItemID:                itemLaptop,
		OwningDepartmentID:    deptIT,
		Quantity:              1,
		Justification:         "internal move",
		RequiredDate:          time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_MissingJustification(t *testing.T) {
	f := newFixture(t, 10, 0)

	_, err := f.uc.Create(context.Background(), CreateInput{
		RequesterID:           userStaff,
		RequesterDepartmentID: deptHR,
		ItemID:                itemLaptop,
		OwningDepartmentID:    deptIT,
		Quantity:              1,
		Justification:         "   ",
		RequiredDate:          time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Approve

func TestApprove_FirstGateLeavesRequestPending(t *testing.T) {
	f := newFixture(t, 10, 0)
	req := f.create(t, 4)

	updated, err := f.uc.Approve(context.Background(), DecisionInput{
		RequestID:    req.ID,
		ApprovalType: entity.BorrowApprovalOwnerHOD,
		ActorID:      userITHOD,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusPending, updated.Status)
	assert.Equal(t, entity.StatusApproved, updated.OwnerHODApproval)
	assert.Equal(t, entity.StatusPending, updated.RequesterHODApproval)
	assert.Empty(t, f.movementRepo.movements, "stock must not move until both gates approve")

	rec := f.ownerStock(t)
	assert.Equal(t, 10, rec.QuantityAvailable)
	assert.Equal(t, 4, rec.QuantityReserved)
}

func TestApprove_SecondGateFiresTransfer(t *testing.T) {
	f := newFixture(t, 10, 0)
	req := f.create(t, 4)

	// Owner HOD first, requester HOD second; order must not matter.
	_, err := f.uc.Approve(context.Background(), DecisionInput{
		RequestID:    req.ID,
		ApprovalType: entity.BorrowApprovalOwnerHOD,
		ActorID:      userITHOD,
	})
	require.NoError(t, err)

	updated, err := f.uc.Approve(context.Background(), DecisionInput{
		RequestID:    req.ID,
		ApprovalType: entity.BorrowApprovalRequesterHOD,
		ActorID:      userHRHOD,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusApproved, updated.Status)

	owner := f.ownerStock(t)
	assert.Equal(t, 6, owner.QuantityAvailable)
	assert.Equal(t, 0, owner.QuantityReserved)

	borrower, err := f.stockRepo.Get(itemLaptop, deptHR)
	require.NoError(t, err)
	require.NotNil(t, borrower, "receiving record must be created lazily")
	assert.Equal(t, 4, borrower.QuantityAvailable)
	assert.Equal(t, 0, borrower.QuantityReserved)

	require.Len(t, f.movementRepo.movements, 2)
	out, in := f.movementRepo.movements[0], f.movementRepo.movements[1]
	assert.Equal(t, entity.MovementTypeOUT, out.MovementType)
	assert.Equal(t, "Borrowed by Human Resources", out.Reason)
	assert.Equal(t, entity.MovementTypeIN, in.MovementType)
	assert.Equal(t, "Borrowed from Information Technology", in.Reason)
	for _, m := range f.movementRepo.movements {
		assert.Equal(t, 4, m.Quantity)
		assert.Equal(t, req.ID, m.ReferenceID)
	}
}

func TestApprove_GateAlreadyDecided(t *testing.T) {
	f := newFixture(t, 10, 0)
	req := f.create(t, 1)

	_, err := f.uc.Approve(context.Background(), DecisionInput{
		RequestID:    req.ID,
		ApprovalType: entity.BorrowApprovalOwnerHOD,
		ActorID:      userITHOD,
	})
	require.NoError(t, err)

	_, err = f.uc.Approve(context.Background(), DecisionInput{
		RequestID:    req.ID,
		ApprovalType: entity.BorrowApprovalOwnerHOD,
		ActorID:      userITHOD,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestApprove_TerminalRequest(t *testing.T) {
	f := newFixture(t, 10, 0)
	req := f.create(t, 2)

	_, err := f.uc.Reject(context.Background(), DecisionInput{
		RequestID:    req.ID,
		ApprovalType: entity.BorrowApprovalOwnerHOD,
		ActorID:      userITHOD,
		Reason:       "not available",
	})
	require.NoError(t, err)

	_, err = f.uc.Approve(context.Background(), DecisionInput{
		RequestID:    req.ID,
		ApprovalType: entity.BorrowApprovalRequesterHOD,
		ActorID:      userHRHOD,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition,
		"no approval may revive a rejected request")
}

func TestApprove_UnknownRequest(t *testing.T) {
	f := newFixture(t, 10, 0)

	_, err := f.uc.Approve(context.Background(), DecisionInput{
		RequestID:    "missing",
		ApprovalType: entity.BorrowApprovalOwnerHOD,
		ActorID:      userITHOD,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Reject

func TestReject_ReleasesReservation(t *testing.T) {
	f := newFixture(t, 10, 0)
	req := f.create(t, 3)

	updated, err := f.uc.Reject(context.Background(), DecisionInput{
		RequestID:    req.ID,
		ApprovalType: entity.BorrowApprovalOwnerHOD,
		ActorID:      userITHOD,
		Reason:       "units earmarked for upgrade project",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusRejected, updated.Status)
	assert.Equal(t, entity.StatusRejected, updated.OwnerHODApproval)
	assert.Equal(t, "units earmarked for upgrade project", updated.RejectionReason)

	rec := f.ownerStock(t)
	assert.Equal(t, 10, rec.QuantityAvailable)
	assert.Equal(t, 0, rec.QuantityReserved, "rejection must release the hold")
	assert.Empty(t, f.movementRepo.movements)

	// create + reject
	require.Len(t, f.auditRepo.logs, 2)
	last := f.auditRepo.logs[1]
	assert.Equal(t, "REJECT_BORROW_REQUEST", last.Action)
	assert.NotEmpty(t, last.OldValues)
	assert.NotEmpty(t, last.NewValues)
}

func TestReject_RequiresReason(t *testing.T) {
	f := newFixture(t, 10, 0)
	req := f.create(t, 1)

	_, err := f.uc.Reject(context.Background(), DecisionInput{
		RequestID:    req.ID,
		ApprovalType: entity.BorrowApprovalOwnerHOD,
		ActorID:      userITHOD,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
