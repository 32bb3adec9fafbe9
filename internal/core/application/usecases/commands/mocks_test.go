package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/job"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// 10:00 UTC sits inside the 08:00 - 16:00 day shift used by the fixtures.
var now = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Add(ctx context.Context, j *job.Job) error {
	return m.Called(ctx, j).Error(0)
}

func (m *MockJobRepository) Update(ctx context.Context, j *job.Job) error {
	return m.Called(ctx, j).Error(0)
}

func (m *MockJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*job.Job, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

func (m *MockJobRepository) ListUnassigned(ctx context.Context, olderThan time.Time) ([]*job.Job, error) {
	args := m.Called(ctx, olderThan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

type MockItemTypeRepository struct{ mock.Mock }

func (m *MockItemTypeRepository) Add(ctx context.Context, t *catalog.ItemType) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockItemTypeRepository) FindByIDs(ctx context.Context, ids []kernel.UUID) ([]*catalog.ItemType, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.ItemType), args.Error(1)
}

type MockEmployeeRepository struct{ mock.Mock }

func (m *MockEmployeeRepository) Add(ctx context.Context, e *staff.Employee) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockEmployeeRepository) Get(ctx context.Context, id kernel.UUID) (*staff.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.Employee), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) JobRepository() ports.JobRepository {
	return m.Called().Get(0).(ports.JobRepository)
}

func (m *MockUoW) ItemTypeRepository() ports.ItemTypeRepository {
	return m.Called().Get(0).(ports.ItemTypeRepository)
}

func (m *MockUoW) EmployeeRepository() ports.EmployeeRepository {
	return m.Called().Get(0).(ports.EmployeeRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type emitted struct {
	outletID   *kernel.UUID
	customerID *kernel.UUID
	roles      staff.RoleSet
	event      string
	payload    any
}

// recordingSink collects notifications instead of sending them.
type recordingSink struct {
	mu     sync.Mutex
	events []emitted
}

func (s *recordingSink) EmitToRoles(_ context.Context, outletID kernel.UUID, roles staff.RoleSet, event string, payload any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, emitted{outletID: &outletID, roles: roles, event: event, payload: payload})
}

func (s *recordingSink) EmitToCustomer(_ context.Context, customerID kernel.UUID, event string, payload any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, emitted{customerID: &customerID, event: event, payload: payload})
}

func (s *recordingSink) names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.events))
	for i, e := range s.events {
		out[i] = e.event
	}
	return out
}

// fixture wires a mocked unit of work whose repository accessors may be called any number of times.
type fixture struct {
	ctx       context.Context
	uow       *MockUoW
	factory   *MockUoWFactory
	orders    *MockOrderRepository
	jobs      *MockJobRepository
	itemTypes *MockItemTypeRepository
	employees *MockEmployeeRepository
	sink      *recordingSink
	clock     fixedClock
	gate      services.AccessGate
	outletID  kernel.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		ctx:       t.Context(),
		uow:       new(MockUoW),
		factory:   new(MockUoWFactory),
		orders:    new(MockOrderRepository),
		jobs:      new(MockJobRepository),
		itemTypes: new(MockItemTypeRepository),
		employees: new(MockEmployeeRepository),
		sink:      &recordingSink{},
		clock:     fixedClock{t: now},
		gate:      services.NewAccessGate(time.UTC),
		outletID:  kernel.NewUUID(),
	}

	f.factory.On("Create").Return(f.uow)
	f.uow.On("OrderRepository").Return(f.orders).Maybe()
	f.uow.On("JobRepository").Return(f.jobs).Maybe()
	f.uow.On("ItemTypeRepository").Return(f.itemTypes).Maybe()
	f.uow.On("EmployeeRepository").Return(f.employees).Maybe()
	f.uow.On("Rollback", mock.Anything).Return(nil).Maybe()

	t.Cleanup(func() {
		f.orders.AssertExpectations(t)
		f.jobs.AssertExpectations(t)
		f.itemTypes.AssertExpectations(t)
		f.employees.AssertExpectations(t)
		f.uow.AssertExpectations(t)
	})
	return f
}

func (f *fixture) expectTx(commit bool) {
	f.uow.On("Begin", f.ctx).Return(nil).Once()
	if commit {
		f.uow.On("Commit", f.ctx).Return(nil).Once()
	}
}

// employee registers a day-shift employee of the fixture outlet and returns its actor.
func (f *fixture) employee(t *testing.T, role staff.Role, shiftStart, shiftEnd string) staff.Actor {
	t.Helper()
	shift, err := staff.ParseShift(shiftStart, shiftEnd)
	require.NoError(t, err)
	e, err := staff.NewEmployee(kernel.NewUUID(), &f.outletID, "Staff "+role.String(), role, &shift)
	require.NoError(t, err)
	f.employees.On("Get", f.ctx, e.ID()).Return(e, nil).Maybe()
	return staff.Actor{ID: e.ID(), Role: role}
}

func (f *fixture) admin(t *testing.T) staff.Actor {
	return f.employee(t, staff.OutletAdmin, "08:00", "16:00")
}

// orderAt builds an order of the fixture outlet that has walked the main line up to stage.
func (f *fixture) orderAt(t *testing.T, stage order.Stage, paid bool) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), f.outletID, kernel.NewUUID(), now.Add(-time.Hour))
	require.NoError(t, err)

	for s := order.ArrivedAtOutlet; s <= stage && s.IsMainLine(); s++ {
		if s == order.OnProgressWashing {
			w, wErr := kernel.NewWeightFromFloat(3.3)
			require.NoError(t, wErr)
			item, iErr := order.NewItem(kernel.NewUUID(), w, 1)
			require.NoError(t, iErr)
			require.NoError(t, o.AssignItems([]order.Item{item}, decimalFee, now.Add(-time.Hour)))
			if paid {
				require.NoError(t, o.MarkPaid(now.Add(-time.Hour)))
			}
			continue
		}
		require.NoError(t, o.Advance(s, now.Add(-time.Hour)))
	}
	return o
}

var decimalFee = decimal.NewFromInt(40000)
