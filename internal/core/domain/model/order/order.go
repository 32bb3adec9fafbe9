package order

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	ErrItemsAreRequired      = errs.NewValueIsRequiredError("items")
)

// Order is the aggregate root of a laundry order. Its stage is never stored on the
// order itself: the progress ledger is the only source of truth for it.
//
// Order follows these invariants:
//   - the first progress event is Created;
//   - items and the laundry fee are set exactly once, while the order is at ArrivedAtOutlet,
//     in the same step that records OnProgressWashing;
//   - the order cannot leave for delivery before it is paid;
//   - a complaint can only be resolved back to the stage it branched off.
type Order struct {
	id         kernel.UUID
	outletID   kernel.UUID
	customerID kernel.UUID

	ledger     *Ledger
	items      []Item
	laundryFee *decimal.Decimal
	paidAt     *time.Time

	// version is the optimistic-lock version the aggregate was loaded with.
	version   int
	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an order with a single Created progress event.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), outletID, customerID, time.Now())
//	if err != nil {
//	    return err
//	}
//	stage, _ := o.CurrentStage() // order.Created
func NewOrder(id, outletID, customerID kernel.UUID, at time.Time) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		outletID.Validate(),
		customerID.Validate(),
	); err != nil {
		return nil, err
	}

	ledger := NewLedger(id)
	if err := ledger.Append(Created, at, ""); err != nil {
		return nil, err
	}

	return &Order{
		id:         id,
		outletID:   outletID,
		customerID: customerID,
		ledger:     ledger,
		version:    1,
		createdAt:  at,
		updatedAt:  at,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Snapshot carries the persisted state of an order into RestoreOrder.
type Snapshot struct {
	ID         kernel.UUID
	OutletID   kernel.UUID
	CustomerID kernel.UUID
	Events     []ProgressEvent
	Items      []Item
	LaundryFee *decimal.Decimal
	PaidAt     *time.Time
	Version    int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// RestoreOrder rebuilds an Order from storage. The progress history is replayed
// through the ledger so a corrupted history is rejected instead of loaded.
func RestoreOrder(s Snapshot) (*Order, error) {
	if err := errors.Join(
		s.ID.Validate(),
		s.OutletID.Validate(),
		s.CustomerID.Validate(),
	); err != nil {
		return nil, err
	}
	for _, item := range s.Items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	if s.Version < 1 {
		return nil, errs.NewValueIsOutOfRangeError("version", s.Version, 1, "unbounded")
	}

	ledger, err := RestoreLedger(s.ID, s.Events)
	if err != nil {
		return nil, err
	}

	items := make([]Item, len(s.Items))
	copy(items, s.Items)

	return &Order{
		id:         s.ID,
		outletID:   s.OutletID,
		customerID: s.CustomerID,
		ledger:     ledger,
		items:      items,
		laundryFee: s.LaundryFee,
		paidAt:     s.PaidAt,
		version:    s.Version,
		createdAt:  s.CreatedAt,
		updatedAt:  s.UpdatedAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID { return o.id }

func (o *Order) OutletID() kernel.UUID { return o.outletID }

func (o *Order) CustomerID() kernel.UUID { return o.customerID }

func (o *Order) Version() int { return o.version }

func (o *Order) CreatedAt() time.Time { return o.createdAt }

func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// Items returns a copy of the weighed items.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// LaundryFee returns the fee and whether it has been computed yet.
func (o *Order) LaundryFee() (decimal.Decimal, bool) {
	if o.laundryFee == nil {
		return decimal.Zero, false
	}
	return *o.laundryFee, true
}

func (o *Order) IsPaid() bool { return o.paidAt != nil }

func (o *Order) PaidAt() *time.Time { return o.paidAt }

// CurrentStage returns the stage of the latest progress event.
func (o *Order) CurrentStage() (Stage, error) {
	current, err := o.ledger.Current()
	if err != nil {
		return Unknown, err
	}
	return current.Stage, nil
}

// Progress returns the full progress history.
func (o *Order) Progress() []ProgressEvent {
	return o.ledger.Events()
}

// NewProgress returns the progress events recorded since the order was loaded
// or last persisted.
func (o *Order) NewProgress() []ProgressEvent {
	return o.ledger.Uncommitted()
}

// Persisted records a successful write of the order at version. Progress
// recorded so far no longer counts as new.
func (o *Order) Persisted(version int) {
	o.version = version
	o.ledger.commit()
}

// OpenComplaint returns the description of a complaint that has not been resolved yet.
func (o *Order) OpenComplaint() (string, bool) {
	current, err := o.ledger.Current()
	if err != nil || current.Stage != Complaint {
		return "", false
	}
	return current.Note, true
}

// AssignItems records the weighed items and the laundry fee, then moves the order
// into OnProgressWashing. The order must be at ArrivedAtOutlet.
func (o *Order) AssignItems(items []Item, fee decimal.Decimal, at time.Time) error {
	stage, err := o.CurrentStage()
	if err != nil {
		return err
	}
	if stage != ArrivedAtOutlet {
		return errs.NewInvalidStageError(stage.String(), "Order not arrived at outlet yet")
	}
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err = item.Validate(); err != nil {
			return err
		}
	}
	if fee.IsNegative() {
		return errs.NewValueIsOutOfRangeError("laundry fee", fee.String(), 0, "unbounded")
	}

	if err = o.ledger.Append(OnProgressWashing, at, ""); err != nil {
		return err
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	o.laundryFee = &fee
	o.touch(at)
	return nil
}

// Advance appends the next main-line stage. Washing is entered through AssignItems
// and complaints have their own methods, so neither is accepted here.
func (o *Order) Advance(next Stage, at time.Time) error {
	stage, err := o.CurrentStage()
	if err != nil {
		return err
	}
	if err = next.Validate(); err != nil {
		return err
	}
	if stage == Complaint {
		return errs.NewInvalidStageError(stage.String(), "Order has an open complaint")
	}
	if !next.IsMainLine() {
		return errs.NewInvalidTransitionError(stage.String(), next.String())
	}
	if next == OnProgressWashing {
		return errs.NewInvalidStageError(stage.String(), "Order items must be weighed first")
	}
	if next == OnDelivery && !o.IsPaid() {
		return errs.NewInvalidStageError(stage.String(), "Order has not been paid yet")
	}

	if err = o.ledger.Append(next, at, ""); err != nil {
		return err
	}
	o.touch(at)
	return nil
}

// MarkPaid records the payment of the laundry fee.
func (o *Order) MarkPaid(at time.Time) error {
	stage, err := o.CurrentStage()
	if err != nil {
		return err
	}
	if o.laundryFee == nil {
		return errs.NewInvalidStageError(stage.String(), "Order has not been weighed yet")
	}
	if o.paidAt != nil {
		return errs.NewInvalidStageError(stage.String(), "Order has already been paid")
	}

	paidAt := at
	o.paidAt = &paidAt
	o.touch(at)
	return nil
}

// RaiseComplaint branches the order off into Complaint.
func (o *Order) RaiseComplaint(description string, at time.Time) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	if err := o.ledger.Append(Complaint, at, description); err != nil {
		return err
	}
	o.touch(at)
	return nil
}

// ResolveComplaint returns the order to the stage the complaint branched off and
// reports that stage.
func (o *Order) ResolveComplaint(resolution string, at time.Time) (Stage, error) {
	stage, err := o.CurrentStage()
	if err != nil {
		return Unknown, err
	}
	from, ok := o.ledger.BranchedFrom()
	if !ok {
		return Unknown, errs.NewInvalidStageError(stage.String(), "Order has no open complaint")
	}
	if err = o.ledger.Append(from, at, resolution); err != nil {
		return Unknown, err
	}
	o.touch(at)
	return from, nil
}

func (o *Order) touch(at time.Time) {
	if at.After(o.updatedAt) {
		o.updatedAt = at
	}
}
