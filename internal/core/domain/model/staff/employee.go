package staff

import (
	"errors"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	ErrNameIsRequired           = errs.NewValueIsRequiredError("name")
	ErrShiftIsRequired          = errs.NewValueIsRequiredError("shift")
	ErrOutletIsRequired         = errs.NewValueIsRequiredError("outlet")
	ErrEmployeeIsNotConstructed = errors.New("Employee must be created via NewEmployee constructor")
)

// Employee is a member of outlet staff. Super admins are not bound to an outlet
// and have no shift; every other employee has both.
type Employee struct {
	id       kernel.UUID
	outletID *kernel.UUID
	name     string
	role     Role
	shift    *Shift
	guard    guard.ConstructorGuard
}

// NewEmployee validates and creates an Employee. outletID and shift may be nil
// only for SuperAdmin.
//
// Example:
//
//	shift, _ := staff.ParseShift("22:00", "06:00")
//	e, err := staff.NewEmployee(kernel.NewUUID(), &outletID, "Ani", staff.WashingWorker, &shift)
func NewEmployee(id kernel.UUID, outletID *kernel.UUID, name string, role Role, shift *Shift) (*Employee, error) {
	e := &Employee{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		e.setID(id),
		e.setName(name),
		e.setRole(role),
	); err != nil {
		return nil, err
	}
	if err := errors.Join(
		e.setOutlet(outletID),
		e.setShift(shift),
	); err != nil {
		return nil, err
	}

	return e, nil
}

func (e *Employee) Validate() error {
	if e == nil {
		return ErrEmployeeIsNotConstructed
	}
	return e.guard.Validate(ErrEmployeeIsNotConstructed)
}

func (e *Employee) ID() kernel.UUID { return e.id }

// OutletID is nil for super admins.
func (e *Employee) OutletID() *kernel.UUID { return e.outletID }

func (e *Employee) Name() string { return e.name }

func (e *Employee) Role() Role { return e.role }

// Shift is nil for super admins.
func (e *Employee) Shift() *Shift { return e.shift }

// WorksAt reports whether the employee belongs to outletID.
func (e *Employee) WorksAt(outletID kernel.UUID) bool {
	return e.outletID != nil && e.outletID.IsEqual(outletID)
}

func (e *Employee) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Employee) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	e.name = name
	return nil
}

func (e *Employee) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if !role.IsEmployee() {
		return errs.NewValueIsInvalidError("role " + role.String() + " is not a staff role")
	}
	e.role = role
	return nil
}

func (e *Employee) setOutlet(outletID *kernel.UUID) error {
	if outletID == nil {
		if e.role == SuperAdmin {
			return nil
		}
		return ErrOutletIsRequired
	}
	if err := outletID.Validate(); err != nil {
		return err
	}
	id := *outletID
	e.outletID = &id
	return nil
}

func (e *Employee) setShift(shift *Shift) error {
	if shift == nil {
		if e.role == SuperAdmin {
			return nil
		}
		return ErrShiftIsRequired
	}
	s := *shift
	e.shift = &s
	return nil
}
