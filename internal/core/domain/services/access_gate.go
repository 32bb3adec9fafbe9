package services

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/pkg/errs"
)

// AccessGate authorizes an actor for an operation: first by role, then, for
// employees other than the super admin, by their shift window.
type AccessGate struct {
	location *time.Location
}

// NewAccessGate returns a gate that reads shift windows in location.
// A nil location means UTC.
func NewAccessGate(location *time.Location) AccessGate {
	if location == nil {
		location = time.UTC
	}
	return AccessGate{location: location}
}

// Authorize fails with ForbiddenError unless actor.Role is in allowed. Shift-bound
// actors must also pass their employee record and be inside its shift window at
// now, otherwise OutsideShiftWindowError is returned.
func (g AccessGate) Authorize(actor staff.Actor, employee *staff.Employee, allowed staff.RoleSet, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !allowed.Contains(actor.Role) {
		return errs.NewForbiddenError(actor.Role.String(), "")
	}
	if actor.Role.IsShiftExempt() {
		return nil
	}

	if employee == nil {
		return errs.NewObjectNotFoundError("employee", actor.ID.String())
	}
	if !employee.ID().IsEqual(actor.ID) || employee.Role() != actor.Role {
		return errs.NewForbiddenError(actor.Role.String(), "employee record does not match the caller")
	}

	shift := employee.Shift()
	if shift == nil || !shift.Contains(now.In(g.location)) {
		start, end := "--:--", "--:--"
		if shift != nil {
			start, end = shift.Start().String(), shift.End().String()
		}
		return errs.NewOutsideShiftWindowError(start, end)
	}
	return nil
}

// AuthorizeOutlet checks that an outlet-bound employee works at outletID.
// Super admins and customers pass; customers are checked against order ownership instead.
func (g AccessGate) AuthorizeOutlet(actor staff.Actor, employee *staff.Employee, outletID kernel.UUID) error {
	if actor.Role.IsShiftExempt() {
		return nil
	}
	if employee == nil || !employee.WorksAt(outletID) {
		return errs.NewForbiddenError(actor.Role.String(), "employee does not work at this outlet")
	}
	return nil
}
