package staff

import (
	"fmt"
	"slices"

	"laundry/internal/core/domain/model/job"
	"laundry/internal/pkg/errs"
)

type Role string

const (
	SuperAdmin    Role = "SuperAdmin"
	OutletAdmin   Role = "OutletAdmin"
	WashingWorker Role = "WashingWorker"
	IroningWorker Role = "IroningWorker"
	PackingWorker Role = "PackingWorker"
	Driver        Role = "Driver"
	Customer      Role = "Customer"
)

var workerJobs = map[Role]job.Type{
	WashingWorker: job.Washing,
	IroningWorker: job.Ironing,
	PackingWorker: job.Packing,
	Driver:        job.Delivery,
}

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

func (r Role) String() string { return string(r) }

func (r Role) Validate() error {
	switch r {
	case SuperAdmin, OutletAdmin, WashingWorker, IroningWorker, PackingWorker, Driver, Customer:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", string(r)))
}

// IsEmployee reports whether r belongs to outlet staff.
func (r Role) IsEmployee() bool {
	return r != Customer && r.Validate() == nil
}

// IsShiftExempt reports whether r may act at any time of day.
func (r Role) IsShiftExempt() bool {
	return r == SuperAdmin || r == Customer
}

// CanClaim reports whether r may take a job of type t.
func (r Role) CanClaim(t job.Type) bool {
	if r == SuperAdmin || r == OutletAdmin {
		return true
	}
	own, ok := workerJobs[r]
	return ok && own == t
}

// WorkerRoleFor returns the role that processes jobs of type t.
func WorkerRoleFor(t job.Type) Role {
	for r, jt := range workerJobs {
		if jt == t {
			return r
		}
	}
	return OutletAdmin
}

// RoleSet is the set of roles an operation admits.
type RoleSet []Role

func NewRoleSet(roles ...Role) RoleSet {
	set := make(RoleSet, 0, len(roles))
	for _, r := range roles {
		if !slices.Contains(set, r) {
			set = append(set, r)
		}
	}
	return set
}

func (s RoleSet) Contains(r Role) bool {
	return slices.Contains(s, r)
}

func (s RoleSet) Strings() []string {
	out := make([]string, len(s))
	for i, r := range s {
		out[i] = r.String()
	}
	return out
}
