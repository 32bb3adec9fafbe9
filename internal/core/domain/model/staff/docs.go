// Package staff provides the employee side of the domain: roles, shift windows
// and the Employee aggregate.
//
// The package includes:
//   - Role and RoleSet: the closed set of roles and the role sets operations accept
//   - Shift: a wall-clock window that may wrap past midnight
//   - Employee: the aggregate root that manages identity, outlet, role and shift
//   - Actor: the authenticated caller of an operation
//
// Key business rules:
//   - every employee except the super admin belongs to an outlet and has a shift
//   - a shift window is half-open: [start, end)
//   - workers may only claim jobs of their own stage
package staff
