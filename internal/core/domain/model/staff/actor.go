package staff

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
)

// Actor is the authenticated caller of an operation. Customers and employees
// share the same identifier space as their records.
type Actor struct {
	ID   kernel.UUID
	Role Role
}

func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}
	return Actor{ID: id, Role: role}, nil
}

func (a Actor) Validate() error {
	return errors.Join(a.ID.Validate(), a.Role.Validate())
}
