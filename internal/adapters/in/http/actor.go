package http

import (
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	HeaderActorID   = "X-Actor-ID"
	HeaderActorRole = "X-Actor-Role"
)

// actorFrom reads the calling actor from request headers. Authentication
// happens upstream; this service trusts the gateway that sets them.
func actorFrom(c echo.Context) (staff.Actor, error) {
	rawID := c.Request().Header.Get(HeaderActorID)
	if rawID == "" {
		return staff.Actor{}, errs.NewValueIsRequiredError(HeaderActorID)
	}
	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return staff.Actor{}, err
	}
	role, err := staff.ParseRole(c.Request().Header.Get(HeaderActorRole))
	if err != nil {
		return staff.Actor{}, err
	}
	return staff.NewActor(id, role)
}
