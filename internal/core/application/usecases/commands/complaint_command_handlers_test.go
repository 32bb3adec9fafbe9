package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplaintCommandHandler(t *testing.T) {
	t.Run("customer raises and admin resolves back to the branched stage", func(t *testing.T) {
		f := newFixture(t)
		o := f.orderAt(t, order.OnProgressPacking, false)
		customer := staff.Actor{ID: o.CustomerID(), Role: staff.Customer}
		handler := commands.NewComplaintCommandHandler(f.factory, f.gate, f.sink, f.clock)

		raise, err := commands.NewRaiseComplaintCommand(o.ID(), "  shirt is torn ", customer)
		require.NoError(t, err)
		assert.Equal(t, "shirt is torn", raise.Description())

		f.uow.On("Begin", f.ctx).Return(nil).Twice()
		f.uow.On("Commit", f.ctx).Return(nil).Twice()
		f.orders.On("Get", f.ctx, o.ID()).Return(o, nil).Twice()
		f.orders.On("Update", f.ctx, o).Return(nil).Twice()

		_, err = handler.HandleRaise(f.ctx, raise)
		require.NoError(t, err)
		desc, open := o.OpenComplaint()
		require.True(t, open)
		assert.Equal(t, "shirt is torn", desc)

		resolve, err := commands.NewResolveComplaintCommand(o.ID(), "replaced", f.admin(t))
		require.NoError(t, err)

		_, err = handler.HandleResolve(f.ctx, resolve)
		require.NoError(t, err)

		stage, _ := o.CurrentStage()
		assert.Equal(t, order.OnProgressPacking, stage)
		assert.Equal(t, []string{
			ports.EventComplaintRaised,
			ports.EventComplaintResolved,
			ports.EventComplaintResolved,
		}, f.sink.names())
	})

	t.Run("customers cannot resolve complaints", func(t *testing.T) {
		f := newFixture(t)
		customer := staff.Actor{ID: kernel.NewUUID(), Role: staff.Customer}
		cmd, err := commands.NewResolveComplaintCommand(kernel.NewUUID(), "done", customer)
		require.NoError(t, err)
		f.expectTx(false)

		handler := commands.NewComplaintCommandHandler(f.factory, f.gate, f.sink, f.clock)
		_, err = handler.HandleResolve(f.ctx, cmd)

		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("complaints need a description", func(t *testing.T) {
		_, err := commands.NewRaiseComplaintCommand(kernel.NewUUID(), " ", staff.Actor{ID: kernel.NewUUID(), Role: staff.Customer})
		assert.ErrorIs(t, err, commands.ErrDescriptionIsRequired)
	})

	t.Run("a complaint cannot be raised before arrival", func(t *testing.T) {
		f := newFixture(t)
		o := f.orderAt(t, order.Created, false)
		cmd, err := commands.NewRaiseComplaintCommand(o.ID(), "late pickup", staff.Actor{ID: o.CustomerID(), Role: staff.Customer})
		require.NoError(t, err)

		f.expectTx(false)
		f.orders.On("Get", f.ctx, o.ID()).Return(o, nil).Once()

		handler := commands.NewComplaintCommandHandler(f.factory, f.gate, f.sink, f.clock)
		_, err = handler.HandleRaise(f.ctx, cmd)

		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}
