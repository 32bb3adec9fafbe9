package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/job"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimJobCommandHandler_Handle(t *testing.T) {
	newWashingJob := func(t *testing.T, outletID kernel.UUID) *job.Job {
		j, err := job.NewJob(kernel.NewUUID(), kernel.NewUUID(), outletID, job.Washing, now)
		require.NoError(t, err)
		return j
	}

	t.Run("washer claims a washing job", func(t *testing.T) {
		f := newFixture(t)
		actor := f.employee(t, staff.WashingWorker, "08:00", "16:00")
		j := newWashingJob(t, f.outletID)
		cmd, err := commands.NewClaimJobCommand(j.ID(), actor)
		require.NoError(t, err)

		f.expectTx(true)
		f.jobs.On("Get", f.ctx, j.ID()).Return(j, nil).Once()
		f.jobs.On("Update", f.ctx, j).Return(nil).Once()

		handler := commands.NewClaimJobCommandHandler(f.factory, f.gate, f.sink, f.clock)
		result, err := handler.Handle(f.ctx, cmd)

		require.NoError(t, err)
		assert.True(t, result.WorkerID().IsEqual(actor.ID))
		assert.Equal(t, []string{ports.EventJobClaimed}, f.sink.names())
	})

	t.Run("ironer cannot claim a washing job", func(t *testing.T) {
		f := newFixture(t)
		actor := f.employee(t, staff.IroningWorker, "08:00", "16:00")
		j := newWashingJob(t, f.outletID)
		cmd, err := commands.NewClaimJobCommand(j.ID(), actor)
		require.NoError(t, err)

		f.expectTx(false)
		f.jobs.On("Get", f.ctx, j.ID()).Return(j, nil).Once()

		handler := commands.NewClaimJobCommandHandler(f.factory, f.gate, f.sink, f.clock)
		_, err = handler.Handle(f.ctx, cmd)

		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("taken job cannot be claimed again", func(t *testing.T) {
		f := newFixture(t)
		actor := f.employee(t, staff.WashingWorker, "08:00", "16:00")
		j := newWashingJob(t, f.outletID)
		require.NoError(t, j.Claim(kernel.NewUUID()))
		cmd, err := commands.NewClaimJobCommand(j.ID(), actor)
		require.NoError(t, err)

		f.expectTx(false)
		f.jobs.On("Get", f.ctx, j.ID()).Return(j, nil).Once()

		handler := commands.NewClaimJobCommandHandler(f.factory, f.gate, f.sink, f.clock)
		_, err = handler.Handle(f.ctx, cmd)

		assert.ErrorIs(t, err, errs.ErrInvalidStage)
	})

	t.Run("job of another outlet is forbidden", func(t *testing.T) {
		f := newFixture(t)
		actor := f.employee(t, staff.WashingWorker, "08:00", "16:00")
		j := newWashingJob(t, kernel.NewUUID())
		cmd, err := commands.NewClaimJobCommand(j.ID(), actor)
		require.NoError(t, err)

		f.expectTx(false)
		f.jobs.On("Get", f.ctx, j.ID()).Return(j, nil).Once()

		handler := commands.NewClaimJobCommandHandler(f.factory, f.gate, f.sink, f.clock)
		_, err = handler.Handle(f.ctx, cmd)

		assert.ErrorIs(t, err, errs.ErrForbidden)
	})
}
