package order_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func ledgerAt(t *testing.T, stages ...order.Stage) *order.Ledger {
	t.Helper()
	l := order.NewLedger(kernel.NewUUID())
	for i, s := range stages {
		require.NoError(t, l.Append(s, t0.Add(time.Duration(i)*time.Minute), ""))
	}
	return l
}

func TestLedger_Current(t *testing.T) {
	t.Run("should return NotFound for an empty ledger", func(t *testing.T) {
		_, err := order.NewLedger(kernel.NewUUID()).Current()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	})

	t.Run("should return the latest event", func(t *testing.T) {
		l := ledgerAt(t, order.Created, order.ArrivedAtOutlet)

		current, err := l.Current()

		require.NoError(t, err)
		assert.Equal(t, order.ArrivedAtOutlet, current.Stage)
		assert.Equal(t, 2, current.Sequence)
	})
}

func TestLedger_Append(t *testing.T) {
	t.Run("first event must be Created", func(t *testing.T) {
		l := order.NewLedger(kernel.NewUUID())

		err := l.Append(order.ArrivedAtOutlet, t0, "")

		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Empty(t, l.Events())
	})

	t.Run("should walk the whole main line", func(t *testing.T) {
		l := ledgerAt(t,
			order.Created, order.ArrivedAtOutlet, order.OnProgressWashing, order.OnProgressIroning,
			order.OnProgressPacking, order.ReadyForDelivery, order.OnDelivery, order.Completed,
		)

		current, err := l.Current()
		require.NoError(t, err)
		assert.Equal(t, order.Completed, current.Stage)
		assert.Len(t, l.Events(), 8)
	})

	t.Run("should reject a skip and leave the ledger unchanged", func(t *testing.T) {
		l := ledgerAt(t, order.Created)

		err := l.Append(order.OnProgressWashing, t0.Add(time.Hour), "")

		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Len(t, l.Events(), 1)
	})

	t.Run("should reject appending after Completed", func(t *testing.T) {
		l := ledgerAt(t,
			order.Created, order.ArrivedAtOutlet, order.OnProgressWashing, order.OnProgressIroning,
			order.OnProgressPacking, order.ReadyForDelivery, order.OnDelivery, order.Completed,
		)

		assert.ErrorIs(t, l.Append(order.Completed, t0.Add(time.Hour), ""), errs.ErrInvalidTransition)
	})

	t.Run("complaint returns only to the branched-from stage", func(t *testing.T) {
		l := ledgerAt(t, order.Created, order.ArrivedAtOutlet, order.OnProgressWashing)
		require.NoError(t, l.Append(order.Complaint, t0.Add(time.Hour), "torn shirt"))

		from, ok := l.BranchedFrom()
		require.True(t, ok)
		assert.Equal(t, order.OnProgressWashing, from)

		assert.ErrorIs(t, l.Append(order.OnProgressIroning, t0.Add(2*time.Hour), ""), errs.ErrInvalidTransition)
		require.NoError(t, l.Append(order.OnProgressWashing, t0.Add(2*time.Hour), "rewashed"))

		_, ok = l.BranchedFrom()
		assert.False(t, ok)
	})

	t.Run("complaint cannot branch off Created", func(t *testing.T) {
		l := ledgerAt(t, order.Created)
		assert.ErrorIs(t, l.Append(order.Complaint, t0, ""), errs.ErrInvalidTransition)
	})

	t.Run("should clamp timestamps that go backwards", func(t *testing.T) {
		l := ledgerAt(t, order.Created)

		require.NoError(t, l.Append(order.ArrivedAtOutlet, t0.Add(-time.Hour), ""))

		current, _ := l.Current()
		assert.Equal(t, t0, current.At)
	})
}

func TestRestoreLedger(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("should track only events appended after restore", func(t *testing.T) {
		l, err := order.RestoreLedger(orderID, []order.ProgressEvent{
			{Sequence: 1, Stage: order.Created, At: t0},
			{Sequence: 2, Stage: order.ArrivedAtOutlet, At: t0.Add(time.Minute)},
		})
		require.NoError(t, err)
		assert.Empty(t, l.Uncommitted())

		require.NoError(t, l.Append(order.OnProgressWashing, t0.Add(time.Hour), ""))

		pending := l.Uncommitted()
		require.Len(t, pending, 1)
		assert.Equal(t, 3, pending[0].Sequence)
	})

	t.Run("should reject a history with gaps", func(t *testing.T) {
		_, err := order.RestoreLedger(orderID, []order.ProgressEvent{
			{Sequence: 1, Stage: order.Created, At: t0},
			{Sequence: 3, Stage: order.ArrivedAtOutlet, At: t0},
		})
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject an impossible history", func(t *testing.T) {
		_, err := order.RestoreLedger(orderID, []order.ProgressEvent{
			{Sequence: 1, Stage: order.Created, At: t0},
			{Sequence: 2, Stage: order.Completed, At: t0},
		})
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}
