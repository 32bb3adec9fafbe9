package guard_test

import (
	"errors"
	"testing"

	"laundry/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed guard passes with any error", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero value returns the supplied error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("command not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero value falls back to default error", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Equal(t, guard.ErrDefaultConstructorGuard, g.Validate(nil))
	})
}

func TestConstructorGuard_EmbeddedInCommand(t *testing.T) {
	errTicketNotConstructed := errors.New("ticket must be created via newTicket")

	type ticket struct {
		number int
		guard  guard.ConstructorGuard
	}

	newTicket := func(number int) (ticket, error) {
		if number <= 0 {
			return ticket{}, errors.New("number must be positive")
		}
		return ticket{number: number, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed", func(t *testing.T) {
		tk, err := newTicket(12)
		require.NoError(t, err)
		require.NoError(t, tk.guard.Validate(errTicketNotConstructed))
	})

	t.Run("literal", func(t *testing.T) {
		tk := ticket{number: 12}
		require.ErrorIs(t, tk.guard.Validate(errTicketNotConstructed), errTicketNotConstructed)
	})
}
