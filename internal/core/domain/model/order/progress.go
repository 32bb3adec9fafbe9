package order

import (
	"fmt"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// ProgressEvent is one entry of the append-only progress ledger.
// Sequence starts at 1 and increases by one per event of the same order.
type ProgressEvent struct {
	Sequence int
	Stage    Stage
	At       time.Time
	Note     string
}

// Ledger is the append-only progress log of one order and the source of truth
// for its current stage. Events that were appended after the ledger was
// restored are reported by Uncommitted so repositories only insert new rows.
type Ledger struct {
	orderID   kernel.UUID
	events    []ProgressEvent
	committed int
}

// NewLedger returns an empty ledger for orderID.
func NewLedger(orderID kernel.UUID) *Ledger {
	return &Ledger{orderID: orderID}
}

// RestoreLedger rebuilds a ledger from persisted events. The events must be in
// sequence order and form a valid history.
func RestoreLedger(orderID kernel.UUID, events []ProgressEvent) (*Ledger, error) {
	replay := NewLedger(orderID)
	for i, e := range events {
		if e.Sequence != i+1 {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"progress sequence",
				fmt.Errorf("event %d has sequence %d", i+1, e.Sequence),
			)
		}
		if err := replay.Append(e.Stage, e.At, e.Note); err != nil {
			return nil, err
		}
	}
	replay.committed = len(replay.events)
	return replay, nil
}

// Append records stage at the given time. It fails with InvalidTransitionError
// unless stage logically follows the current one:
//   - the first event must be Created;
//   - a main-line stage must be the immediate successor of the current stage;
//   - Complaint may branch off any stage from ArrivedAtOutlet on;
//   - after Complaint only the branched-from stage may be appended.
//
// Timestamps never go backwards; an earlier at is clamped to the latest event.
func (l *Ledger) Append(stage Stage, at time.Time, note string) error {
	if err := stage.Validate(); err != nil {
		return err
	}

	if len(l.events) == 0 {
		if stage != Created {
			return errs.NewInvalidTransitionError("None", stage.String())
		}
		l.push(stage, at, note)
		return nil
	}

	current := l.events[len(l.events)-1]
	switch {
	case current.Stage == Complaint:
		from, _ := l.BranchedFrom()
		if stage != from {
			return errs.NewInvalidTransitionError(current.Stage.String(), stage.String())
		}
	case stage == Complaint:
		if err := current.Stage.ValidateComplaint(); err != nil {
			return err
		}
	default:
		if err := current.Stage.ValidateAdvance(stage); err != nil {
			return err
		}
	}

	if at.Before(current.At) {
		at = current.At
	}
	l.push(stage, at, note)
	return nil
}

func (l *Ledger) push(stage Stage, at time.Time, note string) {
	l.events = append(l.events, ProgressEvent{
		Sequence: len(l.events) + 1,
		Stage:    stage,
		At:       at,
		Note:     note,
	})
}

// Current returns the latest event, or an ObjectNotFoundError for an empty ledger.
func (l *Ledger) Current() (ProgressEvent, error) {
	if len(l.events) == 0 {
		return ProgressEvent{}, errs.NewObjectNotFoundError("progress", l.orderID.String())
	}
	return l.events[len(l.events)-1], nil
}

// BranchedFrom returns the stage a pending complaint branched off.
func (l *Ledger) BranchedFrom() (Stage, bool) {
	n := len(l.events)
	if n < 2 || l.events[n-1].Stage != Complaint {
		return Unknown, false
	}
	return l.events[n-2].Stage, true
}

// Events returns a copy of the full history.
func (l *Ledger) Events() []ProgressEvent {
	out := make([]ProgressEvent, len(l.events))
	copy(out, l.events)
	return out
}

// Uncommitted returns the events appended since the ledger was restored or last committed.
func (l *Ledger) Uncommitted() []ProgressEvent {
	out := make([]ProgressEvent, len(l.events)-l.committed)
	copy(out, l.events[l.committed:])
	return out
}

func (l *Ledger) commit() {
	l.committed = len(l.events)
}
