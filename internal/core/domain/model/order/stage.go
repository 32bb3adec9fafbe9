package order

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Stage is a named milestone in the order lifecycle.
//
// Main line (strictly forward, one step at a time):
//
//	Created ─> ArrivedAtOutlet ─> OnProgressWashing ─> OnProgressIroning ─> OnProgressPacking
//	        ─> ReadyForDelivery ─> OnDelivery ─> Completed
//
// Side branch:
//
//	any stage from ArrivedAtOutlet on ─> Complaint ─> (back to the stage it branched from)
type Stage int

const (
	// Unknown catches uninitialized Stage values.
	Unknown Stage = iota
	Created
	ArrivedAtOutlet
	OnProgressWashing
	OnProgressIroning
	OnProgressPacking
	ReadyForDelivery
	OnDelivery
	Completed
	Complaint
)

// mainLine is the static ordering table. Index + 1 is the rank of a stage.
var mainLine = []Stage{
	Created,
	ArrivedAtOutlet,
	OnProgressWashing,
	OnProgressIroning,
	OnProgressPacking,
	ReadyForDelivery,
	OnDelivery,
	Completed,
}

var stageNames = map[Stage]string{
	Created:           "Created",
	ArrivedAtOutlet:   "ArrivedAtOutlet",
	OnProgressWashing: "OnProgressWashing",
	OnProgressIroning: "OnProgressIroning",
	OnProgressPacking: "OnProgressPacking",
	ReadyForDelivery:  "ReadyForDelivery",
	OnDelivery:        "OnDelivery",
	Completed:         "Completed",
	Complaint:         "Complaint",
}

// ParseStage maps a stage name back to its value. Matching is exact.
func ParseStage(name string) (Stage, error) {
	for s, n := range stageNames {
		if n == name {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("stage", fmt.Errorf("%q is not a known stage", name))
}

// Stages lists every valid stage, main line first.
func Stages() []Stage {
	all := make([]Stage, 0, len(mainLine)+1)
	all = append(all, mainLine...)
	return append(all, Complaint)
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "Unknown"
}

func (s Stage) Validate() error {
	if _, ok := stageNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("stage is invalid", fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

// rank returns the position of s in the main line, or 0 for Complaint and invalid values.
func (s Stage) rank() int {
	for i, m := range mainLine {
		if m == s {
			return i + 1
		}
	}
	return 0
}

// IsMainLine reports whether s belongs to the forward ordering table.
func (s Stage) IsMainLine() bool {
	return s.rank() > 0
}

// Next returns the stage that immediately follows s in the ordering table.
func (s Stage) Next() (Stage, bool) {
	r := s.rank()
	if r == 0 || r == len(mainLine) {
		return Unknown, false
	}
	return mainLine[r], true
}

// AtLeast reports whether s is at or after other in the ordering table.
// Complaint is never at least anything.
func (s Stage) AtLeast(other Stage) bool {
	return s.rank() > 0 && s.rank() >= other.rank()
}

// ValidateAdvance checks that next immediately follows s. Skips and repeats fail
// with an InvalidTransitionError.
func (s Stage) ValidateAdvance(next Stage) error {
	if err := next.Validate(); err != nil {
		return err
	}
	expected, ok := s.Next()
	if !ok || expected != next {
		return errs.NewInvalidTransitionError(s.String(), next.String())
	}
	return nil
}

// ValidateComplaint checks that a complaint may branch off s.
func (s Stage) ValidateComplaint() error {
	if !s.AtLeast(ArrivedAtOutlet) {
		return errs.NewInvalidTransitionError(s.String(), Complaint.String())
	}
	return nil
}
