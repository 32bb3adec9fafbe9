package errs

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidStage       = errors.New("stage is invalid")
	ErrInvalidTransition  = errors.New("transition is invalid")
	ErrUnknownItemType    = errors.New("item type is unknown")
	ErrInvalidWeight      = errors.New("weight is invalid")
	ErrDuplicateJob       = errors.New("job is duplicate")
	ErrForbidden          = errors.New("action is forbidden")
	ErrOutsideShiftWindow = errors.New("outside shift window")
)

// InvalidStageError is returned when an operation requires the order to be in a
// different stage. Reason is the user-facing message.
type InvalidStageError struct {
	Stage  string
	Reason string
}

func NewInvalidStageError(stage, reason string) *InvalidStageError {
	return &InvalidStageError{Stage: stage, Reason: reason}
}

func (e *InvalidStageError) Error() string {
	return fmt.Sprintf("%s: %s (stage is %s)", ErrInvalidStage, e.Reason, e.Stage)
}

func (e *InvalidStageError) Unwrap() error {
	return ErrInvalidStage
}

// InvalidTransitionError is returned when a progress stage does not follow the current one.
type InvalidTransitionError struct {
	From string
	To   string
}

func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// UnknownItemTypeError is returned when some of the requested laundry item types do not exist.
type UnknownItemTypeError struct {
	Requested int
	Found     int
}

func NewUnknownItemTypeError(requested, found int) *UnknownItemTypeError {
	return &UnknownItemTypeError{Requested: requested, Found: found}
}

func (e *UnknownItemTypeError) Error() string {
	return fmt.Sprintf("%s: found %d of %d requested item types", ErrUnknownItemType, e.Found, e.Requested)
}

func (e *UnknownItemTypeError) Unwrap() error {
	return ErrUnknownItemType
}

// InvalidWeightError is returned for zero or negative item weights.
type InvalidWeightError struct {
	Weight string
}

func NewInvalidWeightError(weight string) *InvalidWeightError {
	return &InvalidWeightError{Weight: weight}
}

func (e *InvalidWeightError) Error() string {
	return fmt.Sprintf("%s: %s is not greater than 0", ErrInvalidWeight, e.Weight)
}

func (e *InvalidWeightError) Unwrap() error {
	return ErrInvalidWeight
}

// DuplicateJobError is returned when an ongoing job of the same type already exists for an order.
type DuplicateJobError struct {
	OrderID string
	JobType string
	Cause   error
}

func NewDuplicateJobError(orderID, jobType string) *DuplicateJobError {
	return &DuplicateJobError{OrderID: orderID, JobType: jobType}
}

func NewDuplicateJobErrorWithCause(orderID, jobType string, cause error) *DuplicateJobError {
	return &DuplicateJobError{OrderID: orderID, JobType: jobType, Cause: cause}
}

func (e *DuplicateJobError) Error() string {
	msg := fmt.Sprintf("%s: %s job is already ongoing for order %s", ErrDuplicateJob, e.JobType, e.OrderID)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *DuplicateJobError) Unwrap() error {
	return ErrDuplicateJob
}

// ForbiddenError is returned when the actor's role is not allowed to perform an action.
type ForbiddenError struct {
	Role   string
	Reason string
}

func NewForbiddenError(role, reason string) *ForbiddenError {
	return &ForbiddenError{Role: role, Reason: reason}
}

func (e *ForbiddenError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s (role is %s)", ErrForbidden, e.Reason, e.Role)
	}
	return fmt.Sprintf("%s: role %s is not allowed", ErrForbidden, e.Role)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// OutsideShiftWindowError is returned when an employee acts outside of their shift.
type OutsideShiftWindowError struct {
	Start string
	End   string
}

func NewOutsideShiftWindowError(start, end string) *OutsideShiftWindowError {
	return &OutsideShiftWindowError{Start: start, End: end}
}

func (e *OutsideShiftWindowError) Error() string {
	return fmt.Sprintf("%s: your shift is %s - %s", ErrOutsideShiftWindow, e.Start, e.End)
}

func (e *OutsideShiftWindowError) Unwrap() error {
	return ErrOutsideShiftWindow
}
