package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is. Each typed error in this
// package unwraps to exactly one of these.
var (
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrObjectNotFound    = errors.New("object not found")
	ErrAlreadyClaimed    = errors.New("order is already claimed")
	ErrUnauthorized      = errors.New("actor is not authorized for order")
	ErrInvalidTransition = errors.New("status transition is not allowed")
	ErrLedgerWriteFailed = errors.New("history ledger write failed")
	ErrStoreUnavailable  = errors.New("order store is unavailable")
)

// sanitize collapses newlines so multi-line causes do not break log lines.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %s)", msg, sanitize(cause.Error()))
}

// ValueIsRequiredError indicates that a required value is missing or was not
// initialized through its constructor.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError carrying
// the underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("value is required: %s", sanitize(e.ParamName)), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError carrying
// the underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("value is invalid: %s", sanitize(e.ParamName)), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError indicates that an object could not be located by its
// identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the named
// parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError carrying
// the underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	return withCause(fmt.Sprintf("object not found: %s %v", sanitize(e.ParamName), e.ID), e.Cause)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// AlreadyClaimedError indicates that a claim was not granted because the
// order was claimed by someone else, already progressed past the pending
// state, or does not exist. The subcases are deliberately not distinguished:
// by the time the caller observes the result the distinction is stale.
type AlreadyClaimedError struct {
	OrderID int64
}

// NewAlreadyClaimedError creates an AlreadyClaimedError for the given order.
func NewAlreadyClaimedError(orderID int64) *AlreadyClaimedError {
	return &AlreadyClaimedError{OrderID: orderID}
}

func (e *AlreadyClaimedError) Error() string {
	return fmt.Sprintf("order %d is already claimed", e.OrderID)
}

func (e *AlreadyClaimedError) Unwrap() error {
	return ErrAlreadyClaimed
}

// UnauthorizedError indicates that the acting principal does not own the
// order it attempted to advance. The same error covers a missing order so
// that callers cannot probe for existence of orders owned by others.
type UnauthorizedError struct {
	OrderID int64
	ActorID int64
}

// NewUnauthorizedError creates an UnauthorizedError for the actor and order.
func NewUnauthorizedError(orderID, actorID int64) *UnauthorizedError {
	return &UnauthorizedError{OrderID: orderID, ActorID: actorID}
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("actor %d is not authorized for order %d", e.ActorID, e.OrderID)
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// InvalidTransitionError indicates that a requested status transition is not
// reachable from the current status.
type InvalidTransitionError struct {
	From string
	To   string
}

// NewInvalidTransitionError creates an InvalidTransitionError from the
// current to the requested status.
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("status transition from %s to %s is not allowed", sanitize(e.From), sanitize(e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// LedgerWriteFailedError indicates that a history ledger append failed after
// the state transition had already committed. The transition stands; the
// ledger is backfilled by the reconciliation sweep.
type LedgerWriteFailedError struct {
	OrderID int64
	Cause   error
}

// NewLedgerWriteFailedError creates a LedgerWriteFailedError for the order,
// carrying the underlying append failure.
func NewLedgerWriteFailedError(orderID int64, cause error) *LedgerWriteFailedError {
	return &LedgerWriteFailedError{OrderID: orderID, Cause: cause}
}

func (e *LedgerWriteFailedError) Error() string {
	return withCause(fmt.Sprintf("history ledger write failed for order %d", e.OrderID), e.Cause)
}

func (e *LedgerWriteFailedError) Unwrap() error {
	return ErrLedgerWriteFailed
}

// StoreUnavailableError indicates that the durable store could not be
// reached. No partial state change has occurred; the operation is safe to
// retry.
type StoreUnavailableError struct {
	Cause error
}

// NewStoreUnavailableError creates a StoreUnavailableError carrying the
// underlying connectivity failure.
func NewStoreUnavailableError(cause error) *StoreUnavailableError {
	return &StoreUnavailableError{Cause: cause}
}

func (e *StoreUnavailableError) Error() string {
	return withCause("order store is unavailable", e.Cause)
}

func (e *StoreUnavailableError) Unwrap() error {
	return ErrStoreUnavailable
}
