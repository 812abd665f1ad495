package kernel

import (
	"fmt"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrWindowIsNotConstructed is returned when a Window was not created via
// NewWindow.
var ErrWindowIsNotConstructed = errs.NewValueIsRequiredError(
	"window must be created via NewWindow")

// Window is the time span in which an order should be picked up.
// It is an immutable value object; From is strictly before To.
type Window struct {
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewWindow creates a pickup window. Both bounds are required and from must
// be strictly before to.
func NewWindow(from, to time.Time) (Window, error) {
	if from.IsZero() || to.IsZero() {
		return Window{}, errs.NewValueIsRequiredError("pickup window bounds")
	}
	if !from.Before(to) {
		return Window{}, errs.NewValueIsInvalidErrorWithCause("pickup window",
			fmt.Errorf("window start %s is not before end %s", from.Format(time.RFC3339), to.Format(time.RFC3339)))
	}

	return Window{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Window was created via NewWindow.
func (w Window) Validate() error {
	return w.guard.Validate(ErrWindowIsNotConstructed)
}

// From returns the start of the pickup window.
func (w Window) From() time.Time {
	return w.from
}

// To returns the end of the pickup window.
func (w Window) To() time.Time {
	return w.to
}

// Contains reports whether t falls inside the window, bounds inclusive.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.from) && !t.After(w.to)
}
