package kernel

import (
	"fmt"

	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrTrackingIDIsNotConstructed indicates a zero-value TrackingID.
// TrackingIDs must be created via NewTrackingID, TrackingIDFromString, or
// TrackingIDFromBytes.
var ErrTrackingIDIsNotConstructed = errs.NewValueIsRequiredError(
	"TrackingID must be created via NewTrackingID, TrackingIDFromString, or TrackingIDFromBytes")

// TrackingID is the customer-facing reference of an order. Unlike the
// numeric store-assigned OrderID it is generated at creation time and safe
// to hand out externally, since it reveals nothing about order volume.
//
// TrackingID is an immutable value object wrapping github.com/google/uuid.
// The zero value is invalid and must be constructed through one of the
// factory functions.
type TrackingID struct {
	id uuid.UUID
}

// NewTrackingID generates a new random tracking reference (UUID v4).
func NewTrackingID() TrackingID {
	return TrackingID{id: uuid.New()}
}

// TrackingIDFromString parses a tracking reference from its string form,
// typically from a URL or an external system.
func TrackingIDFromString(s string) (TrackingID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return TrackingID{}, fmt.Errorf("invalid tracking id format: %w", err)
	}
	return TrackingID{id: id}, nil
}

// TrackingIDFromBytes creates a tracking reference from a 16-byte slice, as
// stored by the database driver.
func TrackingIDFromBytes(b []byte) (TrackingID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return TrackingID{}, fmt.Errorf("invalid tracking id format: %w", err)
	}
	newID := TrackingID{id: id}
	if err = newID.Validate(); err != nil {
		return TrackingID{}, err
	}
	return newID, nil
}

// String returns the canonical UUID string form.
func (t TrackingID) String() string {
	return t.id.String()
}

// Bytes returns the underlying UUID value for persistence.
func (t TrackingID) Bytes() uuid.UUID {
	return t.id
}

// IsEqual compares two tracking references for equality.
func (t TrackingID) IsEqual(other TrackingID) bool {
	return t.id == other.id
}

// Validate checks the TrackingID is not a zero value.
func (t TrackingID) Validate() error {
	if t.id == uuid.Nil {
		return ErrTrackingIDIsNotConstructed
	}
	return nil
}
