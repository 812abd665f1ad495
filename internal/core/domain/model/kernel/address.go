package kernel

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address was not created via
// NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress")

// Address is a normalized pickup or dropoff location. Geocoding and
// autocomplete happen upstream in the order creation collaborator; this core
// only requires both components to be present.
//
// Example:
//
//	pickup, err := kernel.NewAddress("12 Harbor Rd", "Rotterdam")
//	if err != nil {
//	    // handle validation error
//	}
type Address struct { //nolint:recvcheck //using for validation
	street string
	city   string

	guard guard.ConstructorGuard
}

// NewAddress creates an Address from a street line and a city.
// Both components are required.
func NewAddress(street, city string) (Address, error) {
	addr := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(addr.setStreet(street), addr.setCity(city)); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// Validate ensures the Address was created via NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city of the address.
func (a Address) City() string {
	return a.city
}

// String returns a single-line rendering of the address.
func (a Address) String() string {
	return fmt.Sprintf("%s, %s", a.street, a.city)
}

// IsEqual compares two addresses by value.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street && a.city == other.city
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

// ErrContactIsNotConstructed is returned when a Contact was not created via
// NewContact.
var ErrContactIsNotConstructed = errs.NewValueIsRequiredError(
	"contact must be created via NewContact")

// Contact is the person to reach at the dropoff side of a delivery.
type Contact struct { //nolint:recvcheck //using for validation
	name  string
	phone string

	guard guard.ConstructorGuard
}

// NewContact creates a Contact from a name and a phone number.
// Both components are required.
func NewContact(name, phone string) (Contact, error) {
	contact := Contact{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(contact.setName(name), contact.setPhone(phone)); err != nil {
		return Contact{}, err
	}

	return contact, nil
}

// Validate ensures the Contact was created via NewContact.
func (c Contact) Validate() error {
	return c.guard.Validate(ErrContactIsNotConstructed)
}

// Name returns the contact person's name.
func (c Contact) Name() string {
	return c.name
}

// Phone returns the contact phone number.
func (c Contact) Phone() string {
	return c.phone
}

func (c *Contact) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("contact name")
	}
	c.name = name
	return nil
}

func (c *Contact) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("contact phone")
	}
	c.phone = phone
	return nil
}
