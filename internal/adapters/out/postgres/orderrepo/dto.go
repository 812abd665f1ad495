// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, including the conditional writes the claim and lifecycle
// transitions rely on.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The numeric primary key is store-assigned; status and
// courier_id are indexed because every conditional write and every role
// projection filters on them.
type OrderDTO struct {
	ID         int64      `gorm:"primaryKey;autoIncrement"`
	TrackingID uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	CustomerID int64      `gorm:"not null;index"`
	CourierID  *int64     `gorm:"index"`
	Status     int        `gorm:"not null;index"`
	Pickup     AddressDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Dropoff    AddressDTO `gorm:"embedded;embeddedPrefix:dropoff_"`
	Contact    ContactDTO `gorm:"embedded;embeddedPrefix:contact_"`
	Pieces     int
	WeightKg   float64
	WindowFrom time.Time
	WindowTo   time.Time
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents an embedded pickup or dropoff address within the
// orders table.
type AddressDTO struct {
	Street string `gorm:"not null"`
	City   string `gorm:"not null"`
}

// ContactDTO represents the embedded dropoff contact within the orders
// table.
type ContactDTO struct {
	Name  string `gorm:"not null"`
	Phone string `gorm:"not null"`
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *int64
	if id := aggregate.Courier(); id != nil {
		raw := id.Int64()
		courierID = &raw
	}

	return OrderDTO{
		ID:         aggregate.ID().Int64(),
		TrackingID: aggregate.TrackingID().Bytes(),
		CustomerID: aggregate.CustomerID().Int64(),
		CourierID:  courierID,
		Status:     int(aggregate.Status()),
		Pickup: AddressDTO{
			Street: aggregate.Pickup().Street(),
			City:   aggregate.Pickup().City(),
		},
		Dropoff: AddressDTO{
			Street: aggregate.Dropoff().Street(),
			City:   aggregate.Dropoff().City(),
		},
		Contact: ContactDTO{
			Name:  aggregate.Contact().Name(),
			Phone: aggregate.Contact().Phone(),
		},
		Pieces:     aggregate.Pieces(),
		WeightKg:   aggregate.WeightKg(),
		WindowFrom: aggregate.Window().From(),
		WindowTo:   aggregate.Window().To(),
	}
}

// toDomain converts a database DTO back into an order aggregate using
// RestoreOrder, re-validating every invariant on the way.
func toDomain(dto OrderDTO) (*order.Order, error) {
	trackingID, err := kernel.TrackingIDFromBytes(dto.TrackingID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.ActorID
	if dto.CourierID != nil {
		id := kernel.ActorID(*dto.CourierID)
		courierID = &id
	}

	pickup, err := kernel.NewAddress(dto.Pickup.Street, dto.Pickup.City)
	if err != nil {
		return nil, err
	}

	dropoff, err := kernel.NewAddress(dto.Dropoff.Street, dto.Dropoff.City)
	if err != nil {
		return nil, err
	}

	contact, err := kernel.NewContact(dto.Contact.Name, dto.Contact.Phone)
	if err != nil {
		return nil, err
	}

	window, err := kernel.NewWindow(dto.WindowFrom, dto.WindowTo)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		kernel.OrderID(dto.ID),
		trackingID,
		kernel.ActorID(dto.CustomerID),
		courierID,
		order.Status(dto.Status),
		pickup,
		dropoff,
		contact,
		dto.Pieces,
		dto.WeightKg,
		window,
	)
}
