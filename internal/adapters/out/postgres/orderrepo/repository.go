package orderrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
//
// Claim and AdvanceOwned express their preconditions inside the UPDATE's
// WHERE clause, so the check and the write are one indivisible statement.
// The database guarantees that two concurrent conditional writes against
// the same row are not both reported as successful; the RowsAffected count
// is therefore what decides the winner.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.OrderID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new Pending order and assigns the generated numeric id on the
// aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.AssignID(kernel.OrderID(dto.ID)); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by its store-assigned identifier.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.Int64())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Claim performs the single atomic conditional write that resolves claim
// contention: the row is moved to EnRoutePickup with the courier set only
// if it still holds status Pending with no courier at write time. Exactly
// one concurrent caller observes RowsAffected == 1.
func (r *GormOrderRepository) Claim(
	ctx context.Context,
	id kernel.OrderID,
	courierID kernel.ActorID,
) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}
	if err := courierID.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ? AND courier_id IS NULL", id.Int64(), int(order.Pending)).
		Updates(map[string]any{
			"courier_id": courierID.Int64(),
			"status":     int(order.EnRoutePickup),
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

// AdvanceOwned performs the ownership-conditional write for the post-claim
// transitions: the status moves from current to target only if the row is
// still in the current status and owned by the acting courier.
func (r *GormOrderRepository) AdvanceOwned(
	ctx context.Context,
	id kernel.OrderID,
	courierID kernel.ActorID,
	current order.Status,
	target order.Status,
) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}
	if err := courierID.Validate(); err != nil {
		return false, err
	}
	if err := current.Validate(); err != nil {
		return false, err
	}
	if err := target.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ? AND courier_id = ?", id.Int64(), int(current), courierID.Int64()).
		Updates(map[string]any{
			"status": int(target),
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}
