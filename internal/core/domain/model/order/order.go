package order

import (
	"errors"
	"strings"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
)

const (
	// PreparationDelay is the time between placing an order and its dispatch.
	PreparationDelay = 10 * time.Second
	// DeliveryDuration is the simulated transit time.
	DeliveryDuration = time.Minute
)

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a placed food order. It never changes after creation: its delivery
// status is derived from CreatedTime, see StatusAt.
type Order struct {
	id               kernel.UUID
	userID           string
	address          string
	createdTime      time.Time
	deliveryLocation kernel.LatLong

	isConstructed bool
}

// NewOrder creates an order. All validation failures are joined into a single error.
// createdTime is stored in UTC.
func NewOrder(
	id kernel.UUID,
	userID string,
	address string,
	createdTime time.Time,
	deliveryLocation kernel.LatLong,
) (*Order, error) {
	o := &Order{
		address:       strings.TrimSpace(address),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setCreatedTime(createdTime),
		o.setDeliveryLocation(deliveryLocation),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) UserID() string {
	return o.userID
}

func (o *Order) Address() string {
	return o.address
}

func (o *Order) CreatedTime() time.Time {
	return o.createdTime
}

func (o *Order) DeliveryLocation() kernel.LatLong {
	return o.deliveryLocation
}

// DispatchTime is when the order leaves the kitchen.
func (o *Order) DispatchTime() time.Time {
	return o.createdTime.Add(PreparationDelay)
}

// DeliveredTime is when the driver reaches the delivery location.
func (o *Order) DeliveredTime() time.Time {
	return o.DispatchTime().Add(DeliveryDuration)
}

// StatusAt returns the delivery status at instant now. Windows are closed on
// the left: at exactly DispatchTime the order is OutForDelivery, at exactly
// DeliveredTime it is Delivered.
func (o *Order) StatusAt(now time.Time) DeliveryStatus {
	switch {
	case now.Before(o.DispatchTime()):
		return Preparing
	case now.Before(o.DeliveredTime()):
		return OutForDelivery
	default:
		return Delivered
	}
}

// DeliveryFraction is the share of the transit completed at now, bounded to [0, 1].
func (o *Order) DeliveryFraction(now time.Time) float64 {
	elapsed := now.Sub(o.DispatchTime())
	fraction := float64(elapsed) / float64(DeliveryDuration)
	return min(1, max(0, fraction))
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return errs.NewValueIsRequiredError("user id")
	}
	o.userID = userID
	return nil
}

func (o *Order) setCreatedTime(createdTime time.Time) error {
	if createdTime.IsZero() {
		return errs.NewValueIsRequiredError("created time")
	}
	o.createdTime = createdTime.UTC()
	return nil
}

func (o *Order) setDeliveryLocation(location kernel.LatLong) error {
	if err := location.Validate(); err != nil {
		return err
	}
	o.deliveryLocation = location
	return nil
}
