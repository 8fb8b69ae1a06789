package order

import (
	"fmt"

	"tracking/internal/pkg/errs"
)

// DeliveryStatus is the simulated stage of an order, derived from the time
// elapsed since the order was placed. Values are declared in delivery order,
// so a later stage compares greater.
//
//	Preparing ──(+PreparationDelay)──> OutForDelivery ──(+DeliveryDuration)──> Delivered
type DeliveryStatus int

const (
	// Unknown catches uninitialized DeliveryStatus values.
	Unknown DeliveryStatus = iota

	// Preparing lasts from placement until the dispatch time.
	Preparing

	// OutForDelivery lasts from dispatch until DeliveryDuration has passed.
	OutForDelivery

	// Delivered is final.
	Delivered
)

func getStatusStrings() map[DeliveryStatus]string {
	return map[DeliveryStatus]string{
		Unknown:        "Unknown",
		Preparing:      "Preparing",
		OutForDelivery: "Out for delivery",
		Delivered:      "Delivered",
	}
}

func getStatusProgress() map[DeliveryStatus]int {
	//nolint:exhaustive // Unknown has no progress
	return map[DeliveryStatus]int{
		Preparing:      33,
		OutForDelivery: 66,
		Delivered:      100,
	}
}

// Validate rejects Unknown and any value outside of the declared statuses.
func (s DeliveryStatus) Validate() error {
	if _, ok := getStatusProgress()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status text shown to customers.
func (s DeliveryStatus) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Progress returns the completion percentage: 33, 66 or 100, and 0 for
// invalid statuses.
func (s DeliveryStatus) Progress() int {
	return getStatusProgress()[s]
}

// IsFinal reports whether no further transition can happen.
func (s DeliveryStatus) IsFinal() bool {
	return s == Delivered
}
