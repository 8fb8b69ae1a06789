package services

import (
	"math"
	"math/rand/v2"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/model/tracking"
)

const (
	// MinStartDistance is the smallest distance, in degrees, between the
	// driver's simulated start point and the delivery location.
	MinStartDistance = 0.01
	// StartDistanceSpread is added on top of MinStartDistance, scaled by a
	// random factor in [0, 1).
	StartDistanceSpread = 0.02
)

// RandomSource yields pseudo-random numbers in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// RandomSourceFactory returns the random source used for one order.
type RandomSourceFactory func(o *order.Order) RandomSource

// SeededByOrderID returns a generator seeded from the order identifier, so the
// driver's start point is the same on every computation for that order.
func SeededByOrderID(o *order.Order) RandomSource {
	return rand.New(rand.NewPCG(o.ID().Seed())) //nolint:gosec // simulation only
}

// OrderTracker is a domain service that simulates the delivery of an order and
// projects it onto a status badge and a map.
//
// Business rules:
//   - The order is Preparing until PreparationDelay has elapsed, then
//     OutForDelivery for DeliveryDuration, then Delivered
//   - While out for delivery, the driver moves in a straight line from a start
//     point 0.01 to 0.03 degrees away from the customer, at constant speed
//   - The customer's location is always on the map
//
// Example usage:
//
//	tracker := services.NewOrderTracker()
//	status := tracker.ComputeStatus(o, clock.Now())
//	if status == nil {
//	    // no such order
//	}
//	fmt.Println(status.StatusText(), status.Progress())
type OrderTracker struct {
	newRandom RandomSourceFactory
}

// NewOrderTracker returns a tracker whose driver start points are stable per order.
func NewOrderTracker() OrderTracker {
	return NewOrderTrackerWithRandom(SeededByOrderID)
}

// NewOrderTrackerWithRandom returns a tracker drawing start points from the
// sources created by newRandom. A nil factory falls back to SeededByOrderID.
func NewOrderTrackerWithRandom(newRandom RandomSourceFactory) OrderTracker {
	if newRandom == nil {
		newRandom = SeededByOrderID
	}
	return OrderTracker{newRandom: newRandom}
}

// ComputeStatus projects o at instant now. A nil or unconstructed order yields
// nil, which callers treat as "order not found".
func (t OrderTracker) ComputeStatus(o *order.Order, now time.Time) *tracking.OrderWithStatus {
	if o.Validate() != nil {
		return nil
	}

	destination := o.DeliveryLocation()
	status := o.StatusAt(now)

	var markers []tracking.Marker
	switch status {
	case order.Preparing:
		markers = []tracking.Marker{
			tracking.NewMarker(tracking.CustomerMarker, destination, true),
		}
	case order.OutForDelivery:
		driver := kernel.Interpolate(t.StartPosition(o), destination, o.DeliveryFraction(now))
		markers = []tracking.Marker{
			tracking.NewMarker(tracking.CustomerMarker, destination, false),
			tracking.NewMarker(tracking.DriverMarker, driver, true),
		}
	default:
		markers = []tracking.Marker{
			tracking.NewMarker(tracking.DeliveryLocationMarker, destination, true),
		}
	}

	return tracking.NewOrderWithStatus(o, status, markers, now)
}

// StartPosition returns the point the simulated driver sets off from: a random
// distance in [MinStartDistance, MinStartDistance+StartDistanceSpread) at a
// random bearing from the delivery location.
func (t OrderTracker) StartPosition(o *order.Order) kernel.LatLong {
	rnd := t.newRandom(o)
	distance := MinStartDistance + rnd.Float64()*StartDistanceSpread
	angle := rnd.Float64() * 2 * math.Pi

	return o.DeliveryLocation().Offset(distance*math.Cos(angle), distance*math.Sin(angle))
}
