package tracking

import (
	"slices"
	"time"

	"tracking/internal/core/domain/model/order"
)

// OrderWithStatus is the projection of an order at a given instant: the status
// badge and the map markers the UI renders. It is recomputed on every request
// and never stored.
type OrderWithStatus struct {
	order      *order.Order
	status     order.DeliveryStatus
	markers    []Marker
	computedAt time.Time
}

// NewOrderWithStatus builds a projection. markers must not be empty.
func NewOrderWithStatus(
	o *order.Order,
	status order.DeliveryStatus,
	markers []Marker,
	computedAt time.Time,
) *OrderWithStatus {
	return &OrderWithStatus{
		order:      o,
		status:     status,
		markers:    slices.Clone(markers),
		computedAt: computedAt,
	}
}

func (s *OrderWithStatus) Order() *order.Order {
	return s.order
}

func (s *OrderWithStatus) Status() order.DeliveryStatus {
	return s.status
}

// StatusText is the human-readable status, e.g. "Out for delivery".
func (s *OrderWithStatus) StatusText() string {
	return s.status.String()
}

// Progress is 33, 66 or 100.
func (s *OrderWithStatus) Progress() int {
	return s.status.Progress()
}

// MapMarkers returns a copy of the markers in display order.
func (s *OrderWithStatus) MapMarkers() []Marker {
	return slices.Clone(s.markers)
}

// ComputedAt is the instant the projection describes.
func (s *OrderWithStatus) ComputedAt() time.Time {
	return s.computedAt
}
