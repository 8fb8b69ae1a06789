package tracking

import (
	"tracking/internal/core/domain/model/kernel"
)

// Marker labels.
const (
	CustomerMarker         = "You"
	DriverMarker           = "Driver"
	DeliveryLocationMarker = "Delivery location"
)

// Marker is a point rendered on the tracking map. X is the longitude and Y is
// the latitude, matching the map widget's axes.
type Marker struct {
	description string
	x           float64
	y           float64
	showPopup   bool
}

// NewMarker places a marker at coords.
func NewMarker(description string, coords kernel.LatLong, showPopup bool) Marker {
	return Marker{
		description: description,
		x:           coords.Longitude(),
		y:           coords.Latitude(),
		showPopup:   showPopup,
	}
}

func (m Marker) Description() string {
	return m.description
}

func (m Marker) X() float64 {
	return m.x
}

func (m Marker) Y() float64 {
	return m.y
}

// ShowPopup reports whether the map should open the marker's label.
func (m Marker) ShowPopup() bool {
	return m.showPopup
}
