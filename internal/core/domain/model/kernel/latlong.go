package kernel

import (
	"errors"
	"fmt"
	"math"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

const (
	// MinLatitude and MaxLatitude bound valid latitudes in degrees.
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// ErrLatLongIsNotConstructed is returned when a zero LatLong is used.
var ErrLatLongIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLatLong")

// LatLong is an immutable geographic point in degrees.
//
// Example:
//
//	home, err := kernel.NewLatLong(51.5072, -0.1276)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(home) // LatLong(51.507200,-0.127600)
type LatLong struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewLatLong validates latitude in [MinLatitude..MaxLatitude] and longitude
// in [MinLongitude..MaxLongitude]. Both violations are reported together.
func NewLatLong(latitude, longitude float64) (LatLong, error) {
	ll := LatLong{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(ll.setLatitude(latitude), ll.setLongitude(longitude)); err != nil {
		return LatLong{}, err
	}

	return ll, nil
}

func (l LatLong) Validate() error {
	return l.guard.Validate(ErrLatLongIsNotConstructed)
}

func (l LatLong) Latitude() float64 {
	return l.latitude
}

func (l LatLong) Longitude() float64 {
	return l.longitude
}

func (l LatLong) String() string {
	return fmt.Sprintf("LatLong(%f,%f)", l.latitude, l.longitude)
}

func (l LatLong) IsEqual(other LatLong) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l == other, nil
}

// Offset moves the point by the given deltas in degrees. The latitude is
// clamped at the poles and the longitude wraps across the antimeridian, so the
// result is always a valid point.
func (l LatLong) Offset(dLat, dLon float64) LatLong {
	return LatLong{
		latitude:  clamp(l.latitude+dLat, MinLatitude, MaxLatitude),
		longitude: normalizeLongitude(l.longitude + dLon),
		guard:     guard.NewConstructorGuard(),
	}
}

// Interpolate returns the point at fraction along the straight line from start
// to end: 0 yields start, 1 yields end. The longitude takes the shorter way
// around the antimeridian. The caller is responsible for bounding fraction.
func Interpolate(start, end LatLong, fraction float64) LatLong {
	dLon := end.longitude - start.longitude
	switch {
	case dLon > 180:
		dLon -= 360
	case dLon < -180:
		dLon += 360
	}

	return LatLong{
		latitude:  clamp(start.latitude+(end.latitude-start.latitude)*fraction, MinLatitude, MaxLatitude),
		longitude: normalizeLongitude(start.longitude + dLon*fraction),
		guard:     guard.NewConstructorGuard(),
	}
}

func (l *LatLong) setLatitude(latitude float64) error {
	if math.IsNaN(latitude) || latitude < MinLatitude || latitude > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, MinLatitude, MaxLatitude)
	}

	l.latitude = latitude
	return nil
}

func (l *LatLong) setLongitude(longitude float64) error {
	if math.IsNaN(longitude) || longitude < MinLongitude || longitude > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, MinLongitude, MaxLongitude)
	}

	l.longitude = longitude
	return nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func normalizeLongitude(lon float64) float64 {
	if lon >= MinLongitude && lon <= MaxLongitude {
		return lon
	}
	lon = math.Mod(lon+180, 360)
	if lon < 0 {
		lon += 360
	}
	return lon - 180
}
