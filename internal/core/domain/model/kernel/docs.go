// Package kernel provides the value objects shared across the tracking domain.
//
// The package includes:
//   - UUID: identifier of orders, backed by github.com/google/uuid
//   - LatLong: a validated geographic point with linear interpolation
//
// Both are immutable, and their zero values fail Validate, so they are safe to
// pass by value and to share between goroutines.
package kernel
