// Package services provides domain services of the tracking system.
//
// The package includes:
//   - OrderTracker: derives the delivery status, progress and map markers of an
//     order from the time elapsed since it was placed
//
// Services are stateless; time and randomness are passed in so results are
// reproducible.
package services
