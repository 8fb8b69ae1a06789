// Package order provides the Order aggregate of the tracking service.
//
// The package includes:
//   - Order: an immutable placed order with its delivery location
//   - DeliveryStatus: the simulated stage of an order with its progress value
//
// Key business rules:
//   - Orders must have a valid identifier, user, creation time and delivery location
//   - The delivery status is never stored; it follows from the creation time:
//     Preparing for PreparationDelay, then OutForDelivery for DeliveryDuration,
//     then Delivered
//   - Progress only ever increases: 33, 66, 100
package order
