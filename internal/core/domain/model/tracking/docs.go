// Package tracking holds the read-side projection of an order: its status
// text, progress and the markers drawn on the delivery map.
package tracking
