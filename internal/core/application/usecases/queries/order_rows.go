// Package queries contains read-only operations. Handlers read straight from
// the database with raw SQL and project orders through the OrderTracker.
package queries

import (
	"database/sql"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/model/tracking"
	"tracking/internal/core/domain/services"

	"github.com/google/uuid"
)

const selectOrders = `
		SELECT
			id,
			user_id,
			address,
			created_time,
			delivery_latitude,
			delivery_longitude
		FROM orders
`

// StatusComputer projects an order at a given instant.
type StatusComputer interface {
	ComputeStatus(o *order.Order, now time.Time) *tracking.OrderWithStatus
}

var _ StatusComputer = services.OrderTracker{}

func scanOrders(rows *sql.Rows) ([]*order.Order, error) {
	orders := make([]*order.Order, 0)

	for rows.Next() {
		var (
			id          uuid.UUID
			userID      string
			address     string
			createdTime time.Time
			latitude    float64
			longitude   float64
		)

		if err := rows.Scan(&id, &userID, &address, &createdTime, &latitude, &longitude); err != nil {
			return nil, err
		}

		orderID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		location, err := kernel.NewLatLong(latitude, longitude)
		if err != nil {
			return nil, err
		}

		o, err := order.NewOrder(orderID, userID, address, createdTime, location)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func projectAll(computer StatusComputer, orders []*order.Order, now time.Time) []*tracking.OrderWithStatus {
	projections := make([]*tracking.OrderWithStatus, 0, len(orders))
	for _, o := range orders {
		if status := computer.ComputeStatus(o, now); status != nil {
			projections = append(projections, status)
		}
	}
	return projections
}
