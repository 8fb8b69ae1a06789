package queries

import (
	"context"

	"tracking/internal/core/domain/model/tracking"
	"tracking/internal/core/ports"

	"gorm.io/gorm"
)

// GetOrdersWithStatusQueryHandler backs the "my orders" page.
type GetOrdersWithStatusQueryHandler struct {
	db       *gorm.DB
	computer StatusComputer
	clock    ports.Clock
}

func NewGetOrdersWithStatusQueryHandler(
	db *gorm.DB,
	computer StatusComputer,
	clock ports.Clock,
) GetOrdersWithStatusQueryHandler {
	return GetOrdersWithStatusQueryHandler{
		db:       db,
		computer: computer,
		clock:    clock,
	}
}

// Handle returns an empty, non-nil slice when the user has no orders.
// All projections share the same instant.
func (h GetOrdersWithStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersWithStatusQuery,
) ([]*tracking.OrderWithStatus, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(selectOrders+`
		WHERE user_id = ?
		ORDER BY created_time DESC, id
	`, query.UserID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders, err := scanOrders(rows)
	if err != nil {
		return nil, err
	}

	return projectAll(h.computer, orders, h.clock.Now()), nil
}
