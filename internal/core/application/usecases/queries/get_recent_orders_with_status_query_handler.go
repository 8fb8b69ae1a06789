package queries

import (
	"context"

	"tracking/internal/core/domain/model/tracking"
	"tracking/internal/core/ports"

	"gorm.io/gorm"
)

// GetRecentOrdersWithStatusQueryHandler feeds the delivery progress job.
type GetRecentOrdersWithStatusQueryHandler struct {
	db       *gorm.DB
	computer StatusComputer
	clock    ports.Clock
}

func NewGetRecentOrdersWithStatusQueryHandler(
	db *gorm.DB,
	computer StatusComputer,
	clock ports.Clock,
) GetRecentOrdersWithStatusQueryHandler {
	return GetRecentOrdersWithStatusQueryHandler{
		db:       db,
		computer: computer,
		clock:    clock,
	}
}

func (h GetRecentOrdersWithStatusQueryHandler) Handle(
	ctx context.Context,
	query GetRecentOrdersWithStatusQuery,
) ([]*tracking.OrderWithStatus, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	rows, err := h.db.WithContext(ctx).Raw(selectOrders+`
		WHERE created_time > ?
		ORDER BY created_time, id
	`, now.Add(-query.Lookback())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders, err := scanOrders(rows)
	if err != nil {
		return nil, err
	}

	return projectAll(h.computer, orders, now), nil
}
