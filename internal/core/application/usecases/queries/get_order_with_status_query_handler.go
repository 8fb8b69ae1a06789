package queries

import (
	"context"

	"tracking/internal/core/domain/model/tracking"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderWithStatusQueryHandler loads an order and projects it at the current time.
type GetOrderWithStatusQueryHandler struct {
	db       *gorm.DB
	computer StatusComputer
	clock    ports.Clock
}

func NewGetOrderWithStatusQueryHandler(
	db *gorm.DB,
	computer StatusComputer,
	clock ports.Clock,
) GetOrderWithStatusQueryHandler {
	return GetOrderWithStatusQueryHandler{
		db:       db,
		computer: computer,
		clock:    clock,
	}
}

// Handle returns errs.ObjectNotFoundError when the order does not exist or
// belongs to another user.
func (h GetOrderWithStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrderWithStatusQuery,
) (*tracking.OrderWithStatus, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(selectOrders+`
		WHERE id = ? AND user_id = ?
	`, query.OrderID().Bytes(), query.UserID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders, err := scanOrders(rows)
	if err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	status := h.computer.ComputeStatus(orders[0], h.clock.Now())
	if status == nil {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	return status, nil
}
