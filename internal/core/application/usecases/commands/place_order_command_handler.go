package commands

import (
	"context"
	"errors"

	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"
)

// ErrOrderAlreadyExists is returned when an order with the same ID was placed before.
var ErrOrderAlreadyExists = ports.ErrOrderAlreadyExists

// PlaceOrderCommandHandler stores a newly placed order, stamped with the
// current time. From that instant on the order's delivery status advances on
// its own.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

// NewPlaceOrderCommandHandler requires an OrderUoWFactory for transactional
// persistence and the clock that stamps the creation time.
func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle places the order. Placing the same order ID twice returns
// ErrOrderAlreadyExists and leaves the first order untouched. Concurrent
// placements that both pass the lookup are caught by the repository on Add.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	_, err := orderRepo.Get(ctx, cmd.OrderID())
	if err == nil {
		return ErrOrderAlreadyExists
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	o, err := order.NewOrder(
		cmd.OrderID(),
		cmd.UserID(),
		cmd.Address(),
		h.clock.Now(),
		cmd.DeliveryLocation(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
