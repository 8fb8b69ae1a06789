package commands

import (
	"errors"
	"strings"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrUserIDIsRequired = errors.New("user id is required")
)

// PlaceOrderCommand represents a customer placing a food order for delivery.
//
// Example:
//
//	location, _ := kernel.NewLatLong(51.5072, -0.1276)
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), "user-42", "221B Baker St", location)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	userID           string
	address          string
	deliveryLocation kernel.LatLong

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates the order ID, the user and the delivery location.
// The address is free text and may be empty.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	userID string,
	address string,
	deliveryLocation kernel.LatLong,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		address: strings.TrimSpace(address),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setDeliveryLocation(deliveryLocation),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c PlaceOrderCommand) UserID() string {
	return c.userID
}

func (c PlaceOrderCommand) Address() string {
	return c.address
}

func (c PlaceOrderCommand) DeliveryLocation() kernel.LatLong {
	return c.deliveryLocation
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setUserID(userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrUserIDIsRequired
	}

	c.userID = userID
	return nil
}

func (c *PlaceOrderCommand) setDeliveryLocation(location kernel.LatLong) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.deliveryLocation = location
	return nil
}
