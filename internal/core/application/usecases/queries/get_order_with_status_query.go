package queries

import (
	"errors"
	"strings"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var (
	ErrGetOrderWithStatusQueryIsNotConstructed = errors.New(
		"GetOrderWithStatusQuery must be created via NewGetOrderWithStatusQuery constructor",
	)
	ErrUserIDIsRequired = errors.New("user id is required")
)

// GetOrderWithStatusQuery fetches one order of a user together with its
// current status, progress and map markers.
//
// Example:
//
//	query, err := NewGetOrderWithStatusQuery(orderID, "user-42")
//	if err != nil {
//	    return err
//	}
//	status, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown order, or an order of another user
//	}
type GetOrderWithStatusQuery struct {
	orderID kernel.UUID
	userID  string

	guard guard.ConstructorGuard
}

func NewGetOrderWithStatusQuery(orderID kernel.UUID, userID string) (GetOrderWithStatusQuery, error) {
	userID = strings.TrimSpace(userID)
	if err := errors.Join(orderID.Validate(), requireUserID(userID)); err != nil {
		return GetOrderWithStatusQuery{}, err
	}

	return GetOrderWithStatusQuery{
		orderID: orderID,
		userID:  userID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderWithStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderWithStatusQueryIsNotConstructed)
}

func (q GetOrderWithStatusQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetOrderWithStatusQuery) UserID() string {
	return q.userID
}

func requireUserID(userID string) error {
	if userID == "" {
		return ErrUserIDIsRequired
	}
	return nil
}
