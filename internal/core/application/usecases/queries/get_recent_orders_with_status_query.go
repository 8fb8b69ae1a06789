package queries

import (
	"errors"
	"time"

	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var ErrGetRecentOrdersWithStatusQueryIsNotConstructed = errors.New(
	"GetRecentOrdersWithStatusQuery must be created via NewGetRecentOrdersWithStatusQuery constructor",
)

// GetRecentOrdersWithStatusQuery lists the orders of all users placed within
// lookback of now, oldest first. The lookback must cover at least one full
// delivery so that every order is seen in each of its states.
type GetRecentOrdersWithStatusQuery struct {
	lookback time.Duration

	guard guard.ConstructorGuard
}

// MinLookback is the time from placement to delivery.
const MinLookback = order.PreparationDelay + order.DeliveryDuration

func NewGetRecentOrdersWithStatusQuery(lookback time.Duration) (GetRecentOrdersWithStatusQuery, error) {
	if lookback < MinLookback {
		return GetRecentOrdersWithStatusQuery{}, errs.NewValueIsOutOfRangeError(
			"lookback", lookback, MinLookback, "unbounded")
	}

	return GetRecentOrdersWithStatusQuery{
		lookback: lookback,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetRecentOrdersWithStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetRecentOrdersWithStatusQueryIsNotConstructed)
}

func (q GetRecentOrdersWithStatusQuery) Lookback() time.Duration {
	return q.lookback
}
