package queries

import (
	"errors"
	"strings"

	"tracking/internal/pkg/guard"
)

var ErrGetOrdersWithStatusQueryIsNotConstructed = errors.New(
	"GetOrdersWithStatusQuery must be created via NewGetOrdersWithStatusQuery constructor",
)

// GetOrdersWithStatusQuery lists the orders of a user, newest first, each with
// its current status.
type GetOrdersWithStatusQuery struct {
	userID string

	guard guard.ConstructorGuard
}

func NewGetOrdersWithStatusQuery(userID string) (GetOrdersWithStatusQuery, error) {
	userID = strings.TrimSpace(userID)
	if err := requireUserID(userID); err != nil {
		return GetOrdersWithStatusQuery{}, err
	}

	return GetOrdersWithStatusQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrdersWithStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersWithStatusQueryIsNotConstructed)
}

func (q GetOrdersWithStatusQuery) UserID() string {
	return q.userID
}
