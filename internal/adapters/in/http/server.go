// Package http is the REST adapter of the tracking service. Server implements
// servers.ServerInterface on top of the application use cases.
package http

import (
	"context"
	"errors"
	"net/http"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/tracking"
	"tracking/internal/generated/servers"
	"tracking/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type (
	PlaceOrderHandler interface {
		Handle(ctx context.Context, cmd commands.PlaceOrderCommand) error
	}

	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderWithStatusQuery) (*tracking.OrderWithStatus, error)
	}

	GetOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetOrdersWithStatusQuery) ([]*tracking.OrderWithStatus, error)
	}
)

var _ servers.ServerInterface = (*Server)(nil)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	placeOrderHandler PlaceOrderHandler
	getOrderHandler   GetOrderHandler
	getOrdersHandler  GetOrdersHandler
}

func NewServer(
	placeOrderHandler PlaceOrderHandler,
	getOrderHandler GetOrderHandler,
	getOrdersHandler GetOrdersHandler,
) *Server {
	return &Server{
		placeOrderHandler: placeOrderHandler,
		getOrderHandler:   getOrderHandler,
		getOrdersHandler:  getOrdersHandler,
	}
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var body servers.PlaceOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	if body.Id != nil {
		id, err := kernel.UUIDFromBytes(body.Id[:])
		if err != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
		}
		orderID = id
	}

	var address string
	if body.Address != nil {
		address = *body.Address
	}

	if body.Location == nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid location: location is required")
	}

	location, err := kernel.NewLatLong(body.Location.Latitude, body.Location.Longitude)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid location: "+err.Error())
	}

	cmd, err := commands.NewPlaceOrderCommand(orderID, body.UserId, address, location)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if err = s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, commands.ErrOrderAlreadyExists):
			return errorResponse(ctx, http.StatusConflict, "Order "+orderID.String()+" already exists")
		case isValidationError(err):
			return errorResponse(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
		default:
			ctx.Logger().Errorf("place order %s: %v", orderID, err)
			return errorResponse(ctx, http.StatusInternalServerError, "Failed to place order")
		}
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{Id: orderID.Bytes()})
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	query, err := queries.NewGetOrdersWithStatusQuery(params.UserId)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	statuses, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		ctx.Logger().Errorf("get orders of %s: %v", query.UserID(), err)
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	response := make([]servers.OrderWithStatus, len(statuses))
	for i, status := range statuses {
		response[i] = toResponse(status)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID openapi_types.UUID, params servers.GetOrderParams) error {
	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderWithStatusQuery(id, params.UserId)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	status, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "Order "+id.String()+" not found")
		}
		ctx.Logger().Errorf("get order %s: %v", id, err)
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, toResponse(status))
}

func toResponse(status *tracking.OrderWithStatus) servers.OrderWithStatus {
	o := status.Order()

	markers := make([]servers.MapMarker, 0, len(status.MapMarkers()))
	for _, m := range status.MapMarkers() {
		markers = append(markers, servers.MapMarker{
			Description: m.Description(),
			X:           m.X(),
			Y:           m.Y(),
			ShowPopup:   m.ShowPopup(),
		})
	}

	return servers.OrderWithStatus{
		Order: servers.Order{
			Id:          o.ID().Bytes(),
			UserId:      o.UserID(),
			Address:     o.Address(),
			CreatedTime: o.CreatedTime(),
			DeliveryLocation: servers.LatLong{
				Latitude:  o.DeliveryLocation().Latitude(),
				Longitude: o.DeliveryLocation().Longitude(),
			},
		},
		StatusText: status.StatusText(),
		Progress:   status.Progress(),
		MapMarkers: markers,
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange)
}
