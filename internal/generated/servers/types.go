// Package servers holds the HTTP contract of the tracking API: wire types,
// the ServerInterface and the echo routing for it. The types mirror
// openapi.yaml, which is embedded and served by GetSwagger.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LatLong defines model for LatLong.
type LatLong struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// MapMarker defines model for MapMarker.
type MapMarker struct {
	Description string `json:"description"`
	ShowPopup   bool   `json:"showPopup"`

	// X Longitude
	X float64 `json:"x"`

	// Y Latitude
	Y float64 `json:"y"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	Address *string `json:"address,omitempty"`

	// Id Client-chosen order id. Generated when absent.
	Id *openapi_types.UUID `json:"id,omitempty"`

	// Location Required; nil when the request omits it.
	Location *LatLong `json:"location"`
	UserId   string   `json:"userId"`
}

// Order defines model for Order.
type Order struct {
	Address          string             `json:"address"`
	CreatedTime      time.Time          `json:"createdTime"`
	DeliveryLocation LatLong            `json:"deliveryLocation"`
	Id               openapi_types.UUID `json:"id"`
	UserId           string             `json:"userId"`
}

// OrderCreated defines model for OrderCreated.
type OrderCreated struct {
	Id openapi_types.UUID `json:"id"`
}

// OrderWithStatus defines model for OrderWithStatus.
type OrderWithStatus struct {
	MapMarkers []MapMarker `json:"mapMarkers"`
	Order      Order       `json:"order"`
	Progress   int         `json:"progress"`
	StatusText string      `json:"statusText"`
}

// GetOrdersParams defines parameters for GetOrders.
type GetOrdersParams struct {
	UserId string `form:"userId" json:"userId"`
}

// GetOrderParams defines parameters for GetOrder.
type GetOrderParams struct {
	UserId string `form:"userId" json:"userId"`
}

// PlaceOrderJSONRequestBody defines body for PlaceOrder for application/json ContentType.
type PlaceOrderJSONRequestBody = NewOrder
