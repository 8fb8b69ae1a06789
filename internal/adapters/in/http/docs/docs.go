// Package docs registers the API document with swag so that echo-swagger can
// serve it under /swagger/.
package docs

import (
	"fmt"
	"strings"
	"sync"

	"tracking/internal/generated/servers"

	"github.com/swaggo/swag"
)

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Order tracking API",
	Description:      "Places food orders and reports their simulated delivery status.",
	InfoInstanceName: "swagger",
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

var (
	registerOnce sync.Once
	registerErr  error
)

// Register renders the OpenAPI document as JSON and registers it with swag.
// Repeated calls are no-ops.
func Register() error {
	registerOnce.Do(func() {
		swagger, err := servers.GetSwagger()
		if err != nil {
			registerErr = err
			return
		}

		raw, err := swagger.MarshalJSON()
		if err != nil {
			registerErr = fmt.Errorf("render OpenAPI document: %w", err)
			return
		}

		// the document is a template to swag; it must not contain delimiters
		if strings.Contains(string(raw), SwaggerInfo.LeftDelim) {
			registerErr = fmt.Errorf("OpenAPI document contains template delimiter %q", SwaggerInfo.LeftDelim)
			return
		}

		SwaggerInfo.SwaggerTemplate = string(raw)
		swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
	})

	return registerErr
}
