package http

import (
	"errors"
	"fmt"
	"net/http"

	"tracking/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler renders errors that escape the handlers, such as parameter
// binding failures and unknown routes, as servers.Error.
func HTTPErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = fmt.Sprint(he.Message)
	} else {
		ctx.Logger().Errorf("%s %s: %v", ctx.Request().Method, ctx.Request().URL.Path, err)
	}

	if ctx.Request().Method == http.MethodHead {
		err = ctx.NoContent(code)
	} else {
		err = errorResponse(ctx, code, message)
	}
	if err != nil {
		ctx.Logger().Error(err)
	}
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}
