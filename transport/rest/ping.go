package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func handlePing(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "pong")
}
