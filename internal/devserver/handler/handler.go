// Package handler はdevserverのHTTPハンドラ。
// 本番サーバーの代わりになるスタブなので、ロジックはhandler内で完結させる。
package handler

import "github.com/labstack/echo/v4"

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func writeError(c echo.Context, status int, msg string) error {
	return c.JSON(status, ErrorResponse{Error: msg})
}
