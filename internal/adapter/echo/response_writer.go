package echo

import (
	"github.com/labstack/echo/v4"
)

// EchoResponseWriter는 core.ResponseWriter를 Echo 응답 객체 위에 구현합니다.
type EchoResponseWriter struct {
	ctx echo.Context
}

func NewEchoResponseWriter(ctx echo.Context) *EchoResponseWriter {
	return &EchoResponseWriter{ctx: ctx}
}

func (w *EchoResponseWriter) WriteJSON(status int, value any) error {
	return w.ctx.JSON(status, value)
}

func (w *EchoResponseWriter) WriteString(status int, value string) error {
	return w.ctx.String(status, value)
}

func (w *EchoResponseWriter) WriteBytes(status int, value []byte) error {
	res := w.ctx.Response()
	res.WriteHeader(status)
	_, err := res.Write(value)
	return err
}

func (w *EchoResponseWriter) SetHeader(name string, value string) {
	w.ctx.Response().Header().Set(name, value)
}

func (w *EchoResponseWriter) AddHeader(name string, value string) {
	w.ctx.Response().Header().Add(name, value)
}

func (w *EchoResponseWriter) IsCommitted() bool {
	return w.ctx.Response().Committed
}
