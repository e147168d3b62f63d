package echo

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/sehyn/tendon/internal/multipart"
	"github.com/sehyn/tendon/internal/pipeline"
)

// Adapter는 Echo 요청을 Tendon 실행 모델로 연결합니다.
type Adapter struct {
	pipeline *pipeline.Pipeline
	formOpts multipart.Options
}

func NewAdapter(pipeline *pipeline.Pipeline, formOpts multipart.Options) *Adapter {
	return &Adapter{
		pipeline: pipeline,
		formOpts: formOpts,
	}
}

// Mount는 Echo 인스턴스에 Tendon 핸들러를 연결합니다.
func (a *Adapter) Mount(e *echo.Echo) {
	e.Any("/*", func(c echo.Context) error {
		ctx := NewContext(c, a.formOpts)

		ctx.Set("tendon.response_writer", NewEchoResponseWriter(c))
		ctx.Set("tendon.http_request", c.Request())
		ctx.Set("tendon.http_response", c.Response())
		// 응답 커밋 직전에 실행할 콜백 등록 통로. 세션 저장이 여기에 올라탑니다.
		ctx.Set("tendon.response_before", func(fn func()) {
			c.Response().Before(fn)
		})

		if err := a.pipeline.Execute(ctx); err != nil {
			fmt.Println("PIPELINE ERROR:", err)
			return err
		}
		return nil
	})
}
