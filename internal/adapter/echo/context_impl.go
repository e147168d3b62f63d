package echo

import (
	"context"
	"maps"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/sehyn/tendon/core"
	"github.com/sehyn/tendon/internal/body"
	"github.com/sehyn/tendon/internal/event/publish"
	"github.com/sehyn/tendon/internal/multipart"
	"github.com/sehyn/tendon/pkg/form"
)

type echoContext struct {
	echo     echo.Context
	reqCtx   context.Context
	store    map[string]any
	eventBus core.EventBus
	formOpts multipart.Options

	stackOnce sync.Once
	stack     *form.ParameterStack
	stackErr  error
}

func NewContext(c echo.Context, formOpts multipart.Options) core.ExecutionContext {
	return &echoContext{
		echo:     c,
		reqCtx:   c.Request().Context(), // 요청시 생성되는 Context
		store:    make(map[string]any),
		eventBus: publish.NewEventBus(),
		formOpts: formOpts,
	}
}

func (e *echoContext) Context() context.Context {
	return e.reqCtx
}

func (e *echoContext) Bind(out any) error {
	return e.echo.Bind(out)
}

// FormStack은 최초 호출 시 요청 바디를 끝까지 수신해 필드/파일 테이블을
// 만들고, 이후 호출은 같은 결과를 돌려줍니다.
func (e *echoContext) FormStack() (*form.ParameterStack, error) {
	e.stackOnce.Do(func() {
		req := e.echo.Request()
		stack, err := body.Receive(req.Header.Get("Content-Type"), req.Body, e.formOpts)
		if err != nil {
			e.stackErr = body.AsHTTPError(err)
			return
		}
		e.stack = stack
	})
	return e.stack, e.stackErr
}

func (e *echoContext) Get(key string) (any, bool) {
	value, ok := e.store[key]
	return value, ok
}

func (e *echoContext) Header(name string) string {
	return e.echo.Request().Header.Get(name)
}

// Headers return a map of all headers in the request.
func (e *echoContext) Headers() map[string][]string {
	return e.echo.Request().Header
}

func (e *echoContext) Param(name string) string {
	if raw, ok := e.store["tendon.params"]; ok {
		if m, ok := raw.(map[string]string); ok {
			if v, ok := m[name]; ok {
				return v
			}
		}
	}
	return e.echo.Param(name)
}

func (e *echoContext) Query(name string) string {
	return e.echo.QueryParam(name)
}

func (e *echoContext) Set(key string, value any) {
	e.store[key] = value
}

func (e *echoContext) Params() map[string]string {
	if raw, ok := e.store["tendon.params"]; ok {
		if m, ok := raw.(map[string]string); ok {
			// return a shallow copy to avoid mutation
			copyMap := make(map[string]string, len(m))
			maps.Copy(copyMap, m)
			return copyMap
		}
	}

	names := e.echo.ParamNames()
	values := e.echo.ParamValues()

	params := make(map[string]string, len(names))

	for i, name := range names {
		if i < len(values) {
			params[name] = values[i]
		}
	}

	return params
}

func (e *echoContext) Queries() map[string][]string {
	return e.echo.QueryParams()
}

func (e *echoContext) Method() string {
	return e.echo.Request().Method
}

func (e *echoContext) Path() string {
	return e.echo.Request().URL.Path
}

func (e *echoContext) PathKeys() []string {
	if v, ok := e.store["tendon.pathKeys"]; ok {
		if keys, ok := v.([]string); ok {
			return keys
		}
	}
	return nil
}

func (e *echoContext) EventBus() core.EventBus {
	return e.eventBus
}
