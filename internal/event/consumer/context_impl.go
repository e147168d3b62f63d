package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/sehyn/tendon/core"
	"github.com/sehyn/tendon/pkg/form"
)

// 이벤트 핸들러는 라우터에서 이 메서드 이름으로 구분됩니다.
const RouteMethod = "EVENT"

type consumerContext struct {
	ctx      context.Context
	msg      Message
	store    map[string]any
	eventBus core.EventBus
}

// NewRequestContext는 메시지 한 건의 실행 컨텍스트를 만듭니다.
// 경로는 "/<이벤트 이름>"으로 고정되어 HTTP와 같은 라우터를 공유합니다.
func NewRequestContext(ctx context.Context, msg Message, eventBus core.EventBus) core.ExecutionContext {
	return &consumerContext{
		ctx:      ctx,
		msg:      msg,
		store:    make(map[string]any),
		eventBus: eventBus,
	}
}

func (c *consumerContext) Context() context.Context {
	return c.ctx
}

func (c *consumerContext) Method() string {
	return RouteMethod
}

func (c *consumerContext) Path() string {
	return "/" + c.msg.EventName
}

func (c *consumerContext) Param(name string) string {
	if raw, ok := c.store["tendon.params"]; ok {
		if m, ok := raw.(map[string]string); ok {
			return m[name]
		}
	}
	return ""
}

func (c *consumerContext) Params() map[string]string {
	if raw, ok := c.store["tendon.params"]; ok {
		if m, ok := raw.(map[string]string); ok {
			return m
		}
	}
	return map[string]string{}
}

func (c *consumerContext) PathKeys() []string {
	if v, ok := c.store["tendon.pathKeys"]; ok {
		if keys, ok := v.([]string); ok {
			return keys
		}
	}
	return nil
}

func (c *consumerContext) Query(name string) string { return "" }

func (c *consumerContext) Queries() map[string][]string {
	return map[string][]string{}
}

func (c *consumerContext) Header(name string) string { return "" }

func (c *consumerContext) Headers() map[string][]string {
	return map[string][]string{}
}

// Bind는 메시지 페이로드를 JSON으로 역직렬화합니다.
func (c *consumerContext) Bind(out any) error {
	return json.Unmarshal(c.msg.Payload, out)
}

func (c *consumerContext) FormStack() (*form.ParameterStack, error) {
	return nil, errors.New("이벤트 컨텍스트에는 폼 데이터가 없습니다")
}

func (c *consumerContext) Set(key string, value any) {
	c.store[key] = value
}

func (c *consumerContext) Get(key string) (any, bool) {
	v, ok := c.store[key]
	return v, ok
}

func (c *consumerContext) EventBus() core.EventBus {
	return c.eventBus
}
