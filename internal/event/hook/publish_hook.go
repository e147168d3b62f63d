package hook

import (
	"context"
	"log"

	"github.com/sehyn/tendon/core"
	"github.com/sehyn/tendon/pkg/event/publish"
)

// PostExecutionHook은 핸들러 실행이 끝난 뒤 호출됩니다.
type PostExecutionHook interface {
	AfterExecution(ctx core.ExecutionContext, results []any, err error)
}

// EventWriter는 브로커로 이벤트를 내보내는 출구입니다.
type EventWriter interface {
	Publish(ctx context.Context, event publish.DomainEvent) error
}

// EventPublishHook은 요청 중 EventBus에 수집된 도메인 이벤트를
// 핸들러가 성공한 경우에만 브로커로 방출합니다.
type EventPublishHook struct {
	writer EventWriter
}

func NewEventPublishHook(writer EventWriter) *EventPublishHook {
	return &EventPublishHook{writer: writer}
}

func (h *EventPublishHook) AfterExecution(ctx core.ExecutionContext, results []any, err error) {
	bus := ctx.EventBus()
	if bus == nil {
		return
	}

	events := bus.Drain()

	// 핸들러가 실패했으면 수집된 이벤트는 버린다.
	if err != nil {
		if len(events) > 0 {
			log.Printf("[Event Publish] 핸들러 실패로 이벤트 %d건을 폐기합니다.", len(events))
		}
		return
	}

	if h.writer == nil {
		return
	}

	for _, event := range events {
		if pubErr := h.writer.Publish(ctx.Context(), event); pubErr != nil {
			log.Printf("[Event Publish] 이벤트 발행 실패 (%s): %v", event.Name(), pubErr)
		}
	}
}
