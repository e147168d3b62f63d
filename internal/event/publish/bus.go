package publish

import (
	"sync"

	"github.com/sehyn/tendon/core"
	"github.com/sehyn/tendon/pkg/event/publish"
)

// EventBus는 core 패키지의 계약을 그대로 노출합니다.
// 내부 구현체는 이 타입을 만족하도록 구성됩니다.
type EventBus = core.EventBus

type eventBus struct {
	mu     sync.Mutex
	events []publish.DomainEvent
}

// NewEventBus는 요청 하나의 수명을 갖는 수집 버퍼를 만듭니다.
func NewEventBus() EventBus {
	return &eventBus{}
}

func (b *eventBus) Publish(events ...publish.DomainEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, events...)
}

// Drain은 수집된 이벤트를 반환하고 버퍼를 비웁니다.
func (b *eventBus) Drain() []publish.DomainEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	drained := b.events
	b.events = nil
	return drained
}
