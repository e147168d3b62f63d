package publish

import "time"

// DomainEvent는 핸들러 실행 중 수집되어 실행 후 방출되는 이벤트의 계약입니다.
type DomainEvent interface {
	Name() string
	OccurredAt() time.Time
}
