package core

import (
	"context"

	"github.com/sehyn/tendon/pkg/form"
)

type ContextCarrier interface {
	Context() context.Context
}

type ExecutionContext interface {
	// Pipeline / Router 관련 메서드
	ContextCarrier

	Method() string
	Path() string
	Params() map[string]string
	Header(name string) string
	PathKeys() []string
	Queries() map[string][]string
	Set(key string, value any)
	Get(key string) (any, bool)
	EventBus() EventBus
}

type RequestContext interface {
	// Resolver 관련 메서드
	ContextCarrier

	// 개별 접근
	Param(name string) string
	Query(name string) string

	// 전체 뷰 접근
	Params() map[string]string
	Queries() map[string][]string
	Headers() map[string][]string

	// body
	Bind(out any) error

	// 요청 바디에서 추출된 필드/파일 테이블.
	// 최초 호출 시 바디 스트림을 끝까지 파싱하며, 이후 호출은 같은 결과를 돌려줍니다.
	FormStack() (*form.ParameterStack, error)
}

// WebSocketContext는 WebSocket 메시지 한 건의 실행 컨텍스트입니다.
type WebSocketContext interface {
	ExecutionContext

	ConnID() string
	MessageType() int
	Payload() []byte
}
