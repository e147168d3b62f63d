package core

import "errors"

// ErrAbortPipeline은 Interceptor가 의도적으로 요청 처리를 끝냈음을 알립니다.
// 응답은 이미 작성된 상태여야 합니다.
var ErrAbortPipeline = errors.New("pipeline aborted by interceptor")

type Interceptor interface {
	PreHandle(ctx ExecutionContext, meta HandlerMeta) error
	PostHandle(ctx ExecutionContext, meta HandlerMeta)
	AfterCompletion(ctx ExecutionContext, meta HandlerMeta, err error)
}
