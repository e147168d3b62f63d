package resolver

import (
	"fmt"
	"reflect"

	"github.com/sehyn/tendon/core"
)

// ParameterMeta는 핸들러 파라미터 하나의 해석 단위입니다.
type ParameterMeta struct {
	Index   int
	Type    reflect.Type
	PathKey string // path 래퍼 타입이 짝지어진 라우트 파라미터 이름
}

type ArgumentResolver interface {
	Supports(parameterMeta ParameterMeta) bool
	Resolve(ctx core.ExecutionContext, parameterMeta ParameterMeta) (any, error)
}

// requestContext는 HTTP 요청 전용 기능이 필요한 Resolver를 위한 다운캐스트입니다.
func requestContext(ctx core.ExecutionContext) (core.RequestContext, error) {
	reqCtx, ok := ctx.(core.RequestContext)
	if !ok {
		return nil, fmt.Errorf("RequestContext가 아닙니다: %T", ctx)
	}
	return reqCtx, nil
}
