package resolver

import (
	"fmt"
	"reflect"

	"github.com/sehyn/tendon/core"
	"github.com/sehyn/tendon/pkg/session"
)

// SessionResolver는 세션 Interceptor가 컨텍스트에 실어 둔 *session.Session을
// 핸들러 파라미터로 주입합니다.
type SessionResolver struct{}

func (r *SessionResolver) Supports(parameterMeta ParameterMeta) bool {
	return parameterMeta.Type == reflect.TypeOf((**session.Session)(nil)).Elem()
}

func (r *SessionResolver) Resolve(ctx core.ExecutionContext, parameterMeta ParameterMeta) (any, error) {
	raw, ok := ctx.Get("tendon.session")
	if !ok {
		return nil, fmt.Errorf("세션이 활성화되지 않았습니다. boot.Options.Session을 설정하세요")
	}

	s, ok := raw.(*session.Session)
	if !ok {
		return nil, fmt.Errorf("세션 타입이 올바르지 않습니다: %T", raw)
	}
	return s, nil
}
