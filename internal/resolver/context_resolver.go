package resolver

import (
	"reflect"

	"github.com/sehyn/tendon/core"
)

// ContextResolver는 core.ExecutionContext 타입의 파라미터를 처리합니다.
type ContextResolver struct{}

func (r *ContextResolver) Supports(parameterMeta ParameterMeta) bool {
	// 정확히 ExecutionContext 타입만 처리
	return parameterMeta.Type == reflect.TypeOf((*core.ExecutionContext)(nil)).Elem()
}

func (r *ContextResolver) Resolve(ctx core.ExecutionContext, parameterMeta ParameterMeta) (any, error) {
	return ctx, nil
}
