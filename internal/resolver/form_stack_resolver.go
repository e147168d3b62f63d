package resolver

import (
	"reflect"

	"github.com/sehyn/tendon/core"
	"github.com/sehyn/tendon/pkg/form"
)

// FormStackResolver는 *form.ParameterStack 파라미터에 파싱된 바디 전체를 주입합니다.
type FormStackResolver struct{}

func (r *FormStackResolver) Supports(parameterMeta ParameterMeta) bool {
	return parameterMeta.Type == reflect.TypeOf((**form.ParameterStack)(nil)).Elem()
}

func (r *FormStackResolver) Resolve(ctx core.ExecutionContext, parameterMeta ParameterMeta) (any, error) {
	reqCtx, err := requestContext(ctx)
	if err != nil {
		return nil, err
	}
	return reqCtx.FormStack()
}
